package ticket

import (
	"context"
	"fmt"
)

// SequenceAllocator hands out the next sequence value for an (area prefix,
// year) pair. Implementations must serialize concurrent callers so two
// tickets never share a number; the persistence layer does this with a
// locked counter row inside the creating transaction.
type SequenceAllocator interface {
	Next(ctx context.Context, prefix string, year int) (int, error)
}

// FormatNumber renders the human-facing ticket number, e.g. "SYS-2026-0042".
// The sequence is zero-padded to four digits and simply grows wider beyond
// 9999.
func FormatNumber(prefix string, year, seq int) string {
	return fmt.Sprintf("%s-%d-%04d", prefix, year, seq)
}
