package valueobjects

import "fmt"

// Status is the lifecycle state of a ticket. The main path is strictly
// ordered by rank; rejected is a side branch reachable from any non-terminal
// state. Closed and rejected are terminal.
type Status string

const (
	StatusNew        Status = "new"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
	StatusClosed     Status = "closed"
	StatusRejected   Status = "rejected"
)

var statusRanks = map[Status]int{
	StatusNew:        0,
	StatusInProgress: 1,
	StatusResolved:   2,
	StatusClosed:     3,
}

var validStatuses = map[Status]bool{
	StatusNew:        true,
	StatusInProgress: true,
	StatusResolved:   true,
	StatusClosed:     true,
	StatusRejected:   true,
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return st, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

// Rank returns the position of the status on the main lifecycle path.
// Rejected has no rank; it is only reachable through its dedicated rule.
func (s Status) Rank() int {
	return statusRanks[s]
}

func (s Status) IsTerminal() bool {
	return s == StatusClosed || s == StatusRejected
}

func (s Status) IsNew() bool {
	return s == StatusNew
}

func (s Status) IsRejected() bool {
	return s == StatusRejected
}

func (s Status) IsClosed() bool {
	return s == StatusClosed
}

// IsCompleted reports whether the ticket no longer counts as open work.
// Resolved and both terminal states qualify.
func (s Status) IsCompleted() bool {
	return s == StatusResolved || s.IsTerminal()
}

// CanTransitionTo reports whether the lifecycle permits moving from s to
// newStatus: the target rank must be strictly greater than the current one,
// except rejected, which is reachable from any non-terminal state. Terminal
// states permit nothing.
func (s Status) CanTransitionTo(newStatus Status) bool {
	if s.IsTerminal() {
		return false
	}
	if !newStatus.IsValid() {
		return false
	}
	if newStatus == StatusRejected {
		return true
	}
	return newStatus.Rank() > s.Rank()
}
