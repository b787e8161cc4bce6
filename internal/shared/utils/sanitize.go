package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// SanitizeUserText strips all HTML from user-supplied free text (ticket
// descriptions, comments) before it is stored.
func SanitizeUserText(s string) string {
	return strings.TrimSpace(strictPolicy.Sanitize(s))
}
