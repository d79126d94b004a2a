package services

import (
	"strings"

	"golang.org/x/text/cases"
)

// containsFold reports whether substr occurs in s, ignoring case.
// An empty substr matches every string.
func containsFold(s, substr string) bool {
	if substr == "" {
		return true
	}
	// Casers keep internal state and must not be shared between goroutines
	fold := cases.Fold()
	return strings.Contains(fold.String(s), fold.String(substr))
}
