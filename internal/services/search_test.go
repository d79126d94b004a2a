package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsFold(t *testing.T) {
	tests := []struct {
		name     string
		s        string
		substr   string
		expected bool
	}{
		{name: "empty query", s: "admin", substr: "", expected: true},
		{name: "empty record and query", s: "", substr: "", expected: true},
		{name: "exact", s: "admin", substr: "admin", expected: true},
		{name: "upper query", s: "content_editor", substr: "EDIT", expected: true},
		{name: "upper record", s: "Super Admin", substr: "super", expected: true},
		{name: "no match", s: "editor", substr: "admin", expected: false},
		{name: "query longer than record", s: "ad", substr: "admin", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, containsFold(tt.s, tt.substr))
		})
	}
}
