package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextRFQNumber(t *testing.T) {
	tests := []struct {
		name string
		last string
		year int
		want string
	}{
		{"increments within year", "RFQ-2024-002", 2024, "RFQ-2024-003"},
		{"first of a new year", "RFQ-2024-117", 2025, "RFQ-2025-001"},
		{"empty collection", "", 2024, "RFQ-2024-001"},
		{"malformed last number", "PO-2024-004", 2024, "RFQ-2024-001"},
		{"rolls into three digits", "RFQ-2024-099", 2024, "RFQ-2024-100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextRFQNumber(tt.last, tt.year))
		})
	}
}
