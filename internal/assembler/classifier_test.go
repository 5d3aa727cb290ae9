package assembler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBroadQuery(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		keywords []string
		want     bool
	}{
		{
			name:     "collection keyword hit",
			query:    "what boeing models do we operate",
			keywords: AircraftKeywords,
			want:     true,
		},
		{
			name:     "enumeration keyword hit",
			query:    "how many records are there",
			keywords: AircraftKeywords,
			want:     true,
		},
		{
			name:     "count keyword hit",
			query:    "count the open items",
			keywords: RFQKeywords,
			want:     true,
		},
		{
			name:     "list keyword hit",
			query:    "list everything",
			keywords: PurchaseOrderKeywords,
			want:     true,
		},
		{
			name:     "show keyword hit",
			query:    "show me the data",
			keywords: FlightLogKeywords,
			want:     true,
		},
		{
			name:     "targeted query",
			query:    "tell me about n12345 maintenance history",
			keywords: PurchaseOrderKeywords,
			want:     false,
		},
		{
			name:     "keyword from another collection",
			query:    "which captain flew yesterday",
			keywords: AircraftKeywords,
			want:     false,
		},
		{
			name:     "empty query",
			query:    "",
			keywords: RFQKeywords,
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsBroadQuery(tt.query, tt.keywords))
		})
	}
}

func TestIsBroadQueryAllCollectionsOnEnumeration(t *testing.T) {
	// An enumeration phrase widens every collection, not just the one the
	// query names.
	query := "how many aircraft do we have"
	for _, keywords := range [][]string{AircraftKeywords, PurchaseOrderKeywords, FlightLogKeywords, RFQKeywords} {
		assert.True(t, IsBroadQuery(query, keywords))
	}
}
