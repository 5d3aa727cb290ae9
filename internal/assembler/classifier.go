// Package assembler builds the retrieval context and prompt for a chat turn.
package assembler

import (
	"strings"
)

// Keywords that mark a query as a broad enumeration request for any
// collection ("how many aircraft", "list the purchase orders").
var enumerationKeywords = []string{"how many", "count", "list", "show"}

// Per-collection keyword sets. A hit on any of these widens the query to the
// unfiltered broad shape for that collection.
var (
	AircraftKeywords      = []string{"aircraft", "plane", "airplane", "jet", "boeing", "airbus", "fleet"}
	PurchaseOrderKeywords = []string{"purchase", "order", "po", "supplier", "procurement", "buying"}
	FlightLogKeywords     = []string{"flight", "log", "trip", "route", "pilot", "captain"}
	RFQKeywords           = []string{"rfq", "request", "quotation", "quote", "procurement", "tender", "bid"}
)

// IsBroadQuery reports whether the query asks for a broad enumeration of the
// collection the keyword set belongs to. Pure function of its inputs; the
// query is expected to be lowercased by the caller.
func IsBroadQuery(query string, collectionKeywords []string) bool {
	for _, kw := range collectionKeywords {
		if strings.Contains(query, kw) {
			return true
		}
	}
	for _, kw := range enumerationKeywords {
		if strings.Contains(query, kw) {
			return true
		}
	}
	return false
}
