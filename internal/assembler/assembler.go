package assembler

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/aeroops/aviation-assistant/internal/model"
	"github.com/aeroops/aviation-assistant/pkg/logger"
	"github.com/aeroops/aviation-assistant/pkg/metrics"
)

// Gateway is the record lookup surface the assembler drives. Implemented by
// the store package; faked in tests.
type Gateway interface {
	Aircraft(ctx context.Context, query string, broad bool) ([]model.Aircraft, error)
	PurchaseOrders(ctx context.Context, query string, broad bool) ([]model.PurchaseOrder, error)
	FlightLogs(ctx context.Context, query string, broad bool) ([]model.FlightLog, error)
	RFQs(ctx context.Context, query string, broad bool) ([]model.RFQ, error)
	KnowledgeBase(ctx context.Context, query string) ([]model.KnowledgeBaseEntry, error)
	TopicSources() []string
	SearchTopicSource(ctx context.Context, name, query string) ([]model.TopicEntry, error)
}

// sectionResult is the outcome of one collection lookup. A failed lookup
// carries its error here and is folded to an empty section by Assemble; it
// never aborts the sibling lookups.
type sectionResult struct {
	collection string
	text       string
	err        error
}

// Assembler orchestrates the classifier and gateway across all collections
// and merges the matches into one bounded text block.
type Assembler struct {
	gateway Gateway
	timeout time.Duration
	logger  *logger.Logger
}

// New creates an assembler. The timeout bounds the whole lookup fan-out.
func New(gateway Gateway, timeout time.Duration, log *logger.Logger) *Assembler {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Assembler{gateway: gateway, timeout: timeout, logger: log}
}

// Assemble retrieves context for the query from every collection. Sections
// appear in a fixed order regardless of which lookups matched or failed, and
// an empty string (not an error) comes back when nothing matched anywhere.
func (a *Assembler) Assemble(ctx context.Context, query string) string {
	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	lowered := strings.ToLower(query)

	lookups := []func(context.Context) sectionResult{
		func(ctx context.Context) sectionResult { return a.aircraftSection(ctx, lowered) },
		func(ctx context.Context) sectionResult { return a.purchaseOrderSection(ctx, lowered) },
		func(ctx context.Context) sectionResult { return a.flightLogSection(ctx, lowered) },
		func(ctx context.Context) sectionResult { return a.rfqSection(ctx, lowered) },
		func(ctx context.Context) sectionResult { return a.knowledgeSection(ctx, lowered) },
	}
	for _, name := range a.gateway.TopicSources() {
		name := name
		lookups = append(lookups, func(ctx context.Context) sectionResult {
			return a.topicSourceSection(ctx, name, lowered)
		})
	}

	// The lookups are independent; run them concurrently and keep the
	// results in lookup order.
	results := make([]sectionResult, len(lookups))
	var wg sync.WaitGroup
	for i, lookup := range lookups {
		wg.Add(1)
		go func(i int, lookup func(context.Context) sectionResult) {
			defer wg.Done()
			results[i] = lookup(ctx)
		}(i, lookup)
	}
	wg.Wait()

	var sections []string
	for _, res := range results {
		if res.err != nil {
			a.logger.Warn("collection lookup failed, continuing without it",
				zap.String("collection", res.collection),
				zap.Error(res.err),
			)
			metrics.RecordLookup(res.collection, "error")
			continue
		}
		if res.text == "" {
			metrics.RecordLookup(res.collection, "miss")
			continue
		}
		metrics.RecordLookup(res.collection, "hit")
		sections = append(sections, res.text)
	}

	metrics.RetrievalDuration.Observe(time.Since(start).Seconds())

	return strings.Join(sections, "\n")
}

func (a *Assembler) aircraftSection(ctx context.Context, query string) sectionResult {
	broad := IsBroadQuery(query, AircraftKeywords)
	records, err := a.gateway.Aircraft(ctx, query, broad)
	if err != nil {
		return sectionResult{collection: "aircraft", err: err}
	}
	if len(records) == 0 {
		return sectionResult{collection: "aircraft"}
	}

	lines := []string{fmt.Sprintf("\n--- AIRCRAFT DATA (%d found) ---", len(records))}
	for _, ac := range records {
		location := ac.Location
		if location == "" {
			location = "N/A"
		}
		lines = append(lines, fmt.Sprintf("Aircraft: %s %s | Registration: %s | Status: %s | Type: %s | Location: %s",
			ac.Manufacturer, ac.Model, ac.RegistrationNumber, ac.Status, ac.AircraftType, location))
	}
	if broad {
		lines = append(lines, fmt.Sprintf("TOTAL AIRCRAFT IN FLEET: %d", len(records)))
	}
	return sectionResult{collection: "aircraft", text: strings.Join(lines, "\n")}
}

func (a *Assembler) purchaseOrderSection(ctx context.Context, query string) sectionResult {
	broad := IsBroadQuery(query, PurchaseOrderKeywords)
	records, err := a.gateway.PurchaseOrders(ctx, query, broad)
	if err != nil {
		return sectionResult{collection: "purchase_orders", err: err}
	}
	if len(records) == 0 {
		return sectionResult{collection: "purchase_orders"}
	}

	lines := []string{fmt.Sprintf("\n--- PURCHASE ORDERS (%d found) ---", len(records))}
	for _, po := range records {
		lines = append(lines, fmt.Sprintf("PO: %s | Aircraft: %s %s | Supplier: %s | Status: %s | Amount: %s %.2f",
			po.PONumber, po.AircraftDetails.Manufacturer, po.AircraftDetails.Model,
			po.Supplier.Name, po.Status, po.Currency, po.TotalAmount))
	}
	if broad {
		lines = append(lines, fmt.Sprintf("TOTAL PURCHASE ORDERS: %d", len(records)))
	}
	return sectionResult{collection: "purchase_orders", text: strings.Join(lines, "\n")}
}

func (a *Assembler) flightLogSection(ctx context.Context, query string) sectionResult {
	broad := IsBroadQuery(query, FlightLogKeywords)
	records, err := a.gateway.FlightLogs(ctx, query, broad)
	if err != nil {
		return sectionResult{collection: "flight_logs", err: err}
	}
	if len(records) == 0 {
		return sectionResult{collection: "flight_logs"}
	}

	lines := []string{fmt.Sprintf("\n--- FLIGHT LOGS (%d found) ---", len(records))}
	for _, fl := range records {
		lines = append(lines, fmt.Sprintf("Flight: %s | Aircraft: %s | Route: %s → %s | Captain: %s | Status: %s | Date: %s",
			fl.FlightNumber, fl.RegistrationNumber, fl.DepartureAirport.Code, fl.ArrivalAirport.Code,
			fl.Crew.Captain.Name, fl.FlightStatus, fl.FlightDate.Format("2006-01-02")))
	}
	if broad {
		lines = append(lines, fmt.Sprintf("TOTAL FLIGHT LOGS: %d", len(records)))
	}
	return sectionResult{collection: "flight_logs", text: strings.Join(lines, "\n")}
}

func (a *Assembler) rfqSection(ctx context.Context, query string) sectionResult {
	broad := IsBroadQuery(query, RFQKeywords)
	records, err := a.gateway.RFQs(ctx, query, broad)
	if err != nil {
		return sectionResult{collection: "rfqs", err: err}
	}
	if len(records) == 0 {
		return sectionResult{collection: "rfqs"}
	}

	lines := []string{fmt.Sprintf("\n--- RFQ DATA (%d found) ---", len(records))}
	for _, rfq := range records {
		lines = append(lines, fmt.Sprintf("RFQ: %s | Title: %s | Type: %s | Status: %s | Deadline: %s | Requester: %s",
			rfq.RFQNumber, rfq.Title, rfq.RFQType, rfq.RFQStatus,
			rfq.SubmissionDeadline.Format("2006-01-02"), rfq.Requester.Name))
	}
	if broad {
		lines = append(lines, fmt.Sprintf("TOTAL RFQS IN SYSTEM: %d", len(records)))
	}
	return sectionResult{collection: "rfqs", text: strings.Join(lines, "\n")}
}

func (a *Assembler) knowledgeSection(ctx context.Context, query string) sectionResult {
	entries, err := a.gateway.KnowledgeBase(ctx, query)
	if err != nil {
		return sectionResult{collection: "knowledge_base", err: err}
	}
	if len(entries) == 0 {
		return sectionResult{collection: "knowledge_base"}
	}

	lines := []string{"\n--- KNOWLEDGE BASE ---"}
	for _, kb := range entries {
		lines = append(lines, fmt.Sprintf("Topic: %s | Content: %s", kb.Topic, kb.Content))
	}
	return sectionResult{collection: "knowledge_base", text: strings.Join(lines, "\n")}
}

func (a *Assembler) topicSourceSection(ctx context.Context, name, query string) sectionResult {
	entries, err := a.gateway.SearchTopicSource(ctx, name, query)
	if err != nil {
		return sectionResult{collection: name, err: err}
	}

	lines := []string{fmt.Sprintf("\n--- %s ---", strings.ToUpper(name))}
	found := false
	for _, entry := range entries {
		if entry.Topic == "" || entry.Content == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf("Topic: %s | Content: %s", entry.Topic, entry.Content))
		found = true
	}
	if !found {
		return sectionResult{collection: name}
	}
	return sectionResult{collection: name, text: strings.Join(lines, "\n")}
}
