package store

import (
	"context"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/aeroops/aviation-assistant/internal/model"
	"github.com/aeroops/aviation-assistant/pkg/logger"
)

// Result caps per query shape.
const (
	broadLimit    = 20
	targetedLimit = 10
	auxLimit      = 5
)

// Fields searched by the targeted query shape, per collection.
var (
	aircraftSearchFields = []string{
		"manufacturer", "model", "registrationNumber", "status", "aircraftType", "location",
	}
	purchaseOrderSearchFields = []string{
		"supplier.name", "buyer.name", "aircraftDetails.manufacturer",
		"aircraftDetails.model", "status", "paymentStatus", "poNumber",
	}
	flightLogSearchFields = []string{
		"flightNumber", "registrationNumber", "departureAirport.code",
		"departureAirport.name", "arrivalAirport.code", "arrivalAirport.name",
		"crew.captain.name", "flightStatus", "flightType",
	}
	rfqSearchFields = []string{
		"title", "rfqType", "category", "requester.name", "rfqStatus", "rfqNumber", "description",
	}
	knowledgeSearchFields = []string{"topic", "content", "category", "tags"}
	auxSearchFields       = []string{"topic", "content"}
)

// Name fragments that mark a collection as an auxiliary topic/content source.
var topicSourceFragments = []string{"knowledge", "faq", "content", "topic"}

// Gateway executes bounded, filtered lookups against the record collections.
// It owns no matching policy beyond the query shapes; callers decide broad
// versus targeted per collection.
type Gateway struct {
	mongo        *Mongo
	topicSources []string
	logger       *logger.Logger
}

// NewGateway builds a gateway and resolves the auxiliary topic sources once.
// Discovery failure is not fatal: the five named collections still work.
func NewGateway(ctx context.Context, m *Mongo, log *logger.Logger) *Gateway {
	g := &Gateway{mongo: m, logger: log}

	names, err := m.Database().ListCollectionNames(ctx, bson.M{})
	if err != nil {
		log.Warn("failed to list collections for topic source discovery", zap.Error(err))
		return g
	}
	g.topicSources = filterTopicSources(names)
	if len(g.topicSources) > 0 {
		log.Info("discovered auxiliary topic sources", zap.Strings("collections", g.topicSources))
	}
	return g
}

// filterTopicSources returns names matching the topic/content naming pattern,
// excluding the known collections.
func filterTopicSources(names []string) []string {
	known := map[string]bool{
		CollAircraft:       true,
		CollPurchaseOrders: true,
		CollFlightLogs:     true,
		CollRFQs:           true,
		CollKnowledgeBase:  true,
		CollMessages:       true,
	}

	var sources []string
	for _, name := range names {
		if known[name] {
			continue
		}
		lower := strings.ToLower(name)
		for _, fragment := range topicSourceFragments {
			if strings.Contains(lower, fragment) {
				sources = append(sources, name)
				break
			}
		}
	}
	return sources
}

// searchFilter builds a case-insensitive substring match across fields.
func searchFilter(fields []string, query string) bson.M {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	or := make([]bson.M, len(fields))
	for i, field := range fields {
		or[i] = bson.M{field: pattern}
	}
	return bson.M{"$or": or}
}

// Aircraft looks up aircraft records. Broad fetches the whole collection up
// to the cap; targeted matches the query against the identifying fields.
func (g *Gateway) Aircraft(ctx context.Context, query string, broad bool) ([]model.Aircraft, error) {
	filter, limit := bson.M{}, int64(broadLimit)
	if !broad {
		filter, limit = searchFilter(aircraftSearchFields, query), targetedLimit
	}

	cursor, err := g.mongo.Collection(CollAircraft).Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}
	var records []model.Aircraft
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// PurchaseOrders looks up purchase order records.
func (g *Gateway) PurchaseOrders(ctx context.Context, query string, broad bool) ([]model.PurchaseOrder, error) {
	filter, limit := bson.M{}, int64(broadLimit)
	if !broad {
		filter, limit = searchFilter(purchaseOrderSearchFields, query), targetedLimit
	}

	cursor, err := g.mongo.Collection(CollPurchaseOrders).Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}
	var records []model.PurchaseOrder
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// FlightLogs looks up flight log records.
func (g *Gateway) FlightLogs(ctx context.Context, query string, broad bool) ([]model.FlightLog, error) {
	filter, limit := bson.M{}, int64(broadLimit)
	if !broad {
		filter, limit = searchFilter(flightLogSearchFields, query), targetedLimit
	}

	cursor, err := g.mongo.Collection(CollFlightLogs).Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}
	var records []model.FlightLog
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// RFQs looks up request-for-quotation records.
func (g *Gateway) RFQs(ctx context.Context, query string, broad bool) ([]model.RFQ, error) {
	filter, limit := bson.M{}, int64(broadLimit)
	if !broad {
		filter, limit = searchFilter(rfqSearchFields, query), targetedLimit
	}

	cursor, err := g.mongo.Collection(CollRFQs).Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}
	var records []model.RFQ
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// KnowledgeBase looks up knowledge entries. Always the targeted shape; an
// enumeration of the knowledge base is never useful as chat context.
func (g *Gateway) KnowledgeBase(ctx context.Context, query string) ([]model.KnowledgeBaseEntry, error) {
	filter := searchFilter(knowledgeSearchFields, query)

	cursor, err := g.mongo.Collection(CollKnowledgeBase).Find(ctx, filter, options.Find().SetLimit(targetedLimit))
	if err != nil {
		return nil, err
	}
	var records []model.KnowledgeBaseEntry
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// TopicSources returns the auxiliary collections resolved at startup.
func (g *Gateway) TopicSources() []string {
	return g.topicSources
}

// SearchTopicSource runs the topic/content match against one auxiliary
// collection.
func (g *Gateway) SearchTopicSource(ctx context.Context, name, query string) ([]model.TopicEntry, error) {
	filter := searchFilter(auxSearchFields, query)

	cursor, err := g.mongo.Collection(name).Find(ctx, filter, options.Find().SetLimit(auxLimit))
	if err != nil {
		return nil, err
	}
	var entries []model.TopicEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
