package store

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/aeroops/aviation-assistant/internal/model"
)

// ErrDuplicateRFQNumber is returned when the unique index on rfqNumber
// rejects an insert. The generator reads only the latest record, so two
// concurrent creations can race; the index is the authoritative guard and
// callers should retry.
var ErrDuplicateRFQNumber = errors.New("rfq number already exists")

var rfqNumberPattern = regexp.MustCompile(`RFQ-(\d{4})-(\d{3})`)

// RFQRepo provides listing and creation of RFQ records.
type RFQRepo struct {
	mongo *Mongo
}

// NewRFQRepo creates an RFQ repository.
func NewRFQRepo(m *Mongo) *RFQRepo {
	return &RFQRepo{mongo: m}
}

// List returns a page of RFQs plus aggregate counts by status and type.
func (r *RFQRepo) List(ctx context.Context, f model.RFQListFilter) (*model.ListRFQsResponse, error) {
	filter := bson.M{}
	if f.Status != "" && f.Status != "all" {
		filter["rfqStatus"] = f.Status
	}
	if f.Type != "" && f.Type != "all" {
		filter["rfqType"] = f.Type
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}
	page := f.Page
	if page <= 0 {
		page = 1
	}
	skip := (page - 1) * limit

	coll := r.mongo.Collection(CollRFQs)

	opts := options.Find().
		SetSort(bson.D{{Key: "submissionDeadline", Value: 1}, {Key: "createdAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list rfqs: %w", err)
	}
	rfqs := []model.RFQ{}
	if err := cursor.All(ctx, &rfqs); err != nil {
		return nil, fmt.Errorf("failed to decode rfqs: %w", err)
	}

	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count rfqs: %w", err)
	}

	byStatus, err := r.groupCounts(ctx, "$rfqStatus")
	if err != nil {
		return nil, err
	}
	byType, err := r.groupCounts(ctx, "$rfqType")
	if err != nil {
		return nil, err
	}

	pages := total / limit
	if total%limit != 0 {
		pages++
	}

	return &model.ListRFQsResponse{
		Success: true,
		RFQs:    rfqs,
		Pagination: model.RFQPagination{
			Total: total,
			Page:  page,
			Limit: limit,
			Pages: pages,
		},
		Summary: model.RFQSummary{
			Total:    total,
			ByStatus: byStatus,
			ByType:   byType,
		},
	}, nil
}

// groupCounts runs a $group aggregation keyed by the given field expression.
func (r *RFQRepo) groupCounts(ctx context.Context, field string) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: field},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cursor, err := r.mongo.Collection(CollRFQs).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate rfqs by %s: %w", field, err)
	}

	var rows []struct {
		ID    string `bson:"_id"`
		Count int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode aggregation: %w", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.ID] = row.Count
	}
	return counts, nil
}

// Create inserts a new RFQ, generating a sequential per-year number when the
// request does not carry one.
func (r *RFQRepo) Create(ctx context.Context, req *model.CreateRFQRequest) (*model.RFQ, error) {
	number := req.RFQNumber
	if number == "" {
		last, err := r.latestRFQNumber(ctx)
		if err != nil {
			return nil, err
		}
		number = NextRFQNumber(last, time.Now().Year())
	}

	now := time.Now().UTC()

	rfq := &model.RFQ{
		RFQID:       uuid.New().String(),
		RFQNumber:   number,
		Title:       req.Title,
		Description: req.Description,
		Requester:   *req.Requester,
		RFQType:     req.RFQType,
		Category:    req.Category,
		Priority:    req.Priority,
		Items:       req.Items,
		RFQStatus:   req.RFQStatus,
		CreatedBy:   req.CreatedBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if rfq.Priority == "" {
		rfq.Priority = "medium"
	}
	if rfq.RFQStatus == "" {
		rfq.RFQStatus = "draft"
	}
	if req.SubmissionDeadline != nil {
		rfq.SubmissionDeadline = *req.SubmissionDeadline
	}

	res, err := r.mongo.Collection(CollRFQs).InsertOne(ctx, rfq)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateRFQNumber
		}
		return nil, fmt.Errorf("failed to create rfq: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		rfq.ID = oid
	}

	return rfq, nil
}

// latestRFQNumber reads the most recently created record's number, or ""
// when the collection is empty.
func (r *RFQRepo) latestRFQNumber(ctx context.Context) (string, error) {
	opts := options.FindOne().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetProjection(bson.M{"rfqNumber": 1})

	var doc struct {
		RFQNumber string `bson:"rfqNumber"`
	}
	err := r.mongo.Collection(CollRFQs).FindOne(ctx, bson.M{}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read latest rfq number: %w", err)
	}
	return doc.RFQNumber, nil
}

// NextRFQNumber increments the three-digit sequence within the current year,
// restarting at 001 when the year rolls over or the last number is absent or
// malformed.
func NextRFQNumber(last string, year int) string {
	next := 1
	if m := rfqNumberPattern.FindStringSubmatch(last); m != nil {
		lastYear, _ := strconv.Atoi(m[1])
		lastSeq, _ := strconv.Atoi(m[2])
		if lastYear == year {
			next = lastSeq + 1
		}
	}
	return fmt.Sprintf("RFQ-%d-%03d", year, next)
}
