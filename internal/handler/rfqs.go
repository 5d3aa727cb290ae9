package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/aeroops/aviation-assistant/internal/model"
	"github.com/aeroops/aviation-assistant/internal/store"
	"github.com/aeroops/aviation-assistant/pkg/logger"
	"github.com/aeroops/aviation-assistant/pkg/metrics"
)

// RFQStore lists and creates RFQ records.
type RFQStore interface {
	List(ctx context.Context, f model.RFQListFilter) (*model.ListRFQsResponse, error)
	Create(ctx context.Context, req *model.CreateRFQRequest) (*model.RFQ, error)
}

// RFQHandler handles the RFQ CRUD endpoints.
type RFQHandler struct {
	rfqs   RFQStore
	logger *logger.Logger
}

// NewRFQHandler creates a new RFQ handler.
func NewRFQHandler(rfqs RFQStore, log *logger.Logger) *RFQHandler {
	return &RFQHandler{rfqs: rfqs, logger: log}
}

// List handles GET /api/rfqs
func (h *RFQHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := model.RFQListFilter{
		Status: q.Get("status"),
		Type:   q.Get("type"),
		Limit:  50,
		Page:   1,
	}
	if v := q.Get("limit"); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil && parsed > 0 {
			filter.Limit = parsed
		}
	}
	if v := q.Get("page"); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil && parsed > 0 {
			filter.Page = parsed
		}
	}

	resp, err := h.rfqs.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("failed to list rfqs", zap.Error(err))
		writeFailure(w, http.StatusInternalServerError, "Failed to fetch RFQs")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Create handles POST /api/rfqs
func (h *RFQHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateRFQRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if field, ok := missingRequiredField(&req); !ok {
		writeFailure(w, http.StatusBadRequest, "Field '"+field+"' is required")
		return
	}

	rfq, err := h.rfqs.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateRFQNumber) {
			// The generator raced another creation; the unique index is the
			// authoritative guard, so surface a retryable conflict.
			writeFailure(w, http.StatusConflict, "RFQ number already exists, please retry")
			return
		}
		h.logger.Error("failed to create rfq", zap.Error(err))
		writeFailure(w, http.StatusInternalServerError, "Failed to create RFQ")
		return
	}

	metrics.RFQsCreatedTotal.Inc()

	writeJSON(w, http.StatusCreated, &model.CreateRFQResponse{
		Success: true,
		RFQ:     rfq,
		Message: "RFQ created successfully",
	})
}

// missingRequiredField returns the first absent required field, in the
// documented validation order.
func missingRequiredField(req *model.CreateRFQRequest) (string, bool) {
	switch {
	case req.Title == "":
		return "title", false
	case req.RFQType == "":
		return "rfqType", false
	case req.SubmissionDeadline == nil || req.SubmissionDeadline.IsZero():
		return "submissionDeadline", false
	case req.Requester == nil || req.Requester.Name == "":
		return "requester", false
	}
	return "", true
}
