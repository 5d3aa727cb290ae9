package model

import (
	"time"
)

// CreateRFQRequest is the request body for POST /api/rfqs. Pointer and
// zero-able fields let the handler distinguish missing required fields.
type CreateRFQRequest struct {
	RFQNumber          string     `json:"rfqNumber,omitempty"`
	Title              string     `json:"title"`
	Description        string     `json:"description,omitempty"`
	Requester          *Requester `json:"requester"`
	RFQType            string     `json:"rfqType"`
	Category           string     `json:"category,omitempty"`
	Priority           string     `json:"priority,omitempty"`
	Items              []RFQItem  `json:"items,omitempty"`
	RFQStatus          string     `json:"rfqStatus,omitempty"`
	SubmissionDeadline *time.Time `json:"submissionDeadline"`
	CreatedBy          string     `json:"createdBy,omitempty"`
}

// RFQListFilter selects RFQs for the listing endpoint.
type RFQListFilter struct {
	Status string
	Type   string
	Limit  int64
	Page   int64
}

// RFQPagination describes the page window of a listing response.
type RFQPagination struct {
	Total int64 `json:"total"`
	Page  int64 `json:"page"`
	Limit int64 `json:"limit"`
	Pages int64 `json:"pages"`
}

// RFQSummary aggregates counts across the whole collection.
type RFQSummary struct {
	Total    int64            `json:"total"`
	ByStatus map[string]int64 `json:"byStatus"`
	ByType   map[string]int64 `json:"byType"`
}

// ListRFQsResponse is the response for GET /api/rfqs.
type ListRFQsResponse struct {
	Success    bool          `json:"success"`
	RFQs       []RFQ         `json:"rfqs"`
	Pagination RFQPagination `json:"pagination"`
	Summary    RFQSummary    `json:"summary"`
}

// CreateRFQResponse is the response for POST /api/rfqs.
type CreateRFQResponse struct {
	Success bool   `json:"success"`
	RFQ     *RFQ   `json:"rfq"`
	Message string `json:"message"`
}
