package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aeroops/aviation-assistant/internal/model"
	"github.com/aeroops/aviation-assistant/internal/store"
	"github.com/aeroops/aviation-assistant/pkg/logger"
)

type fakeRFQStore struct {
	listResp   *model.ListRFQsResponse
	listErr    error
	lastFilter model.RFQListFilter

	created   *model.RFQ
	createErr error
}

func (f *fakeRFQStore) List(ctx context.Context, filter model.RFQListFilter) (*model.ListRFQsResponse, error) {
	f.lastFilter = filter
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listResp, nil
}

func (f *fakeRFQStore) Create(ctx context.Context, req *model.CreateRFQRequest) (*model.RFQ, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.created, nil
}

func TestListRFQsFilterParsing(t *testing.T) {
	fake := &fakeRFQStore{listResp: &model.ListRFQsResponse{Success: true}}
	h := NewRFQHandler(fake, logger.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/rfqs?status=open&type=parts&limit=10&page=3", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.RFQListFilter{Status: "open", Type: "parts", Limit: 10, Page: 3}, fake.lastFilter)
}

func TestListRFQsDefaults(t *testing.T) {
	fake := &fakeRFQStore{listResp: &model.ListRFQsResponse{Success: true}}
	h := NewRFQHandler(fake, logger.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/rfqs?limit=-5&page=abc", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(50), fake.lastFilter.Limit)
	assert.Equal(t, int64(1), fake.lastFilter.Page)
}

func TestCreateRFQValidatesRequiredFields(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "missing title",
			body: `{"rfqType":"parts"}`,
			want: "Field 'title' is required",
		},
		{
			name: "missing rfqType",
			body: `{"title":"Engine overhaul"}`,
			want: "Field 'rfqType' is required",
		},
		{
			name: "missing submissionDeadline",
			body: `{"title":"Engine overhaul","rfqType":"services"}`,
			want: "Field 'submissionDeadline' is required",
		},
		{
			name: "missing requester",
			body: `{"title":"Engine overhaul","rfqType":"services","submissionDeadline":"2025-07-01T00:00:00Z"}`,
			want: "Field 'requester' is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewRFQHandler(&fakeRFQStore{}, logger.NewNop())

			req := httptest.NewRequest(http.MethodPost, "/api/rfqs", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.Create(rec, req)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"success":false,"error":"`+tt.want+`"}`, rec.Body.String())
		})
	}
}

func TestCreateRFQSuccess(t *testing.T) {
	fake := &fakeRFQStore{created: &model.RFQ{RFQNumber: "RFQ-2025-001", Title: "Engine overhaul"}}
	h := NewRFQHandler(fake, logger.NewNop())

	body := `{"title":"Engine overhaul","rfqType":"services","submissionDeadline":"2025-07-01T00:00:00Z","requester":{"name":"Ops Desk"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/rfqs", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp model.CreateRFQResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.RFQ)
	assert.Equal(t, "RFQ-2025-001", resp.RFQ.RFQNumber)
	assert.Equal(t, "RFQ created successfully", resp.Message)
}

func TestCreateRFQDuplicateNumberConflicts(t *testing.T) {
	h := NewRFQHandler(&fakeRFQStore{createErr: store.ErrDuplicateRFQNumber}, logger.NewNop())

	body := `{"title":"Engine overhaul","rfqType":"services","submissionDeadline":"2025-07-01T00:00:00Z","requester":{"name":"Ops Desk"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/rfqs", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "already exists")
}
