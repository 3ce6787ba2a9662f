package contracts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/Amitjang/XAlISS-SERVER/internal/domain"
	"github.com/Amitjang/XAlISS-SERVER/internal/dto"
	"github.com/Amitjang/XAlISS-SERVER/internal/service/contractservice"
	"github.com/Amitjang/XAlISS-SERVER/pkg/auth"
	"github.com/Amitjang/XAlISS-SERVER/pkg/utils"
)

var (
	first = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end   = time.Date(2024, 11, 30, 0, 0, 0, 0, time.UTC)
)

func NewMock(t *testing.T) (*ContractHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func newRequest(method, target, id, body string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader([]byte(body)))
	ctx := context.WithValue(req.Context(), auth.AgentIDKey, int64(7))
	if id != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", id)
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return req.WithContext(ctx)
}

func sampleContract() *domain.Contract {
	return &domain.Contract{
		ID:               12,
		UserID:           3,
		AgentID:          7,
		SavingType:       domain.CadenceMonthly,
		Amount:           decimal.NewFromInt(500),
		Duration:         "6M",
		FirstPaymentDate: first,
		EndDate:          end,
	}
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) string {
	var resp utils.Response
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	return resp.Message
}

func TestCreateHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Contract created",
			body: `{"user_id":3,"saving_type":"monthly","amount":"500","duration":"6M","first_payment_date":"2024-06-01","address":"Medina"}`,
			prepareMock: func() {
				service.EXPECT().
					Create(gomock.Any(), int64(7), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ int64, req contractservice.CreateRequest) (*domain.Contract, error) {
						assert.Equal(t, domain.CadenceMonthly, req.SavingType)
						assert.True(t, req.Amount.Equal(decimal.NewFromInt(500)))
						assert.True(t, req.FirstPaymentDate.Equal(first))
						assert.Equal(t, "Medina", req.Address)
						return sampleContract(), nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Unknown duration",
			body: `{"user_id":3,"saving_type":"monthly","amount":"500","duration":"7Q","first_payment_date":"2024-06-01"}`,
			prepareMock: func() {
				service.EXPECT().
					Create(gomock.Any(), int64(7), gomock.Any()).
					Return(nil, fmt.Errorf("%w: bad duration", contractservice.ErrInvalidContract))
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "invalid contract: bad duration",
		},
		{
			name: "Customer of another agent",
			body: `{"user_id":3,"saving_type":"daily","amount":"500","duration":"1M","first_payment_date":"2024-06-01"}`,
			prepareMock: func() {
				service.EXPECT().
					Create(gomock.Any(), int64(7), gomock.Any()).
					Return(nil, domain.ErrNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: domain.ErrNotFound.Error(),
		},
		{
			name:          "Bad first payment date",
			body:          `{"user_id":3,"saving_type":"daily","amount":"500","duration":"1M","first_payment_date":"01/06/2024"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid first payment date",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rr := httptest.NewRecorder()
			handler.Create(rr, newRequest("POST", "/api/contracts", "", tt.body))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeError(t, rr))
				return
			}
			var resp dto.ContractResponseDTO
			assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, int64(12), resp.ID)
			assert.Equal(t, "2024-11-30", resp.EndDate)
		})
	}
}

func TestGetHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Found", func(t *testing.T) {
		service.EXPECT().Get(gomock.Any(), int64(7), int64(12)).Return(sampleContract(), nil)

		rr := httptest.NewRecorder()
		handler.Get(rr, newRequest("GET", "/api/contracts/12", "12", ""))

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp dto.ContractResponseDTO
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "monthly", resp.SavingType)
	})

	t.Run("Not found", func(t *testing.T) {
		service.EXPECT().Get(gomock.Any(), int64(7), int64(99)).Return(nil, domain.ErrNotFound)

		rr := httptest.NewRecorder()
		handler.Get(rr, newRequest("GET", "/api/contracts/99", "99", ""))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Bad id", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.Get(rr, newRequest("GET", "/api/contracts/x", "x", ""))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Invalid contract id", decodeError(t, rr))
	})
}

func TestGetScheduleHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().
		Schedule(gomock.Any(), int64(7), int64(12)).
		Return(&contractservice.Schedule{
			Contract: *sampleContract(),
			DueDates: []time.Time{first, first.AddDate(0, 1, 0)},
		}, nil)

	rr := httptest.NewRecorder()
	handler.GetSchedule(rr, newRequest("GET", "/api/contracts/12/schedule", "12", ""))

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp dto.ScheduleResponseDTO
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, []string{"2024-06-01", "2024-07-01"}, resp.DueDates)
	assert.Equal(t, int64(12), resp.Contract.ID)
}

func TestCancelHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Cancelled",
			prepareMock: func() {
				service.EXPECT().Cancel(gomock.Any(), int64(7), int64(12)).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Not found",
			prepareMock: func() {
				service.EXPECT().Cancel(gomock.Any(), int64(7), int64(12)).Return(domain.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Database failure",
			prepareMock: func() {
				service.EXPECT().Cancel(gomock.Any(), int64(7), int64(12)).Return(domain.ErrPersistence)
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rr := httptest.NewRecorder()
			handler.Cancel(rr, newRequest("POST", "/api/contracts/12/cancel", "12", ""))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
