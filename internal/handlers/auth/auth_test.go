package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/Amitjang/XAlISS-SERVER/internal/domain"
	"github.com/Amitjang/XAlISS-SERVER/internal/dto"
	"github.com/Amitjang/XAlISS-SERVER/internal/service/authservice"
	"github.com/Amitjang/XAlISS-SERVER/pkg/utils"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful login",
			body: `{"dial_code":"+221","phone_number":"770000000","pin":"1234"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(context.Background(), "+221", "770000000", "1234").
					Return(&domain.Agent{ID: 2}, nil)
				service.EXPECT().
					GenerateToken(int64(2)).
					Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid credentials",
			body: `{"dial_code":"+221","phone_number":"770000000","pin":"0000"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(context.Background(), "+221", "770000000", "0000").
					Return(nil, authservice.ErrInvalidCredentials)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid credentials",
		},
		{
			name: "Database failure",
			body: `{"dial_code":"+221","phone_number":"770000000","pin":"1234"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(context.Background(), "+221", "770000000", "1234").
					Return(nil, domain.ErrPersistence)
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "Missing pin",
			body:          `{"dial_code":"+221","phone_number":"770000000"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Error generating token",
			body: `{"dial_code":"+221","phone_number":"770000000","pin":"1234"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(context.Background(), "+221", "770000000", "1234").
					Return(&domain.Agent{ID: 2}, nil)
				service.EXPECT().
					GenerateToken(int64(2)).
					Return("", errors.New("token generation error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/agents/login", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Login(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
				return
			}
			var resp dto.LoginResponseDTO
			assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, "some-jwt-token", resp.Token)
			assert.Equal(t, "Bearer some-jwt-token", rr.Header().Get("Authorization"))
		})
	}
}
