package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/viagemtrack/travelog/internal/models"
	"github.com/viagemtrack/travelog/internal/services"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name          string
		body          string
		mockSetup     func(m *MockLoginner)
		expectedCode  int
		expectedError string
	}{
		{
			name: "success",
			body: `{"email":"ana@example.com","password":"secret123"}`,
			mockSetup: func(m *MockLoginner) {
				m.EXPECT().
					Login(gomock.Any(), "ana@example.com", "secret123").
					Return("signed.jwt.token", &models.UserProfile{UserID: 1, Name: "Ana"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "wrong password",
			body: `{"email":"ana@example.com","password":"nope"}`,
			mockSetup: func(m *MockLoginner) {
				m.EXPECT().
					Login(gomock.Any(), "ana@example.com", "nope").
					Return("", nil, services.ErrInvalidCredentials)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid email or password",
		},
		{
			name:          "missing fields",
			body:          `{"email":"ana@example.com"}`,
			expectedCode:  http.StatusBadRequest,
			expectedError: "Email and password are required",
		},
		{
			name:          "invalid json",
			body:          `not json`,
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "internal error",
			body: `{"email":"ana@example.com","password":"secret123"}`,
			mockSetup: func(m *MockLoginner) {
				m.EXPECT().
					Login(gomock.Any(), "ana@example.com", "secret123").
					Return("", nil, errors.New("database failure"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLoginner(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/users/login", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			NewLoginHandler(mockSvc).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedError != "" {
				var resp ErrorResponse
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			}
			if tt.expectedCode == http.StatusOK {
				var resp LoginResponse
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, "signed.jwt.token", resp.Token)
				assert.Equal(t, int64(1), resp.User.UserID)
			}
		})
	}
}
