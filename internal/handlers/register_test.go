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

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name          string
		body          string
		mockSetup     func(m *MockRegisterer)
		expectedCode  int
		expectedError string
	}{
		{
			name: "success",
			body: `{"name":"Ana Souza","email":"ana@example.com","password":"secret123"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "Ana Souza", "ana@example.com", "secret123").
					Return(&models.UserDB{UserID: 1, Name: "Ana Souza", Email: "ana@example.com"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "email already registered",
			body: `{"name":"Ana","email":"ana@example.com","password":"secret123"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "Ana", "ana@example.com", "secret123").
					Return(nil, services.ErrEmailAlreadyRegistered)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "Email already registered",
		},
		{
			name:          "missing fields",
			body:          `{"email":"ana@example.com"}`,
			expectedCode:  http.StatusBadRequest,
			expectedError: "Name, email and password are required",
		},
		{
			name:          "invalid json",
			body:          `{not json`,
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "internal error",
			body: `{"name":"Ana","email":"ana@example.com","password":"secret123"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "Ana", "ana@example.com", "secret123").
					Return(nil, errors.New("database failure"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/users/register", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			NewRegisterHandler(mockSvc).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedError != "" {
				var resp ErrorResponse
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			}
		})
	}
}

func TestRegisterHandler_ResponseOmitsPasswordHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockRegisterer(ctrl)
	mockSvc.EXPECT().
		Register(gomock.Any(), "Ana", "ana@example.com", "secret123").
		Return(&models.UserDB{UserID: 1, Name: "Ana", Email: "ana@example.com", PasswordHash: "bcrypt-digest"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/users/register",
		bytes.NewBufferString(`{"name":"Ana","email":"ana@example.com","password":"secret123"}`))
	rec := httptest.NewRecorder()

	NewRegisterHandler(mockSvc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "bcrypt-digest")
}
