package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/DungeonBot_Go/internal/domain"
)

func TestHandleRoll(t *testing.T) {
	InitValidator()

	tests := []struct {
		name           string
		method         string
		body           interface{}
		setupMocks     func(*MockDiceService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "Success",
			method: http.MethodPost,
			body: RollRequest{
				Platform:   "twitch",
				PlatformID: "123",
				Username:   "testuser",
				Notation:   "2d6+1",
			},
			setupMocks: func(md *MockDiceService) {
				md.On("Roll", mock.Anything, "twitch", "123", "testuser", "2d6+1").
					Return(&domain.RollReport{
						Username: "testuser",
						Message:  "testuser rolled 2d6+1: [3 4] +1 = 8",
						Outcomes: []domain.RollOutcome{{RawSum: 7, ModifiedTotal: 8}},
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"message":"testuser rolled 2d6+1: [3 4] +1 = 8"`,
		},
		{
			name:   "Parse Error",
			method: http.MethodPost,
			body: RollRequest{
				Platform:   "twitch",
				PlatformID: "123",
				Username:   "testuser",
				Notation:   "d6",
			},
			setupMocks: func(md *MockDiceService) {
				md.On("Roll", mock.Anything, "twitch", "123", "testuser", "d6").
					Return(nil, fmt.Errorf("%w: missing dice count", domain.ErrRollParse))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgRollParseError,
		},
		{
			name:   "Out Of Range",
			method: http.MethodPost,
			body: RollRequest{
				Platform:   "twitch",
				PlatformID: "123",
				Username:   "testuser",
				Notation:   "999d9999",
			},
			setupMocks: func(md *MockDiceService) {
				md.On("Roll", mock.Anything, "twitch", "123", "testuser", "999d9999").
					Return(nil, fmt.Errorf("%w: count 999 exceeds 100", domain.ErrRollOutOfRange))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgRollOutOfRangeError,
		},
		{
			name:           "Invalid Method",
			method:         http.MethodGet,
			body:           nil,
			setupMocks:     func(md *MockDiceService) {},
			expectedStatus: http.StatusMethodNotAllowed,
			expectedBody:   "Method not allowed",
		},
		{
			name:   "Validation Failure (Missing Notation)",
			method: http.MethodPost,
			body: RollRequest{
				Platform:   "twitch",
				PlatformID: "123",
				Username:   "testuser",
			},
			setupMocks:     func(md *MockDiceService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequestSummary,
		},
		{
			name:   "Service Error",
			method: http.MethodPost,
			body: RollRequest{
				Platform:   "twitch",
				PlatformID: "123",
				Username:   "testuser",
				Notation:   "2d6",
			},
			setupMocks: func(md *MockDiceService) {
				md.On("Roll", mock.Anything, "twitch", "123", "testuser", "2d6").
					Return(nil, domain.ErrFailedToGetUser)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   ErrMsgGenericServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockDice := &MockDiceService{}
			tt.setupMocks(mockDice)

			handler := HandleRoll(mockDice)

			body, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(tt.method, "/roll", bytes.NewBuffer(body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}
			mockDice.AssertExpectations(t)
		})
	}
}
