package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/DungeonBot_Go/internal/domain"
)

func strPtr(s string) *string { return &s }

func TestHandleCreateQuest(t *testing.T) {
	InitValidator()

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*MockQuestService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			requestBody: CreateQuestRequest{
				Title:         "Clear the rat cellar",
				Description:   "The tavern cellar is overrun.",
				QuestGiver:    "Barkeep Joren",
				LocationGiven: "The Gilded Goose",
			},
			setupMock: func(m *MockQuestService) {
				m.On("Create", mock.Anything, "Clear the rat cellar", "The tavern cellar is overrun.", "Barkeep Joren", "The Gilded Goose").
					Return(&domain.Quest{
						ID:         7,
						Title:      "Clear the rat cellar",
						QuestGiver: "Barkeep Joren",
						Active:     true,
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"title":"Clear the rat cellar"`,
		},
		{
			name: "Duplicate Title",
			requestBody: CreateQuestRequest{
				Title: "Clear the rat cellar",
			},
			setupMock: func(m *MockQuestService) {
				m.On("Create", mock.Anything, "Clear the rat cellar", "", "", "").
					Return(nil, domain.ErrQuestAlreadyExists)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   ErrMsgQuestAlreadyExistsError,
		},
		{
			name:           "Validation Failure (Missing Title)",
			requestBody:    CreateQuestRequest{Description: "no title"},
			setupMock:      func(m *MockQuestService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequestSummary,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := &MockQuestService{}
			tt.setupMock(mockSvc)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/quest", bytes.NewBuffer(body))
			w := httptest.NewRecorder()

			HandleCreateQuest(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestHandleGetQuest(t *testing.T) {
	t.Run("By ID", func(t *testing.T) {
		mockSvc := &MockQuestService{}
		mockSvc.On("GetByID", mock.Anything, 7).
			Return(&domain.Quest{ID: 7, Title: "Clear the rat cellar", Active: true}, nil)

		req := httptest.NewRequest("GET", "/quest?id=7", nil)
		w := httptest.NewRecorder()

		HandleGetQuest(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"id":7`)
		mockSvc.AssertExpectations(t)
	})

	t.Run("By Title", func(t *testing.T) {
		mockSvc := &MockQuestService{}
		mockSvc.On("GetByTitle", mock.Anything, "clear the rat cellar").
			Return(&domain.Quest{ID: 7, Title: "Clear the rat cellar", Active: true}, nil)

		req := httptest.NewRequest("GET", "/quest?title=clear+the+rat+cellar", nil)
		w := httptest.NewRecorder()

		HandleGetQuest(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"title":"Clear the rat cellar"`)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Bad ID", func(t *testing.T) {
		mockSvc := &MockQuestService{}

		req := httptest.NewRequest("GET", "/quest?id=seven", nil)
		w := httptest.NewRecorder()

		HandleGetQuest(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidQuestID)
		mockSvc.AssertNumberOfCalls(t, "GetByID", 0)
	})

	t.Run("Missing Params", func(t *testing.T) {
		mockSvc := &MockQuestService{}

		req := httptest.NewRequest("GET", "/quest", nil)
		w := httptest.NewRecorder()

		HandleGetQuest(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Either id or title is required")
	})

	t.Run("Not Found", func(t *testing.T) {
		mockSvc := &MockQuestService{}
		mockSvc.On("GetByID", mock.Anything, 99).
			Return(nil, domain.ErrQuestNotFound)

		req := httptest.NewRequest("GET", "/quest?id=99", nil)
		w := httptest.NewRecorder()

		HandleGetQuest(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgQuestNotFoundError)
		mockSvc.AssertExpectations(t)
	})
}

func TestHandleModifyQuest(t *testing.T) {
	InitValidator()

	t.Run("Success", func(t *testing.T) {
		mockSvc := &MockQuestService{}
		mockSvc.On("Modify", mock.Anything, 7, domain.QuestUpdate{QuestGiver: strPtr("Captain Aldis")}).
			Return(&domain.Quest{ID: 7, Title: "Clear the rat cellar", QuestGiver: "Captain Aldis", Active: true}, nil)

		body, _ := json.Marshal(ModifyQuestRequest{ID: 7, QuestGiver: strPtr("Captain Aldis")})
		req := httptest.NewRequest("POST", "/quest/modify", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		HandleModifyQuest(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"quest_giver":"Captain Aldis"`)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Empty Update Rejected", func(t *testing.T) {
		mockSvc := &MockQuestService{}
		mockSvc.On("Modify", mock.Anything, 7, domain.QuestUpdate{}).
			Return(nil, domain.ErrInvalidInput)

		body, _ := json.Marshal(ModifyQuestRequest{ID: 7})
		req := httptest.NewRequest("POST", "/quest/modify", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		HandleModifyQuest(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidRequestError)
		mockSvc.AssertExpectations(t)
	})
}

func TestHandleAddQuestDetail(t *testing.T) {
	InitValidator()

	t.Run("Success", func(t *testing.T) {
		mockSvc := &MockQuestService{}
		mockSvc.On("AddDetail", mock.Anything, 7, "The rats answer to a wererat.").
			Return(&domain.Quest{ID: 7, Title: "Clear the rat cellar", Description: "The rats answer to a wererat.", Active: true}, nil)

		body, _ := json.Marshal(QuestDetailRequest{ID: 7, Detail: "The rats answer to a wererat."})
		req := httptest.NewRequest("POST", "/quest/detail", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		HandleAddQuestDetail(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "wererat")
		mockSvc.AssertExpectations(t)
	})

	t.Run("Validation Failure (Missing Detail)", func(t *testing.T) {
		mockSvc := &MockQuestService{}

		body, _ := json.Marshal(QuestDetailRequest{ID: 7})
		req := httptest.NewRequest("POST", "/quest/detail", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		HandleAddQuestDetail(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockSvc.AssertNumberOfCalls(t, "AddDetail", 0)
	})
}

func TestHandleCompleteQuest(t *testing.T) {
	InitValidator()

	t.Run("Success", func(t *testing.T) {
		mockSvc := &MockQuestService{}
		mockSvc.On("Complete", mock.Anything, 7).
			Return(&domain.Quest{ID: 7, Title: "Clear the rat cellar", Active: false}, nil)

		body, _ := json.Marshal(CompleteQuestRequest{ID: 7})
		req := httptest.NewRequest("POST", "/quest/complete", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		HandleCompleteQuest(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"active":false`)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Already Complete", func(t *testing.T) {
		mockSvc := &MockQuestService{}
		mockSvc.On("Complete", mock.Anything, 7).
			Return(nil, domain.ErrQuestAlreadyComplete)

		body, _ := json.Marshal(CompleteQuestRequest{ID: 7})
		req := httptest.NewRequest("POST", "/quest/complete", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		HandleCompleteQuest(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgQuestAlreadyCompleteError)
		mockSvc.AssertExpectations(t)
	})
}

func TestHandleListQuests(t *testing.T) {
	t.Run("Default Filter", func(t *testing.T) {
		mockSvc := &MockQuestService{}
		mockSvc.On("List", mock.Anything, domain.QuestFilterNewest, 0).
			Return([]domain.Quest{
				{ID: 7, Title: "clear the rat cellar", Active: true},
				{ID: 8, Title: "escort the caravan", Active: true},
			}, nil)

		req := httptest.NewRequest("GET", "/quest/list", nil)
		w := httptest.NewRecorder()

		HandleListQuests(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		// Rendered message title-cases the quest names
		assert.Contains(t, w.Body.String(), "Clear The Rat Cellar")
		assert.Contains(t, w.Body.String(), `"quests":[`)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Filter And Limit Forwarded", func(t *testing.T) {
		mockSvc := &MockQuestService{}
		mockSvc.On("List", mock.Anything, "active", 3).
			Return([]domain.Quest{}, nil)

		req := httptest.NewRequest("GET", "/quest/list?filter=active&limit=3", nil)
		w := httptest.NewRecorder()

		HandleListQuests(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Invalid Limit", func(t *testing.T) {
		mockSvc := &MockQuestService{}

		req := httptest.NewRequest("GET", "/quest/list?limit=zero", nil)
		w := httptest.NewRecorder()

		HandleListQuests(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidLimit)
		mockSvc.AssertNumberOfCalls(t, "List", 0)
	})

	t.Run("Unknown Filter Rejected", func(t *testing.T) {
		mockSvc := &MockQuestService{}
		mockSvc.On("List", mock.Anything, "sideways", 0).
			Return(nil, domain.ErrInvalidInput)

		req := httptest.NewRequest("GET", "/quest/list?filter=sideways", nil)
		w := httptest.NewRecorder()

		HandleListQuests(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockSvc.AssertExpectations(t)
	})
}
