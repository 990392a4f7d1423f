package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/osse101/DungeonBot_Go/internal/domain"
	"github.com/osse101/DungeonBot_Go/internal/logger"
	"github.com/osse101/DungeonBot_Go/internal/quest"
)

// CreateQuestRequest represents a new quest log entry.
type CreateQuestRequest struct {
	Title         string `json:"title" validate:"required,max=256"`
	Description   string `json:"description" validate:"max=2048"`
	QuestGiver    string `json:"quest_giver" validate:"max=256"`
	LocationGiven string `json:"location_given" validate:"max=256"`
}

// ModifyQuestRequest represents a partial update to a quest. Omitted fields
// are left unchanged.
type ModifyQuestRequest struct {
	ID            int     `json:"id" validate:"required,min=1"`
	Title         *string `json:"title,omitempty" validate:"omitempty,max=256"`
	Description   *string `json:"description,omitempty" validate:"omitempty,max=2048"`
	QuestGiver    *string `json:"quest_giver,omitempty" validate:"omitempty,max=256"`
	LocationGiven *string `json:"location_given,omitempty" validate:"omitempty,max=256"`
}

// QuestDetailRequest appends a detail line to a quest's description.
type QuestDetailRequest struct {
	ID     int    `json:"id" validate:"required,min=1"`
	Detail string `json:"detail" validate:"required,max=2048"`
}

// CompleteQuestRequest marks a quest as finished.
type CompleteQuestRequest struct {
	ID int `json:"id" validate:"required,min=1"`
}

// QuestListResponse carries the rendered quest log alongside the entries.
type QuestListResponse struct {
	Message string         `json:"message"`
	Quests  []domain.Quest `json:"quests"`
}

// HandleCreateQuest adds a new quest to the campaign log.
// @Summary Create quest
// @Description Add a new active quest to the campaign log
// @Tags quest
// @Accept json
// @Produce json
// @Param request body CreateQuestRequest true "Quest details"
// @Success 201 {object} domain.Quest
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /quest [post]
func HandleCreateQuest(questService quest.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handleAction(w, r, "Create quest", http.StatusCreated,
			func(ctx context.Context, req CreateQuestRequest) (*domain.Quest, error) {
				return questService.Create(ctx, req.Title, req.Description, req.QuestGiver, req.LocationGiven)
			},
			func(q *domain.Quest) interface{} { return q },
		)
	}
}

// HandleGetQuest looks up a single quest by id or title.
// @Summary Get quest
// @Description Look up one quest by numeric id or by title
// @Tags quest
// @Produce json
// @Param id query int false "Quest ID"
// @Param title query string false "Quest title (case-insensitive)"
// @Success 200 {object} domain.Quest
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /quest [get]
func HandleGetQuest(questService quest.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		idParam := r.URL.Query().Get("id")
		title := r.URL.Query().Get("title")

		switch {
		case idParam != "":
			id, err := strconv.Atoi(idParam)
			if err != nil || id < 1 {
				log.Warn("Invalid quest id", "id", idParam)
				respondError(w, http.StatusBadRequest, ErrMsgInvalidQuestID)
				return
			}
			found, err := questService.GetByID(r.Context(), id)
			if err != nil {
				respondServiceError(w, r, "Get quest", err)
				return
			}
			respondJSON(w, http.StatusOK, found)

		case title != "":
			found, err := questService.GetByTitle(r.Context(), title)
			if err != nil {
				respondServiceError(w, r, "Get quest", err)
				return
			}
			respondJSON(w, http.StatusOK, found)

		default:
			log.Warn("Missing id or title query parameter")
			respondError(w, http.StatusBadRequest, "Either id or title is required")
		}
	}
}

// HandleModifyQuest applies a partial update to a quest.
// @Summary Modify quest
// @Description Update one or more fields of a quest
// @Tags quest
// @Accept json
// @Produce json
// @Param request body ModifyQuestRequest true "Fields to change"
// @Success 200 {object} domain.Quest
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /quest/modify [post]
func HandleModifyQuest(questService quest.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handleAction(w, r, "Modify quest", http.StatusOK,
			func(ctx context.Context, req ModifyQuestRequest) (*domain.Quest, error) {
				return questService.Modify(ctx, req.ID, domain.QuestUpdate{
					Title:         req.Title,
					Description:   req.Description,
					QuestGiver:    req.QuestGiver,
					LocationGiven: req.LocationGiven,
				})
			},
			func(q *domain.Quest) interface{} { return q },
		)
	}
}

// HandleAddQuestDetail appends a detail line to a quest.
// @Summary Add quest detail
// @Description Append a detail line to a quest's description
// @Tags quest
// @Accept json
// @Produce json
// @Param request body QuestDetailRequest true "Detail to append"
// @Success 200 {object} domain.Quest
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /quest/detail [post]
func HandleAddQuestDetail(questService quest.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handleAction(w, r, "Add quest detail", http.StatusOK,
			func(ctx context.Context, req QuestDetailRequest) (*domain.Quest, error) {
				return questService.AddDetail(ctx, req.ID, req.Detail)
			},
			func(q *domain.Quest) interface{} { return q },
		)
	}
}

// HandleCompleteQuest marks a quest as finished.
// @Summary Complete quest
// @Description Mark a quest complete and stamp its completion time
// @Tags quest
// @Accept json
// @Produce json
// @Param request body CompleteQuestRequest true "Quest to complete"
// @Success 200 {object} domain.Quest
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /quest/complete [post]
func HandleCompleteQuest(questService quest.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handleAction(w, r, "Complete quest", http.StatusOK,
			func(ctx context.Context, req CompleteQuestRequest) (*domain.Quest, error) {
				return questService.Complete(ctx, req.ID)
			},
			func(q *domain.Quest) interface{} { return q },
		)
	}
}

// HandleListQuests returns a filtered slice of the quest log together with
// the rendered text the gateways post to chat.
// @Summary List quests
// @Description List quests by filter: newest, updated, active, inactive, or all
// @Tags quest
// @Produce json
// @Param filter query string false "Listing filter" default(newest)
// @Param limit query int false "Maximum entries for bounded filters"
// @Success 200 {object} QuestListResponse
// @Failure 400 {object} ErrorResponse
// @Router /quest/list [get]
func HandleListQuests(questService quest.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		filter := GetOptionalQueryParam(r, "filter", domain.QuestFilterNewest)

		limit := 0
		if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
			parsed, err := strconv.Atoi(limitParam)
			if err != nil || parsed < 1 {
				log.Warn("Invalid limit parameter", "limit", limitParam)
				respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
				return
			}
			limit = parsed
		}

		quests, err := questService.List(r.Context(), filter, limit)
		if err != nil {
			respondServiceError(w, r, "List quests", err)
			return
		}

		respondJSON(w, http.StatusOK, QuestListResponse{
			Message: quest.FormatQuestList(quests),
			Quests:  quests,
		})
	}
}
