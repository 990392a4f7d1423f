package domain

import "time"

// QuestDetailSeparator joins appended details inside a quest description.
const QuestDetailSeparator = "||"

// Field length limits for quest records, mirrored by the database schema
const (
	QuestTitleMaxLen       = 256
	QuestDescriptionMaxLen = 2048
	QuestGiverMaxLen       = 256
	QuestLocationMaxLen    = 256
)

// DefaultQuestListLimit is the number of quests returned by bounded list queries.
const DefaultQuestListLimit = 5

// Quest is one entry in the campaign quest log. Active is true until the
// quest is completed; CompletedAt stays nil until then.
type Quest struct {
	ID            int        `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	QuestGiver    string     `json:"quest_giver"`
	LocationGiven string     `json:"location_given"`
	Active        bool       `json:"active"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
}

// QuestUpdate carries optional field changes for a quest. Nil fields are
// left unchanged.
type QuestUpdate struct {
	Title         *string `json:"title,omitempty"`
	Description   *string `json:"description,omitempty"`
	QuestGiver    *string `json:"quest_giver,omitempty"`
	LocationGiven *string `json:"location_given,omitempty"`
}

// Empty reports whether the update would change nothing.
func (u QuestUpdate) Empty() bool {
	return u.Title == nil && u.Description == nil && u.QuestGiver == nil && u.LocationGiven == nil
}
