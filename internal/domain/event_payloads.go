package domain

// RollPerformedPayload is the event payload for roll.performed events.
// ParseOK is false when the argument was rejected before any dice were
// rolled; the numeric fields are zero in that case.
type RollPerformedPayload struct {
	Username    string `json:"username"`
	Platform    string `json:"platform"`
	ClauseCount int    `json:"clause_count"`
	DiceRolled  int    `json:"dice_rolled"`
	Total       int    `json:"total"`
	ParseOK     bool   `json:"parse_ok"`
	Timestamp   int64  `json:"timestamp"`
}

// QuestCreatedPayload is the event payload for quest.created events
type QuestCreatedPayload struct {
	QuestID   int    `json:"quest_id"`
	Title     string `json:"title"`
	Timestamp int64  `json:"timestamp"`
}

// QuestCompletedPayload is the event payload for quest.completed events
type QuestCompletedPayload struct {
	QuestID   int    `json:"quest_id"`
	Title     string `json:"title"`
	Timestamp int64  `json:"timestamp"`
}

// MessageHandledPayload is the event payload for message.handled events
type MessageHandledPayload struct {
	Platform  string `json:"platform"`
	Command   string `json:"command"`
	Timestamp int64  `json:"timestamp"`
}
