package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking. These represent domain events that can be published
// and consumed by multiple modules.
//
// Event types follow the pattern: <entity>.<action> (e.g., "roll.performed")
const (
	// EventTypeRollPerformed is published after a roll command evaluates successfully
	EventTypeRollPerformed = "roll.performed"

	// EventTypeQuestCreated is published when a quest is added to the log
	EventTypeQuestCreated = "quest.created"

	// EventTypeQuestCompleted is published when a quest is marked complete
	EventTypeQuestCompleted = "quest.completed"

	// EventTypeMessageHandled is published when the dispatcher handles a chat command
	EventTypeMessageHandled = "message.handled"
)
