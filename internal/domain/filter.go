package domain

// Quest list filter constants
const (
	QuestFilterNewest   = "newest"
	QuestFilterUpdated  = "updated"
	QuestFilterActive   = "active"
	QuestFilterInactive = "inactive"
	QuestFilterAll      = "all"
)

// IsValidQuestFilter checks if a filter string is valid (empty string is valid = newest)
func IsValidQuestFilter(filter string) bool {
	if filter == "" {
		return true
	}
	return filter == QuestFilterNewest || filter == QuestFilterUpdated ||
		filter == QuestFilterActive || filter == QuestFilterInactive || filter == QuestFilterAll
}
