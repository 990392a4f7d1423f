package quest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/DungeonBot_Go/internal/domain"
)

func TestDisplayTitle(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		expected string
	}{
		{name: "lowercase", title: "the sunken crypt", expected: "The Sunken Crypt"},
		{name: "already cased", title: "The Sunken Crypt", expected: "The Sunken Crypt"},
		{name: "single word", title: "ratcatcher", expected: "Ratcatcher"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DisplayTitle(domain.Quest{Title: tt.title})
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFormatQuestLine(t *testing.T) {
	completedAt := time.Date(2026, 8, 14, 20, 15, 0, 0, time.UTC)

	tests := []struct {
		name     string
		quest    domain.Quest
		expected string
	}{
		{
			name: "full active quest",
			quest: domain.Quest{
				ID: 3, Title: "the sunken crypt", QuestGiver: "Elder Maren",
				LocationGiven: "Hollowbrook", Active: true,
			},
			expected: "**The Sunken Crypt** (#3) - given by Elder Maren at Hollowbrook",
		},
		{
			name:     "giver only",
			quest:    domain.Quest{ID: 4, Title: "escort duty", QuestGiver: "Captain Rolfe", Active: true},
			expected: "**Escort Duty** (#4) - given by Captain Rolfe",
		},
		{
			name:     "location only",
			quest:    domain.Quest{ID: 5, Title: "clear the old mine", LocationGiven: "Eastgate", Active: true},
			expected: "**Clear The Old Mine** (#5) - at Eastgate",
		},
		{
			name:     "bare quest",
			quest:    domain.Quest{ID: 6, Title: "ratcatcher", Active: true},
			expected: "**Ratcatcher** (#6)",
		},
		{
			name: "completed quest carries the date",
			quest: domain.Quest{
				ID: 7, Title: "slay the marsh wyrm", QuestGiver: "Elder Maren",
				Active: false, CompletedAt: &completedAt,
			},
			expected: "**Slay The Marsh Wyrm** (#7) - given by Elder Maren (completed 2026-08-14)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatQuestLine(tt.quest))
		})
	}
}

func TestFormatQuestDetail(t *testing.T) {
	completedAt := time.Date(2026, 8, 14, 20, 15, 0, 0, time.UTC)

	quest := domain.Quest{
		ID:            3,
		Title:         "the sunken crypt",
		Description:   "first noticed on the jobs board" + domain.QuestDetailSeparator + "bandits seen near the ford",
		QuestGiver:    "Elder Maren",
		LocationGiven: "Hollowbrook",
		Active:        false,
		CompletedAt:   &completedAt,
	}

	expected := "**The Sunken Crypt** (#3)\n" +
		"Given by: Elder Maren\n" +
		"Location: Hollowbrook\n" +
		"Status: completed 2026-08-14\n" +
		"> first noticed on the jobs board\n" +
		"> bandits seen near the ford"

	assert.Equal(t, expected, FormatQuestDetail(quest))
}

func TestFormatQuestDetail_ActiveMinimal(t *testing.T) {
	quest := domain.Quest{ID: 6, Title: "ratcatcher", Active: true}

	expected := "**Ratcatcher** (#6)\nStatus: active"

	assert.Equal(t, expected, FormatQuestDetail(quest))
}

func TestFormatQuestList(t *testing.T) {
	t.Run("empty log", func(t *testing.T) {
		assert.Equal(t, EmptyQuestLogMessage, FormatQuestList(nil))
	})

	t.Run("one line per quest", func(t *testing.T) {
		quests := []domain.Quest{
			{ID: 1, Title: "first errand", Active: true},
			{ID: 2, Title: "second errand", Active: true},
		}

		expected := "**First Errand** (#1)\n**Second Errand** (#2)"

		assert.Equal(t, expected, FormatQuestList(quests))
	})
}
