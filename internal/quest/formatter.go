package quest

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/DungeonBot_Go/internal/domain"
)

// CompletedDateLayout formats completion dates in chat output
const CompletedDateLayout = "2006-01-02"

// DisplayTitle renders a quest title in title case for chat output.
// Casers are stateful, so one is built per call.
func DisplayTitle(quest domain.Quest) string {
	return cases.Title(language.English).String(quest.Title)
}

// FormatQuestLine renders one quest as a single quest log line
func FormatQuestLine(quest domain.Quest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s** (#%d)", DisplayTitle(quest), quest.ID)

	switch {
	case quest.QuestGiver != "" && quest.LocationGiven != "":
		fmt.Fprintf(&b, " - given by %s at %s", quest.QuestGiver, quest.LocationGiven)
	case quest.QuestGiver != "":
		fmt.Fprintf(&b, " - given by %s", quest.QuestGiver)
	case quest.LocationGiven != "":
		fmt.Fprintf(&b, " - at %s", quest.LocationGiven)
	}

	if !quest.Active && quest.CompletedAt != nil {
		fmt.Fprintf(&b, " (completed %s)", quest.CompletedAt.Format(CompletedDateLayout))
	}
	return b.String()
}

// FormatQuestDetail renders the full record for one quest, with each
// appended detail on its own quoted line
func FormatQuestDetail(quest domain.Quest) string {
	lines := []string{fmt.Sprintf("**%s** (#%d)", DisplayTitle(quest), quest.ID)}

	if quest.QuestGiver != "" {
		lines = append(lines, "Given by: "+quest.QuestGiver)
	}
	if quest.LocationGiven != "" {
		lines = append(lines, "Location: "+quest.LocationGiven)
	}

	status := StatusActive
	if !quest.Active {
		status = StatusCompleted
		if quest.CompletedAt != nil {
			status += " " + quest.CompletedAt.Format(CompletedDateLayout)
		}
	}
	lines = append(lines, "Status: "+status)

	if quest.Description != "" {
		for _, detail := range strings.Split(quest.Description, domain.QuestDetailSeparator) {
			lines = append(lines, "> "+detail)
		}
	}

	return strings.Join(lines, "\n")
}

// FormatQuestList renders a listing, one line per quest
func FormatQuestList(quests []domain.Quest) string {
	if len(quests) == 0 {
		return EmptyQuestLogMessage
	}

	lines := make([]string, len(quests))
	for i, quest := range quests {
		lines[i] = FormatQuestLine(quest)
	}
	return strings.Join(lines, "\n")
}
