package help

import (
	"fmt"
	"strings"

	"github.com/osse101/DungeonBot_Go/internal/domain"
)

// Formatter provides platform-specific formatting for help content
type Formatter struct{}

// NewFormatter creates a new formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

// FormatTopic formats a topic for the specified platform.
// Discord gets the full markdown card; chat platforms get a single line.
func (f *Formatter) FormatTopic(topic *Topic, platform string) string {
	switch strings.ToLower(platform) {
	case domain.PlatformTwitch, domain.PlatformYoutube:
		line := fmt.Sprintf("%s: %s", topic.Name, topic.Summary)
		if topic.Usage != "" {
			line += " Usage: " + topic.Usage
		}
		return line
	default:
		// Fallback to Discord format
		lines := []string{fmt.Sprintf("**%s** - %s", topic.Name, topic.Summary)}
		if topic.Usage != "" {
			lines = append(lines, fmt.Sprintf("Usage: `%s`", topic.Usage))
		}
		if len(topic.Examples) > 0 {
			lines = append(lines, "Examples:")
			for _, example := range topic.Examples {
				lines = append(lines, fmt.Sprintf("`%s`", example))
			}
		}
		if topic.Notes != "" {
			lines = append(lines, "Note: "+topic.Notes)
		}
		return strings.Join(lines, "\n")
	}
}

// FormatTopicList formats the generic help text listing available topics
func (f *Formatter) FormatTopicList(names []string, platform string) string {
	joined := strings.Join(names, ", ")

	switch strings.ToLower(platform) {
	case domain.PlatformDiscord:
		return fmt.Sprintf("**DungeonBot Help**\nTopics: %s\nUse `!help <topic>` for details.", joined)
	case domain.PlatformTwitch, domain.PlatformYoutube:
		return fmt.Sprintf("DungeonBot help topics: %s. Use !help <topic> for details.", joined)
	default:
		return fmt.Sprintf("Available help topics: %s", joined)
	}
}
