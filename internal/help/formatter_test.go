package help_test

import (
	"testing"

	"github.com/osse101/DungeonBot_Go/internal/domain"
	"github.com/osse101/DungeonBot_Go/internal/help"
)

func TestFormatTopic_Discord(t *testing.T) {
	topic := &help.Topic{
		Name:     "roll",
		Summary:  "Roll dice using standard notation.",
		Usage:    "!roll <count>d<sides>",
		Examples: []string{"!roll 1d20", "!roll 3d6+2"},
		Notes:    "Join rolls with \"and\".",
	}

	got := help.NewFormatter().FormatTopic(topic, domain.PlatformDiscord)
	want := "**roll** - Roll dice using standard notation.\n" +
		"Usage: `!roll <count>d<sides>`\n" +
		"Examples:\n" +
		"`!roll 1d20`\n" +
		"`!roll 3d6+2`\n" +
		"Note: Join rolls with \"and\"."
	if got != want {
		t.Errorf("FormatTopic mismatch:\ngot:  %q\nwant: %q", got, want)
	}
}

func TestFormatTopic_TwitchIsSingleLine(t *testing.T) {
	topic := &help.Topic{
		Name:     "roll",
		Summary:  "Roll dice using standard notation.",
		Usage:    "!roll 1d20",
		Examples: []string{"!roll 1d20"},
	}

	got := help.NewFormatter().FormatTopic(topic, domain.PlatformTwitch)
	want := "roll: Roll dice using standard notation. Usage: !roll 1d20"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestFormatTopic_MinimalTopic(t *testing.T) {
	topic := &help.Topic{Name: "ping", Summary: "Check the bot."}

	got := help.NewFormatter().FormatTopic(topic, domain.PlatformDiscord)
	want := "**ping** - Check the bot."
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestFormatTopicList(t *testing.T) {
	names := []string{"help", "quest", "roll"}
	formatter := help.NewFormatter()

	discord := formatter.FormatTopicList(names, domain.PlatformDiscord)
	wantDiscord := "**DungeonBot Help**\nTopics: help, quest, roll\nUse `!help <topic>` for details."
	if discord != wantDiscord {
		t.Errorf("Expected %q, got %q", wantDiscord, discord)
	}

	twitch := formatter.FormatTopicList(names, domain.PlatformTwitch)
	wantTwitch := "DungeonBot help topics: help, quest, roll. Use !help <topic> for details."
	if twitch != wantTwitch {
		t.Errorf("Expected %q, got %q", wantTwitch, twitch)
	}

	other := formatter.FormatTopicList(names, "webhook")
	wantOther := "Available help topics: help, quest, roll"
	if other != wantOther {
		t.Errorf("Expected %q, got %q", wantOther, other)
	}
}
