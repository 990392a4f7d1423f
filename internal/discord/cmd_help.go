package discord

import (
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// HelpCommand returns the help command definition and handler.
// Help text lives in the core's topic registry so chat and slash surfaces
// stay in sync; the gateway only renders what the API returns.
func HelpCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "help",
		Description: "Get help with DungeonBot commands",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "topic",
				Description: "Specific topic to learn about (optional)",
				Required:    false,
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "Roll", Value: "roll"},
					{Name: "Quest", Value: "quest"},
					{Name: "Quest Log", Value: "questlog"},
				},
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		topic := ""
		if options := getOptions(i); len(options) > 0 {
			topic = options[0].StringValue()
		}

		description, err := client.GetHelp(topic)
		if err != nil {
			slog.Error("Failed to get help", "topic", topic, "error", err)
			respondFriendlyError(s, i, err.Error())
			return
		}

		sendEmbed(s, i, createHelpEmbed(topic, description))
	}

	return cmd, handler
}

// createHelpEmbed creates an embed for the given help topic
func createHelpEmbed(topic, content string) *discordgo.MessageEmbed {
	topicConfig := map[string]struct {
		title string
		color int
		icon  string
	}{
		"":         {"DungeonBot Help", 0x95A5A6, "⚙️"},
		"roll":     {"Rolling Dice", 0x9B59B6, "🎲"},
		"quest":    {"Quests", 0xF39C12, "📜"},
		"questlog": {"The Quest Log", 0x3498DB, "🗒️"},
	}

	config, ok := topicConfig[topic]
	if !ok {
		config = topicConfig[""]
	}

	return &discordgo.MessageEmbed{
		Title:       config.icon + " " + config.title,
		Description: content,
		Color:       config.color,
		Footer: &discordgo.MessageEmbedFooter{
			Text: "DungeonBot • Use /help [topic] for specific topics",
		},
	}
}
