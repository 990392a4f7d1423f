package discord

import (
	"github.com/bwmarrin/discordgo"

	"github.com/osse101/DungeonBot_Go/internal/domain"
)

// RollCommand returns the roll command definition and handler.
// Rolls dice notation through the core API and posts the rendered result.
func RollCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "roll",
		Description: "Roll dice, like 2d6+1 or d20 and 2d4",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "notation",
				Description: "Dice notation: <count>d<sides> with an optional +/- modifier, joined by \"and\"",
				Required:    true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		notation := getOptions(i)[0].StringValue()
		user := getInteractionUser(i)

		handleEmbedResponse(s, i, func() (string, error) {
			report, err := client.Roll(domain.PlatformDiscord, user.ID, user.Username, notation)
			if err != nil {
				return "", err
			}
			return report.Message, nil
		}, ResponseConfig{
			Title: "🎲 Dice Roll",
			Color: 0x9b59b6, // Purple
		})
	}

	return cmd, handler
}
