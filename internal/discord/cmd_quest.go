package discord

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/DungeonBot_Go/internal/domain"
)

// Embed colors for quest commands
const (
	colorQuestCreated  = 0xf39c12 // Orange
	colorQuestLog      = 0x3498db // Blue
	colorQuestDetail   = 0x9b59b6 // Purple
	colorQuestComplete = 0x2ecc71 // Green
)

// QuestCommand returns the quest command definition and handler.
// Logs a new quest in the shared campaign quest log.
func QuestCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "quest",
		Description: "Log a new quest in the quest log",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "title",
				Description: "Quest title",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "giver",
				Description: "Who gave the quest",
				Required:    false,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "location",
				Description: "Where the quest was given",
				Required:    false,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "description",
				Description: "What the quest is about",
				Required:    false,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		var title, giver, location, description string
		for _, opt := range getOptions(i) {
			switch opt.Name {
			case "title":
				title = opt.StringValue()
			case "giver":
				giver = opt.StringValue()
			case "location":
				location = opt.StringValue()
			case "description":
				description = opt.StringValue()
			}
		}

		quest, err := client.CreateQuest(title, description, giver, location)
		if err != nil {
			slog.Error("Failed to create quest", "error", err, "title", title)
			respondFriendlyError(s, i, err.Error())
			return
		}

		embed := questEmbed(quest, "📜 Quest Logged!", colorQuestCreated)
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

// QuestLogCommand returns the questlog command definition and handler.
// Lists quests with an optional filter.
func QuestLogCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "questlog",
		Description: "List quests from the quest log",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "filter",
				Description: "Which quests to list (default newest)",
				Required:    false,
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "newest", Value: domain.QuestFilterNewest},
					{Name: "updated", Value: domain.QuestFilterUpdated},
					{Name: "active", Value: domain.QuestFilterActive},
					{Name: "inactive", Value: domain.QuestFilterInactive},
					{Name: "all", Value: domain.QuestFilterAll},
				},
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		filter := domain.QuestFilterNewest
		for _, opt := range getOptions(i) {
			if opt.Name == "filter" {
				filter = opt.StringValue()
			}
		}

		list, err := client.ListQuests(filter, 0)
		if err != nil {
			slog.Error("Failed to list quests", "error", err, "filter", filter)
			respondFriendlyError(s, i, err.Error())
			return
		}

		embed := createEmbed("📜 Quest Log", list.Message, colorQuestLog, FooterDungeonBotQuest)
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

// QuestShowCommand returns the questshow command definition and handler.
// Shows the full record for one quest, looked up by title.
func QuestShowCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "questshow",
		Description: "Show one quest in full",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "title",
				Description: "Title of the quest to show",
				Required:    true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		title := getOptions(i)[0].StringValue()

		quest, err := client.GetQuestByTitle(title)
		if err != nil {
			slog.Error("Failed to get quest", "error", err, "title", title)
			respondFriendlyError(s, i, err.Error())
			return
		}

		embed := questEmbed(quest, "📜 "+quest.Title, colorQuestLog)
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

// QuestDetailCommand returns the questdetail command definition and handler.
// Appends a detail line to an existing quest, looked up by title.
func QuestDetailCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "questdetail",
		Description: "Add a detail to an existing quest",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "title",
				Description: "Title of the quest to update",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "detail",
				Description: "Detail to append",
				Required:    true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		var title, detail string
		for _, opt := range getOptions(i) {
			switch opt.Name {
			case "title":
				title = opt.StringValue()
			case "detail":
				detail = opt.StringValue()
			}
		}

		quest, err := client.GetQuestByTitle(title)
		if err != nil {
			slog.Error("Failed to get quest", "error", err, "title", title)
			respondFriendlyError(s, i, err.Error())
			return
		}

		updated, err := client.AddQuestDetail(quest.ID, detail)
		if err != nil {
			slog.Error("Failed to add quest detail", "error", err, "quest_id", quest.ID)
			respondFriendlyError(s, i, err.Error())
			return
		}

		embed := questEmbed(updated, "📝 Detail Added", colorQuestDetail)
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

// QuestCompleteCommand returns the questcomplete command definition and handler.
// Marks a quest complete, looked up by title.
func QuestCompleteCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "questcomplete",
		Description: "Mark a quest as completed",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "title",
				Description: "Title of the quest to complete",
				Required:    true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		title := getOptions(i)[0].StringValue()

		quest, err := client.GetQuestByTitle(title)
		if err != nil {
			slog.Error("Failed to get quest", "error", err, "title", title)
			respondFriendlyError(s, i, err.Error())
			return
		}

		completed, err := client.CompleteQuest(quest.ID)
		if err != nil {
			slog.Error("Failed to complete quest", "error", err, "quest_id", quest.ID)
			respondFriendlyError(s, i, err.Error())
			return
		}

		embed := questEmbed(completed, "🏆 Quest Complete!", colorQuestComplete)
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

// questEmbed renders one quest as an embed with giver, location, status
// and the description details as quoted lines.
func questEmbed(quest *domain.Quest, title string, color int) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:     title,
		Color:     color,
		Fields:    make([]*discordgo.MessageEmbedField, 0, 3),
		Timestamp: quest.UpdatedAt.Format(time.RFC3339),
		Footer: &discordgo.MessageEmbedFooter{
			Text: FooterDungeonBotQuest,
		},
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**%s** (#%d)", quest.Title, quest.ID)
	if quest.Description != "" {
		for _, detail := range strings.Split(quest.Description, domain.QuestDetailSeparator) {
			b.WriteString("\n> " + detail)
		}
	}
	embed.Description = b.String()

	if quest.QuestGiver != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "🧙 Quest Giver",
			Value:  quest.QuestGiver,
			Inline: true,
		})
	}
	if quest.LocationGiven != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "🗺️ Location",
			Value:  quest.LocationGiven,
			Inline: true,
		})
	}

	status := "🔄 Active"
	if !quest.Active {
		status = "✅ Completed"
		if quest.CompletedAt != nil {
			status += " " + quest.CompletedAt.Format("2006-01-02")
		}
	}
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:   "Status",
		Value:  status,
		Inline: true,
	})

	return embed
}
