package discord

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// CommandHandler handles a slash command
type CommandHandler func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient)

// CommandRegistry holds the registered commands
type CommandRegistry struct {
	Commands map[string]*discordgo.ApplicationCommand
	Handlers map[string]CommandHandler
}

// NewCommandRegistry creates a new registry
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		Commands: make(map[string]*discordgo.ApplicationCommand),
		Handlers: make(map[string]CommandHandler),
	}
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(cmd *discordgo.ApplicationCommand, handler CommandHandler) {
	r.Commands[cmd.Name] = cmd
	r.Handlers[cmd.Name] = handler
}

// Handle processes an interaction
func (r *CommandRegistry) Handle(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
	name := i.ApplicationCommandData().Name
	h, ok := r.Handlers[name]
	if !ok {
		// Stale registrations can outlive a deploy that removed a command
		slog.Warn("No handler for command", "command", name)
		return
	}
	RecordCommand()
	h(s, i, client)
}

// RegisterCommands reconciles the registry against what Discord already has
// and bulk-overwrites only on drift, so restarts stay clear of the rate
// limit. Registration targets the bot's guild when one is configured;
// guild-scoped commands propagate immediately, global ones can take an hour.
func (b *Bot) RegisterCommands(registry *CommandRegistry, forceUpdate bool) error {
	existingCmds, err := b.Session.ApplicationCommands(b.AppID, b.GuildID)
	if err != nil {
		return fmt.Errorf("failed to fetch existing commands: %w", err)
	}

	desiredCmds := make([]*discordgo.ApplicationCommand, 0, len(registry.Commands))
	for _, cmd := range registry.Commands {
		desiredCmds = append(desiredCmds, cmd)
	}

	if !forceUpdate && commandsEqual(existingCmds, desiredCmds) {
		slog.Info("Commands unchanged, skipping registration", "count", len(existingCmds))
		return nil
	}

	slog.Info("Updating Discord commands",
		"existing", len(existingCmds),
		"desired", len(desiredCmds),
		"forced", forceUpdate)

	if _, err := b.Session.ApplicationCommandBulkOverwrite(b.AppID, b.GuildID, desiredCmds); err != nil {
		return fmt.Errorf("failed to update commands: %w", err)
	}

	slog.Info("Commands updated", "count", len(desiredCmds))
	return nil
}

// commandsEqual reports whether the desired set matches what Discord holds.
// Order is irrelevant; Discord returns commands in its own order.
func commandsEqual(existing, desired []*discordgo.ApplicationCommand) bool {
	if len(existing) != len(desired) {
		return false
	}

	byName := make(map[string]*discordgo.ApplicationCommand, len(existing))
	for _, cmd := range existing {
		byName[cmd.Name] = cmd
	}

	for _, want := range desired {
		got, ok := byName[want.Name]
		if !ok || !commandEqual(got, want) {
			return false
		}
	}

	return true
}

// commandEqual compares the fields this bot actually sets on its commands.
// Anything Discord fills in server-side (IDs, version stamps) is ignored so
// a round-trip through the API still compares equal.
func commandEqual(a, b *discordgo.ApplicationCommand) bool {
	if a.Name != b.Name || a.Description != b.Description {
		return false
	}
	if !permissionsEqual(a.DefaultMemberPermissions, b.DefaultMemberPermissions) {
		return false
	}
	if len(a.Options) != len(b.Options) {
		return false
	}
	for i := range a.Options {
		if !optionEqual(a.Options[i], b.Options[i]) {
			return false
		}
	}
	return true
}

func permissionsEqual(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// optionEqual recurses one level: options carry choices but this bot nests
// no deeper (subcommands hold plain options only).
func optionEqual(a, b *discordgo.ApplicationCommandOption) bool {
	if a.Type != b.Type || a.Name != b.Name || a.Description != b.Description || a.Required != b.Required {
		return false
	}
	if len(a.Choices) != len(b.Choices) {
		return false
	}
	for i := range a.Choices {
		if a.Choices[i].Name != b.Choices[i].Name || a.Choices[i].Value != b.Choices[i].Value {
			return false
		}
	}
	return true
}

// respondError replaces the deferred response with a plain error line. Meant
// for system-level failures where detail would not help the user.
func respondError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &message,
	}); err != nil {
		slog.Error("Failed to edit interaction response", "error", err)
	}
}

// ResponseConfig defines the visual properties of a command response embed
type ResponseConfig struct {
	Title string
	Color int
}

// handleEmbedResponse runs the standard slash-command shape: defer, call the
// API, and answer with either a friendly error or a success embed. Handlers
// supply just the action closure.
func handleEmbedResponse(
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	action func() (string, error),
	config ResponseConfig,
) {
	if !deferResponse(s, i) {
		return
	}

	msg, err := action()
	if err != nil {
		slog.Error("Action failed", "title", config.Title, "error", err)
		respondFriendlyError(s, i, err.Error())
		return
	}

	sendEmbed(s, i, createEmbed(config.Title, msg, config.Color, ""))
}

// deferResponse acknowledges the interaction before the 3 second deadline
// Discord enforces. Every handler that talks to the API defers first; a
// false return means the handler should bail out.
func deferResponse(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}); err != nil {
		slog.Error("Failed to send deferred response", "error", err)
		return false
	}
	return true
}

// getInteractionUser returns the invoking user. Guild interactions carry the
// user inside Member, DMs carry it at the top level.
func getInteractionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

func getOptions(i *discordgo.InteractionCreate) []*discordgo.ApplicationCommandInteractionDataOption {
	return i.ApplicationCommandData().Options
}

// respondFriendlyError translates an API error into user-facing wording
// before responding. Use it for business errors the user can act on; plain
// respondError covers the rest.
func respondFriendlyError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	respondError(s, i, formatFriendlyError(message))
}

// formatFriendlyError cleans up technical error messages.
// The match keys mirror the core API's user-facing error wording; messages
// might be wrapped or carry details, so containment is checked rather than
// equality.
func formatFriendlyError(msg string) string {
	// client.go prefixes everything it relays
	msg = strings.TrimPrefix(msg, "API error: ")

	switch {
	case strings.Contains(msg, "Invalid roll"):
		return MsgRollInvalid
	case strings.Contains(msg, "Roll is out of range"):
		return MsgRollOutOfRange
	case strings.Contains(msg, "Quest not found"):
		return MsgQuestNotFound
	case strings.Contains(msg, "quest with that title already exists"):
		return MsgQuestAlreadyExists
	case strings.Contains(msg, "already complete"):
		return MsgQuestAlreadyComplete
	case strings.Contains(msg, "User not found"):
		return MsgUserNotFound
	default:
		return "❌ " + msg
	}
}

// sendEmbed edits the deferred response to carry one embed. Send failures
// are logged here so handlers stay free of that plumbing.
func sendEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	}); err != nil {
		slog.Error("Failed to send response", "error", err)
	}
}

// Embed footers. Quest log embeds carry their own so the log reads as one
// feature across commands.
const (
	FooterDungeonBot      = "DungeonBot"
	FooterDungeonBotQuest = "DungeonBot Quest Log"
)

// createEmbed builds the standard embed; an empty footerText falls back to
// the bot-wide footer.
func createEmbed(title, description string, color int, footerText string) *discordgo.MessageEmbed {
	if footerText == "" {
		footerText = FooterDungeonBot
	}
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Footer: &discordgo.MessageEmbedFooter{
			Text: footerText,
		},
	}
}
