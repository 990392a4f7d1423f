package domain

// Platform constants
const (
	PlatformTwitch  = "twitch"
	PlatformYoutube = "youtube"
	PlatformDiscord = "discord"
	DiscordBotID    = "DungeonBot#4201"
)

// Chat command constants for the prefix dispatcher
const (
	CommandPrefix = "!"
	CommandRoll   = "roll"
	CommandHelp   = "help"
)

// RollSeparatorKeyword joins clauses in a compound roll argument.
// Matched case-insensitively.
const RollSeparatorKeyword = "and"
