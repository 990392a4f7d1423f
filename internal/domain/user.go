package domain

// UsernameMaxLen matches the width of the username column.
const UsernameMaxLen = 50

// User represents a registered user. ID is the internal UUID; the platform
// IDs are the external identifiers linked to this account.
type User struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	TwitchID  string `json:"twitch_id"`
	YoutubeID string `json:"youtube_id"`
	DiscordID string `json:"discord_id"`
}

// PlatformID returns the external identifier for the given platform, or ""
// when no link exists.
func (u User) PlatformID(platform string) string {
	switch platform {
	case PlatformTwitch:
		return u.TwitchID
	case PlatformYoutube:
		return u.YoutubeID
	case PlatformDiscord:
		return u.DiscordID
	}
	return ""
}

// SetPlatformID sets the external identifier for the given platform.
// Unknown platforms are ignored.
func (u *User) SetPlatformID(platform, externalID string) {
	switch platform {
	case PlatformTwitch:
		u.TwitchID = externalID
	case PlatformYoutube:
		u.YoutubeID = externalID
	case PlatformDiscord:
		u.DiscordID = externalID
	}
}
