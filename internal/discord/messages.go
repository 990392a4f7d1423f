package discord

// Friendly message constants for Discord responses
const (
	// Dice
	MsgRollInvalid    = "🎲 **That roll didn't parse!**\nTry something like `2d6+1`, or chain rolls with `and`: `1d20 and 2d4-1`."
	MsgRollOutOfRange = "🎲 **Too many dice!**\nKeep the count, sides and modifier within sane tabletop limits."

	// Quest log
	MsgQuestNotFound        = "📜 **Quest Not Found**\nMaybe check the spelling, or list quests with `/questlog`?"
	MsgQuestAlreadyExists   = "📜 **Already Logged**\nA quest with that title is in the log already."
	MsgQuestAlreadyComplete = "📜 **Already Done**\nThat quest was completed earlier."

	// User
	MsgUserNotFound = "👤 **User Not Found**\nHave they registered yet?"

	MsgGenericError = "❌ Something went wrong."
)
