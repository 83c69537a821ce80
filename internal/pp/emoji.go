package pp

// Emoji is the type of emoji strings.
type Emoji string

const (
	EmojiStar   Emoji = "🌟" // stars attached to the tool name
	EmojiBullet Emoji = "🔸" // generic bullet points

	EmojiEnvVars Emoji = "📖" // reading configuration
	EmojiConfig  Emoji = "🔧" // showing configuration
	EmojiBatch   Emoji = "📦" // batch requests

	EmojiParse    Emoji = "🔍" // parsed expressions
	EmojiValid    Emoji = "✅" // valid expressions
	EmojiInvalid  Emoji = "❌" // invalid expressions
	EmojiCalendar Emoji = "📅" // predicted occurrences
	EmojiGenerate Emoji = "🪄" // generated expressions

	EmojiNow   Emoji = "🏃" // an event that is happening now or immediately
	EmojiAlarm Emoji = "⏰" // an event that is scheduled to happen, but not immediately
	EmojiBye   Emoji = "👋" // bye!

	EmojiUserError   Emoji = "😡" // mistakes made by users
	EmojiUserWarning Emoji = "😦" // warnings about possible mistakes
	EmojiError       Emoji = "😞" // errors that are not (directly) caused by user errors
	EmojiImpossible  Emoji = "🤯" // the impossible happened
	EmojiHint        Emoji = "💡" // Hints
)

// indentPrefix should be wider than an emoji to achieve visually pleasing results.
const indentPrefix = "   "
