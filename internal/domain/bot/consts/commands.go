// Package consts contains constants for the bot domain
package consts

// Command represents a bot command
type Command struct {
	Name        string
	Description string
}

// Bot commands
var (
	CommandStart = Command{Name: "start", Description: "Start the bot"}
	CommandHelp  = Command{Name: "help", Description: "Show help message"}
)

// Callback payload prefixes consumed by the bot
const (
	CallbackQualityPrefix = "quality:"
	CallbackCodecPrefix   = "codec:"
	CallbackFormatsPrefix = "formats:"
)

// Chat actions sent while a request is being processed
const (
	ActionTyping         = "typing"
	ActionUploadDocument = "upload_document"
)
