package chat

import "strings"

// Command is what a chat line asks for.
type Command int

const (
	// CommandUtterance routes the line through the preference pipeline.
	CommandUtterance Command = iota
	// CommandExit ends the conversation.
	CommandExit
	// CommandRecommend queries the catalog with the current preferences.
	CommandRecommend
)

// Classify matches the whole trimmed line against the command words,
// case-insensitively. Anything else is an utterance.
func Classify(line string) Command {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "exit", "quit":
		return CommandExit
	case "recommend":
		return CommandRecommend
	default:
		return CommandUtterance
	}
}
