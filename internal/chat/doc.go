// Package chat runs the interactive preference conversation.
//
// Each line the user types is either a command (exit, quit, recommend) or an
// utterance handed to the preference pipeline. After every processed
// utterance the updated preferences are printed; failures print one short line
// and the conversation continues. Only an exit command, end of input, or
// cancellation ends the loop.
package chat
