package chatlayout

// CompletionSource supplies the strings offered as completions in a channel.
type CompletionSource interface {
	Completions(channel string) []string
}
