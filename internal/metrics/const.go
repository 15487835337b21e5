package metrics

const Namespace = "gcombinator_news"

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)
