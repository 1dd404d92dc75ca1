package model

// Answer is the composed reply to a single query
type Answer struct {
	Text       string   `json:"response"`
	Confidence float64  `json:"confidence"`
	Sources    []string `json:"sources"`
	Category   string   `json:"category,omitempty"`
}

// AnswerOrigin records which layer produced an answer
type AnswerOrigin string

const (
	OriginTemplate AnswerOrigin = "template" // Canned template around the best match
	OriginFallback AnswerOrigin = "fallback" // Random catalog pick, nothing matched
	OriginLLM      AnswerOrigin = "llm"      // External completion endpoint
	OriginCache    AnswerOrigin = "cache"    // Previously enriched answer
)

// ChatRequest is the body of POST /chat
type ChatRequest struct {
	Message string `json:"message"`
	UserID  string `json:"user_id,omitempty"`
}

// DefaultUserID is used when a chat request names no user
const DefaultUserID = "anonymous"

// User returns the request's user id or DefaultUserID
func (r ChatRequest) User() string {
	if r.UserID == "" {
		return DefaultUserID
	}
	return r.UserID
}

// ChatResponse is the body returned by POST /chat.
// Origin and Provider are diagnostic and never serialized on the wire.
type ChatResponse struct {
	Answer
	Origin   AnswerOrigin `json:"-"`
	Provider string       `json:"-"`
}
