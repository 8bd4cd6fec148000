package models

// Chat roles. The transcript only ever contains these two.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// ChatMessage is a single turn in a chat transcript.
type ChatMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// ChatRequest is the payload sent to the chat endpoint.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse carries the full transcript after a submit, so the widget can
// re-render without tracking deltas.
type ChatResponse struct {
	Messages []ChatMessage `json:"messages"`
	Busy     bool          `json:"busy"`
}
