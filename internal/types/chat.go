package types

// ChatMessage is one turn of a conversation with the assistant.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the body of POST /chat. Context selects optional extras:
// "planTrip" attaches the curated enhanced-plan block to the reply,
// "planTrip-json" returns only that block without a model call.
type ChatRequest struct {
	Messages []ChatMessage `json:"messages"`
	Context  string        `json:"context,omitempty"`
}

// ChatResponse is the assistant reply envelope.
type ChatResponse struct {
	Reply             string        `json:"reply,omitempty"`
	Model             string        `json:"model,omitempty"`
	EnhancementStatus string        `json:"enhancementStatus,omitempty"`
	Enhanced          *EnhancedPlan `json:"enhanced,omitempty"`
}

// ChatErrorResponse carries a machine-readable code plus a hint so clients
// can steer users back in scope.
type ChatErrorResponse struct {
	Error        string   `json:"error"`
	Code         string   `json:"code"`
	Hint         string   `json:"hint"`
	Destinations []string `json:"destinations,omitempty"`
}
