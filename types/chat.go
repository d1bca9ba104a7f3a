package types

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ConversationTurn is one chat bubble. Timestamp is display-formatted.
type ConversationTurn struct {
	Role      Role   `json:"role"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

type ChatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
	Validate  bool   `json:"validate,omitempty"` // force the maker-checker pass
}

type ChatResponse struct {
	Success      bool              `json:"success"`
	UserMessage  string            `json:"user_message,omitempty"`
	AIResponse   string            `json:"ai_response,omitempty"`
	Source       string            `json:"source,omitempty"` // "external" or "local"
	Validation   *ValidationResult `json:"validation,omitempty"`
	Pending      bool              `json:"pending"`
	ErrorMessage string            `json:"error,omitempty"` // only set on failure
	SessionID    string            `json:"session_id,omitempty"`
}

type SessionActionRequest struct {
	SessionID string `json:"session_id"`
}

type GetMessagesResponse struct {
	Success  bool               `json:"success"`
	Messages []ConversationTurn `json:"messages"`
	Status   string             `json:"status"`
}

// Transcript is a speech-to-text result. Only final transcripts are sent.
type Transcript struct {
	SessionID string `json:"session_id"`
	Text      string `json:"transcript"`
	Final     bool   `json:"final"`
	Error     string `json:"error,omitempty"` // recognizer error code, if any
}

type VoiceResponse struct {
	Success  bool          `json:"success"`
	Feedback string        `json:"feedback,omitempty"`
	Help     string        `json:"help,omitempty"`
	Reply    *ChatResponse `json:"reply,omitempty"`
}

type TonePreviewResponse struct {
	Success bool   `json:"success"`
	Level   int    `json:"level"`
	Preview string `json:"preview"`
}
