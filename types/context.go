package types

// HistoryMessage is the wire shape of a turn sent to the LLM proxy.
// Assistant turns are spelled "ai".
type HistoryMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatContext is everything the external handler gets besides the message.
// The handler keeps no conversation memory of its own.
type ChatContext struct {
	ToneLevel     int              `json:"toneLevel"`
	ResponseStyle ResponseStyle    `json:"responseStyle"`
	FocusArea     FocusArea        `json:"focusArea"`
	Situation     Situation        `json:"situation"`
	Belief        Belief           `json:"belief"`
	LifeStage     LifeStage        `json:"lifeStage"`
	UserName      string           `json:"userName"`
	History       []HistoryMessage `json:"history"`
}

type ProxyRequest struct {
	Message string      `json:"message"`
	Context ChatContext `json:"context"`
}

type ProxyResponse struct {
	Reply string `json:"reply,omitempty"`
	Error string `json:"error,omitempty"`
}

// ToHistoryMessages converts turns to the proxy wire format.
func ToHistoryMessages(turns []ConversationTurn) []HistoryMessage {
	out := make([]HistoryMessage, 0, len(turns))
	for _, t := range turns {
		role := "user"
		if t.Role == RoleAssistant {
			role = "ai"
		}
		out = append(out, HistoryMessage{Role: role, Content: t.Content})
	}
	return out
}
