package models

// Message roles accepted on the chat completion surface.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Default sampling parameters applied when the client omits them.
const (
	DefaultTemperature float32 = 0.7
	DefaultTopP        float32 = 1.0
)

// ChatMessage represents a single message in a conversation
type ChatMessage struct {
	Role    string `json:"role" binding:"required,oneof=system user assistant"`
	Content string `json:"content" binding:"required"`
	Name    string `json:"name,omitempty"`
}

// ChatCompletionRequest represents an incoming chat completion request.
// Optional sampling parameters are pointers so that an omitted field can be
// distinguished from an explicit zero; ApplyDefaults fills the omissions.
type ChatCompletionRequest struct {
	Model            string        `json:"model" binding:"required"`
	Messages         []ChatMessage `json:"messages" binding:"required,min=1,dive"`
	Temperature      *float32      `json:"temperature,omitempty" binding:"omitempty,gte=0,lte=2"`
	MaxTokens        *int          `json:"max_tokens,omitempty" binding:"omitempty,gte=1"`
	TopP             *float32      `json:"top_p,omitempty" binding:"omitempty,gte=0,lte=1"`
	Stream           bool          `json:"stream,omitempty"`
	Stop             []string      `json:"stop,omitempty"`
	PresencePenalty  *float32      `json:"presence_penalty,omitempty" binding:"omitempty,gte=-2,lte=2"`
	FrequencyPenalty *float32      `json:"frequency_penalty,omitempty" binding:"omitempty,gte=-2,lte=2"`
	User             string        `json:"user,omitempty"`
}

// ApplyDefaults fills omitted sampling parameters with the documented
// defaults. Must be called after binding and before any generation work.
func (r *ChatCompletionRequest) ApplyDefaults() {
	if r.Temperature == nil {
		t := DefaultTemperature
		r.Temperature = &t
	}
	if r.TopP == nil {
		p := DefaultTopP
		r.TopP = &p
	}
	if r.PresencePenalty == nil {
		r.PresencePenalty = new(float32)
	}
	if r.FrequencyPenalty == nil {
		r.FrequencyPenalty = new(float32)
	}
}

// LastContent returns the content of the most recent message, or the empty
// string for an empty conversation.
func (r *ChatCompletionRequest) LastContent() string {
	if len(r.Messages) == 0 {
		return ""
	}
	return r.Messages[len(r.Messages)-1].Content
}

// Choice represents one generated completion alternative
type Choice struct {
	Index        int         `json:"index"`
	Message      ChatMessage `json:"message"`
	FinishReason string      `json:"finish_reason"`
}

// Usage carries the approximate token accounting for one completion.
// TotalTokens is always PromptTokens + CompletionTokens.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// ChatCompletionResponse represents the non-streaming response body
type ChatCompletionResponse struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Created int64    `json:"created"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

// Delta is the partial-content fragment carried by one stream chunk
type Delta struct {
	Role    string `json:"role,omitempty"`
	Content string `json:"content,omitempty"`
}

// StreamChoice represents one choice inside a stream chunk. FinishReason is
// null on every chunk except the terminal one, which carries "stop".
type StreamChoice struct {
	Index        int     `json:"index"`
	Delta        Delta   `json:"delta"`
	FinishReason *string `json:"finish_reason"`
}

// StreamChunk is one incremental unit of a streamed completion. All chunks of
// one response share the same ID.
type StreamChunk struct {
	ID      string         `json:"id"`
	Object  string         `json:"object"`
	Created int64          `json:"created"`
	Model   string         `json:"model"`
	Choices []StreamChoice `json:"choices"`
}

// ModelInfo is a static catalog entry describing an advertised model
type ModelInfo struct {
	ID         string        `json:"id"`
	Object     string        `json:"object"`
	Created    int64         `json:"created"`
	OwnedBy    string        `json:"owned_by"`
	Permission []interface{} `json:"permission"`
	Root       string        `json:"root"`
	Parent     *string       `json:"parent"`
}

// ModelList is the response body of the model listing endpoint
type ModelList struct {
	Object string      `json:"object"`
	Data   []ModelInfo `json:"data"`
}
