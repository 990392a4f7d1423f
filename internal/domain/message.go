package domain

// IncomingMessage is one chat message forwarded by a platform gateway.
type IncomingMessage struct {
	Platform   string `json:"platform"`
	PlatformID string `json:"platform_id"`
	Username   string `json:"username"`
	Text       string `json:"text"`
}

// DispatchResult is what the command dispatcher produced for a message.
// Handled is false for plain chat and unknown commands; Reply is the text
// the gateway should post when Handled is true.
type DispatchResult struct {
	Handled bool   `json:"handled"`
	Command string `json:"command,omitempty"`
	Reply   string `json:"reply,omitempty"`
}
