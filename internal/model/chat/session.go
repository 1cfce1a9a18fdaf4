package chat

import "time"

// Session captures a transient anonymous conversation.
type Session struct {
	ID               string    `json:"id"`
	Messages         []Message `json:"messages"`
	DetectedLanguage string    `json:"detectedLanguage,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

// Clone returns a copy whose transcript does not share storage with s.
func (s Session) Clone() Session {
	out := s
	out.Messages = make([]Message, len(s.Messages))
	copy(out.Messages, s.Messages)
	return out
}
