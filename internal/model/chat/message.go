package chat

import "time"

// Message is one utterance in a session transcript. Messages are never edited
// after they are appended.
type Message struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	IsUser    bool      `json:"isUser"`
	Timestamp time.Time `json:"timestamp"`
	Language  string    `json:"language,omitempty"`
}
