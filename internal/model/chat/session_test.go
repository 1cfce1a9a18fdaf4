package chat

import "testing"

func TestSessionCloneDoesNotShareTranscript(t *testing.T) {
	original := Session{ID: "s1", Messages: []Message{{ID: "m1", Content: "hello", IsUser: true}}}

	clone := original.Clone()
	clone.Messages[0].Content = "changed"
	clone.Messages = append(clone.Messages, Message{ID: "m2"})

	if original.Messages[0].Content != "hello" || len(original.Messages) != 1 {
		t.Fatalf("original transcript was modified: %+v", original.Messages)
	}
}

func TestSessionCloneOfEmptyTranscriptIsNonNil(t *testing.T) {
	if clone := (Session{ID: "s1"}).Clone(); clone.Messages == nil {
		t.Fatal("expected an empty, non-nil transcript so it encodes as []")
	}
}
