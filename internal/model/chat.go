package model

import "time"

// Speaker identifies who produced an utterance.
type Speaker string

const (
	SpeakerUser      Speaker = "user"
	SpeakerAssistant Speaker = "assistant"
)

// Utterance is a single recorded conversation turn half.
// Immutable once recorded.
type Utterance struct {
	Speaker   Speaker
	Text      string
	TurnIndex int
	Timestamp time.Time
}
