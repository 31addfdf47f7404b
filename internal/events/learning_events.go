package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType identifies a learning event.
type EventType string

const (
	EventAnswerRecorded EventType = "answer.recorded"
	EventModeChanged    EventType = "mode.changed"
	EventSessionReset   EventType = "session.reset"
)

const (
	EventSource  = "adaptive-tutor-service"
	EventVersion = "1.0"
)

// LearningEvent is the envelope shared by all learning events.
type LearningEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
	Version   string    `json:"version"`
	SessionID string    `json:"session_id"`
	Data      any       `json:"data"`
}

// NewLearningEvent wraps data in an envelope with a fresh id.
func NewLearningEvent(eventType EventType, sessionID string, at time.Time, data any) *LearningEvent {
	return &LearningEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: at,
		Source:    EventSource,
		Version:   EventVersion,
		SessionID: sessionID,
		Data:      data,
	}
}

type AnswerRecordedEvent struct {
	QuestionID uint    `json:"question_id"`
	Topic      string  `json:"topic"`
	Correct    bool    `json:"correct"`
	Difficulty int     `json:"difficulty"`
	TimeTaken  float64 `json:"time_taken"` // seconds
	Competence float64 `json:"competence"`
	Streak     int     `json:"streak"`
	// Standing is the topic's weak/strong/neutral standing after the answer.
	// Empty for topics outside the curriculum.
	Standing string `json:"standing,omitempty"`
}

type ModeChangedEvent struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type SessionResetEvent struct {
	QuestionsAnswered int `json:"questions_answered"`
}
