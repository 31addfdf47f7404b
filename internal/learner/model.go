// Package learner holds the running model of a single learner and the
// deterministic rules that update it after every answer.
package learner

import (
	"time"

	"github.com/SAP-F-2025/adaptive-tutor-service/internal/models"
)

const (
	InitialCompetence          = 50.0
	InitialEngagement          = 80.0
	InitialConfidence          = 60.0
	InitialPreferredDifficulty = 2.0
	InitialAvgResponseTime     = 15.0

	// ResponseWindow is the number of recent response times kept for the
	// rolling average.
	ResponseWindow = 10
)

// Standing classifies a topic. A topic is weak or strong, never both.
type Standing int

const (
	StandingNeutral Standing = iota
	StandingWeak
	StandingStrong
)

func (s Standing) String() string {
	switch s {
	case StandingWeak:
		return "weak"
	case StandingStrong:
		return "strong"
	default:
		return "neutral"
	}
}

// TopicStats tracks practice on one topic.
type TopicStats struct {
	Correct  int
	Total    int
	Mastery  int // 0-100, meaningful once Total > 0
	Standing Standing
}

// Accuracy returns correct/total in [0,1], or 0 before the first attempt.
func (ts *TopicStats) Accuracy() float64 {
	if ts.Total == 0 {
		return 0
	}
	return float64(ts.Correct) / float64(ts.Total)
}

// Model is the mutable learner state. It is not safe for concurrent use;
// callers serialize access.
type Model struct {
	Competence float64
	Engagement float64
	Confidence float64

	QuizReadiness   float64
	MidsemReadiness float64
	EndsemReadiness float64

	QuestionsAnswered int
	CorrectAnswers    int
	CurrentStreak     int
	MaxStreak         int
	TotalTimeSpent    float64 // seconds
	SessionStart      time.Time

	PreferredDifficulty float64

	ResponseTimes   []float64
	AvgResponseTime float64

	topics map[models.Topic]*TopicStats
}

// New creates a learner model with the fixed initial values.
func New(sessionStart time.Time) *Model {
	m := &Model{}
	m.reset(sessionStart)
	return m
}

// Reset restores the initial state and starts a new session.
func (m *Model) Reset(sessionStart time.Time) {
	m.reset(sessionStart)
}

func (m *Model) reset(sessionStart time.Time) {
	*m = Model{
		Competence:          InitialCompetence,
		Engagement:          InitialEngagement,
		Confidence:          InitialConfidence,
		SessionStart:        sessionStart,
		PreferredDifficulty: InitialPreferredDifficulty,
		AvgResponseTime:     InitialAvgResponseTime,
		ResponseTimes:       make([]float64, 0, ResponseWindow),
		topics:              make(map[models.Topic]*TopicStats, len(models.Topics)),
	}
	for _, t := range models.Topics {
		m.topics[t] = &TopicStats{}
	}
}

// Topic returns a copy of the stats for t.
func (m *Model) Topic(t models.Topic) TopicStats {
	if ts, ok := m.topics[t]; ok {
		return *ts
	}
	return TopicStats{}
}

// WeakTopics returns the weak topics in curriculum order.
func (m *Model) WeakTopics() []models.Topic {
	return m.topicsWith(StandingWeak)
}

// StrongTopics returns the strong topics in curriculum order.
func (m *Model) StrongTopics() []models.Topic {
	return m.topicsWith(StandingStrong)
}

// IsWeak reports whether label names a weak topic.
func (m *Model) IsWeak(label string) bool {
	t, ok := models.ParseTopic(label)
	if !ok {
		return false
	}
	return m.topics[t].Standing == StandingWeak
}

func (m *Model) topicsWith(s Standing) []models.Topic {
	out := make([]models.Topic, 0)
	for _, t := range models.Topics {
		if m.topics[t].Standing == s {
			out = append(out, t)
		}
	}
	return out
}

// Mode evaluates the mode selector against the current metrics.
func (m *Model) Mode() models.Mode {
	return SelectMode(m.Competence, m.Engagement, m.Confidence)
}
