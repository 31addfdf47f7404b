package models

// TopicSummary is the per-topic part of Insights.
type TopicSummary struct {
	Mastery            int     `json:"mastery"`
	Accuracy           float64 `json:"accuracy"`
	QuestionsAttempted int     `json:"questions_attempted"`
}

// ExamReadiness holds the three readiness projections.
type ExamReadiness struct {
	Quiz   int `json:"quiz"`
	Midsem int `json:"midsem"`
	Endsem int `json:"endsem"`
}

// Insights is the read-only projection of the learner state returned to
// clients after every interaction.
type Insights struct {
	Accuracy          float64                `json:"accuracy"`
	Competence        int                    `json:"competence"`
	Engagement        int                    `json:"engagement"`
	Confidence        int                    `json:"confidence"`
	Streak            int                    `json:"streak"`
	MaxStreak         int                    `json:"max_streak"`
	AvgResponseTime   float64                `json:"avg_response_time"`
	QuestionsAnswered int                    `json:"questions_answered"`
	SessionTime       float64                `json:"session_time"` // minutes
	LearningMode      Mode                   `json:"learning_mode"`
	WeakTopics        []Topic                `json:"weak_topics"`
	StrongTopics      []Topic                `json:"strong_topics"`
	TopicMastery      map[Topic]TopicSummary `json:"topic_mastery"`
	ExamReadiness     ExamReadiness          `json:"exam_readiness"`
}

// FocusArea is a topic that needs immediate attention.
type FocusArea struct {
	Topic      Topic  `json:"topic"`
	Priority   string `json:"priority"`
	Suggestion string `json:"suggestion"`
}
