package learner

import (
	"math"
	"time"

	"github.com/SAP-F-2025/adaptive-tutor-service/internal/models"
)

// Insights projects the model into the client-facing record. It does not
// mutate the model.
func (m *Model) Insights(now time.Time) *models.Insights {
	accuracy := 0.0
	if m.QuestionsAnswered > 0 {
		accuracy = float64(m.CorrectAnswers) / float64(m.QuestionsAnswered) * 100
	}

	summary := make(map[models.Topic]models.TopicSummary)
	for _, t := range models.Topics {
		ts := m.topics[t]
		if ts.Total == 0 {
			continue
		}
		summary[t] = models.TopicSummary{
			Mastery:            ts.Mastery,
			Accuracy:           round1(ts.Accuracy() * 100),
			QuestionsAttempted: ts.Total,
		}
	}

	elapsed := now.Sub(m.SessionStart)
	if elapsed < 0 {
		elapsed = 0
	}

	return &models.Insights{
		Accuracy:          round1(accuracy),
		Competence:        roundInt(m.Competence),
		Engagement:        roundInt(m.Engagement),
		Confidence:        roundInt(m.Confidence),
		Streak:            m.CurrentStreak,
		MaxStreak:         m.MaxStreak,
		AvgResponseTime:   round1(m.AvgResponseTime),
		QuestionsAnswered: m.QuestionsAnswered,
		SessionTime:       round1(elapsed.Minutes()),
		LearningMode:      m.Mode(),
		WeakTopics:        m.WeakTopics(),
		StrongTopics:      m.StrongTopics(),
		TopicMastery:      summary,
		ExamReadiness: models.ExamReadiness{
			Quiz:   roundInt(m.QuizReadiness),
			Midsem: roundInt(m.MidsemReadiness),
			Endsem: roundInt(m.EndsemReadiness),
		},
	}
}

// Scores round half to even, so 60.5 reports as 60.
func roundInt(v float64) int {
	return int(math.RoundToEven(v))
}

func round1(v float64) float64 {
	return math.RoundToEven(v*10) / 10
}
