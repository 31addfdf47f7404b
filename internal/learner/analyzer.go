package learner

import (
	"math"

	"github.com/SAP-F-2025/adaptive-tutor-service/internal/models"
)

const (
	// masteryPracticeTarget is the attempt count after which mastery is no
	// longer discounted for lack of practice.
	masteryPracticeTarget = 5.0

	strongMasteryThreshold = 70
	weakMasteryThreshold   = 40

	fastAnswerRatio = 0.7
	fastAnswerBonus = 1.5

	confidenceFloor = 20.0
	engagementFloor = 30.0

	difficultyStepUp   = 0.15
	difficultyStepDown = 0.25
)

// Record applies one answer event to the model. It never fails: unknown
// topics count toward session totals only, and every metric is clamped.
func (m *Model) Record(isCorrect bool, difficulty int, timeTaken float64, topic string) {
	m.recordSession(timeTaken)

	t, known := models.ParseTopic(topic)
	if known {
		m.recordTopic(t, isCorrect)
	}

	if isCorrect {
		m.CorrectAnswers++
		m.CurrentStreak++
		if m.CurrentStreak > m.MaxStreak {
			m.MaxStreak = m.CurrentStreak
		}

		gain := 3 + 2*float64(difficulty)
		if timeTaken < m.AvgResponseTime*fastAnswerRatio {
			gain *= fastAnswerBonus
		}
		m.Competence = math.Min(100, m.Competence+gain)

		if known && m.topics[t].Mastery > strongMasteryThreshold {
			m.topics[t].Standing = StandingStrong
		}

		m.Confidence = math.Min(100, m.Confidence+float64(2+difficulty))
	} else {
		m.CurrentStreak = 0

		loss := math.Max(3, float64(10-difficulty))
		m.Competence = math.Max(0, m.Competence-loss)

		if known && m.topics[t].Mastery < weakMasteryThreshold {
			m.topics[t].Standing = StandingWeak
		}

		m.Confidence = math.Max(confidenceFloor, m.Confidence-4)
	}

	m.updateEngagement(timeTaken, isCorrect)
	m.adjustPreferredDifficulty(isCorrect, difficulty)
	m.updateReadiness()
}

func (m *Model) recordSession(timeTaken float64) {
	m.QuestionsAnswered++
	m.TotalTimeSpent += timeTaken

	m.ResponseTimes = append(m.ResponseTimes, timeTaken)
	if len(m.ResponseTimes) > ResponseWindow {
		m.ResponseTimes = m.ResponseTimes[len(m.ResponseTimes)-ResponseWindow:]
	}

	sum := 0.0
	for _, rt := range m.ResponseTimes {
		sum += rt
	}
	m.AvgResponseTime = sum / float64(len(m.ResponseTimes))
}

func (m *Model) recordTopic(t models.Topic, isCorrect bool) {
	ts := m.topics[t]
	ts.Total++
	if isCorrect {
		ts.Correct++
	}
	ts.Mastery = MasteryScore(ts.Correct, ts.Total)
}

// MasteryScore blends accuracy with practice volume: full credit is only
// reachable after masteryPracticeTarget attempts.
func MasteryScore(correct, total int) int {
	if total <= 0 {
		return 0
	}
	accuracy := float64(correct) / float64(total)
	practice := math.Min(1, float64(total)/masteryPracticeTarget)
	return int(math.Floor(accuracy * practice * 100))
}

func (m *Model) updateEngagement(timeTaken float64, isCorrect bool) {
	if timeTaken > 5 && timeTaken < 12 {
		m.Engagement = math.Min(100, m.Engagement+4)
	} else if timeTaken > 30 {
		m.Engagement = math.Max(engagementFloor, m.Engagement-6)
	}

	if isCorrect {
		m.Engagement = math.Min(100, m.Engagement+3)
	} else {
		m.Engagement = math.Max(engagementFloor, m.Engagement-2)
	}

	if m.CurrentStreak >= 3 {
		m.Engagement = math.Min(100, m.Engagement+5)
	}
}

func (m *Model) adjustPreferredDifficulty(isCorrect bool, difficulty int) {
	d := float64(difficulty)
	switch {
	case isCorrect && d <= m.PreferredDifficulty:
		m.PreferredDifficulty = math.Min(models.MaxDifficulty, m.PreferredDifficulty+difficultyStepUp)
	case !isCorrect && d >= m.PreferredDifficulty:
		m.PreferredDifficulty = math.Max(models.MinDifficulty, m.PreferredDifficulty-difficultyStepDown)
	}
}
