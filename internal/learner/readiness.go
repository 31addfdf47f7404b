package learner

import (
	"math"

	"github.com/SAP-F-2025/adaptive-tutor-service/internal/models"
)

// Competence weight per exam scope; narrower scopes lean more on competence.
const (
	quizCompetenceWeight   = 0.3
	midsemCompetenceWeight = 0.2
	endsemCompetenceWeight = 0.1
)

func (m *Model) updateReadiness() {
	m.QuizReadiness = m.readiness(models.QuizTopics, quizCompetenceWeight)
	m.MidsemReadiness = m.readiness(models.MidsemTopics, midsemCompetenceWeight)
	m.EndsemReadiness = m.readiness(models.EndsemTopics, endsemCompetenceWeight)
}

// readiness averages mastery over scope with integer division, then adds the
// competence bonus.
func (m *Model) readiness(scope []models.Topic, weight float64) float64 {
	if len(scope) == 0 {
		return 0
	}
	sum := 0
	for _, t := range scope {
		if ts, ok := m.topics[t]; ok {
			sum += ts.Mastery
		}
	}
	avg := sum / len(scope)
	return math.Min(100, float64(avg)+m.Competence*weight)
}
