package learner

import (
	"testing"

	"github.com/SAP-F-2025/adaptive-tutor-service/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestSelectMode(t *testing.T) {
	tests := []struct {
		name                               string
		competence, engagement, confidence float64
		want                               models.Mode
	}{
		{"mastery", 80, 70, 80, models.ModeMastery},
		{"mastery wins over gamified", 80, 10, 80, models.ModeMastery},
		{"support", 30, 70, 60, models.ModeSupport},
		{"support wins over confidence building", 30, 70, 25, models.ModeSupport},
		{"gamified", 60, 40, 60, models.ModeGamified},
		{"gamified wins over confidence building", 60, 40, 30, models.ModeGamified},
		{"confidence building", 45, 70, 30, models.ModeConfidenceBuilding},
		{"balanced at the initial state", InitialCompetence, InitialEngagement, InitialConfidence, models.ModeBalanced},
		{"boundaries are exclusive", 75, 60, 70, models.ModeBalanced},
		{"low competence but disengaged", 20, 40, 60, models.ModeBalanced},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SelectMode(tt.competence, tt.engagement, tt.confidence))
		})
	}
}

func TestModel_Mode(t *testing.T) {
	m := New(sessionStart)
	assert.Equal(t, models.ModeBalanced, m.Mode())

	m.Competence, m.Confidence, m.Engagement = 80, 80, 10
	assert.Equal(t, models.ModeMastery, m.Mode())
}
