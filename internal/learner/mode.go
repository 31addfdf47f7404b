package learner

import "github.com/SAP-F-2025/adaptive-tutor-service/internal/models"

// SelectMode maps the three headline metrics onto a learning mode. Rules are
// checked in order and the first match wins; the conditions overlap, so the
// order is part of the contract.
func SelectMode(competence, engagement, confidence float64) models.Mode {
	switch {
	case competence > 75 && confidence > 70:
		return models.ModeMastery
	case competence < 35 && engagement > 60:
		return models.ModeSupport
	case competence > 50 && engagement < 50:
		return models.ModeGamified
	case confidence < 40:
		return models.ModeConfidenceBuilding
	default:
		return models.ModeBalanced
	}
}
