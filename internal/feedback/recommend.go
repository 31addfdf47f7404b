package feedback

import (
	"fmt"

	"github.com/SAP-F-2025/adaptive-tutor-service/internal/models"
)

const maxFocusAreas = 3

// Recommend derives study advice from an insights record.
func Recommend(in *models.Insights) []string {
	recs := make([]string, 0, 4)

	switch {
	case in.Competence < 40:
		recs = append(recs, "Focus on fundamental C programming concepts before moving to advanced topics")
	case in.Competence < 70:
		recs = append(recs, "You're making good progress! Practice more complex problems to build expertise")
	default:
		recs = append(recs, "Excellent progress! You're ready for exam-level challenging questions")
	}

	if in.Engagement < 50 {
		recs = append(recs, "Take breaks and try gamified learning to maintain motivation")
	}

	if len(in.WeakTopics) > 3 {
		recs = append(recs, fmt.Sprintf("Concentrate on mastering %s before moving to other topics", in.WeakTopics[0]))
	}

	if in.Accuracy > 80 {
		recs = append(recs, "Great accuracy! Challenge yourself with harder difficulty questions")
	}

	return recs
}

// FocusAreas lists up to three weak topics that need attention.
func FocusAreas(in *models.Insights) []models.FocusArea {
	n := min(len(in.WeakTopics), maxFocusAreas)
	areas := make([]models.FocusArea, 0, n)
	for _, topic := range in.WeakTopics[:n] {
		areas = append(areas, models.FocusArea{
			Topic:      topic,
			Priority:   "High",
			Suggestion: fmt.Sprintf("Practice 5-7 more %s questions before moving forward", topic),
		})
	}
	return areas
}
