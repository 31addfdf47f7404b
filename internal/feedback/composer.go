// Package feedback turns answer outcomes into learner-facing messages.
package feedback

import (
	"fmt"

	"github.com/SAP-F-2025/adaptive-tutor-service/internal/models"
)

// StreakThreshold is the streak length that earns streak phrasing.
const StreakThreshold = 5

// Random picks an index in [0,n).
type Random interface {
	IntN(n int) int
}

// Composer picks a message for an answer outcome.
type Composer struct {
	rng Random
}

// NewComposer creates a composer backed by rng.
func NewComposer(rng Random) *Composer {
	return &Composer{rng: rng}
}

// Compose returns one message from the pool matching the outcome. Mastery
// phrasing beats streak phrasing, which beats the other modes.
func (c *Composer) Compose(mode models.Mode, isCorrect bool, topic string, streak int) string {
	messages := Pool(mode, isCorrect, topic, streak)
	return messages[c.rng.IntN(len(messages))]
}

// Pool returns the message pool for an outcome.
func Pool(mode models.Mode, isCorrect bool, topic string, streak int) []string {
	if isCorrect {
		switch {
		case mode == models.ModeMastery:
			return []string{
				"Excellent! That answer is exam-ready.",
				"Outstanding! This depth of understanding pays off in exams.",
				"Spot on! You've mastered this concept.",
			}
		case streak >= StreakThreshold:
			return []string{
				fmt.Sprintf("Amazing streak of %d! You're on fire!", streak),
				fmt.Sprintf("%d correct in a row! Incredible focus!", streak),
				fmt.Sprintf("%d-question streak! Keep it going!", streak),
			}
		case mode == models.ModeConfidenceBuilding:
			return []string{
				"Great job! Your confidence is building!",
				"Perfect! You're getting stronger in " + topic + "!",
				"Nicely done! Keep building that programming confidence!",
			}
		default:
			return []string{
				"Correct! Nice programming logic!",
				"Well done! Your grasp of " + topic + " is solid!",
				"Great work! These concepts are coming together!",
			}
		}
	}

	switch mode {
	case models.ModeSupport:
		return []string{
			"Let's build your foundation in " + topic + "! Check the explanation.",
			"Good attempt! Every mistake teaches a programming concept.",
			"Close! Let's walk through this " + topic + " idea step by step.",
		}
	case models.ModeMastery:
		return []string{
			"Tricky exam-level question! Review the explanation carefully.",
			"Challenging! Questions like this show up in exams, so study the solution.",
			"Tough one! Understanding this will lift your exam performance.",
		}
	default:
		return []string{
			"Not quite! But every attempt teaches you more " + topic + ".",
			"Let's review this concept together. Check the explanation.",
			"Good try! The explanation will clarify this " + topic + " topic.",
		}
	}
}
