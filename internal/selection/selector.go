// Package selection picks the next question for a learner from a question
// pool, narrowing by learning mode and weak topics before a random draw.
package selection

import (
	"math"

	"github.com/SAP-F-2025/adaptive-tutor-service/internal/learner"
	"github.com/SAP-F-2025/adaptive-tutor-service/internal/models"
)

// WeakTopicBias is the probability of restricting the draw to weak topics.
const WeakTopicBias = 0.7

// Random is the source of randomness used for selection. *rand.Rand from
// math/rand/v2 satisfies it.
type Random interface {
	Float64() float64
	IntN(n int) int
}

// State is the part of the learner model the selector reads.
type State struct {
	Mode                models.Mode
	PreferredDifficulty float64
	IsWeak              func(topic string) bool
	HasWeakTopics       bool
}

// Selector draws questions.
type Selector struct {
	rng Random
}

// New creates a selector backed by rng.
func New(rng Random) *Selector {
	return &Selector{rng: rng}
}

// Select returns one question from pool. It reports false only when the pool
// holds no usable question.
func (s *Selector) Select(pool []*models.Question, state State) (*models.Question, bool) {
	if len(pool) == 0 {
		return nil, false
	}

	candidates, ok := s.filter(pool, state)
	if !ok {
		return s.fallback(pool)
	}
	return candidates[s.rng.IntN(len(candidates))], true
}

// filter applies the mode predicate and the weak-topic bias. It reports false
// when a malformed entry makes filtering meaningless.
func (s *Selector) filter(pool []*models.Question, state State) ([]*models.Question, bool) {
	for _, q := range pool {
		if q.IsMalformed() {
			return nil, false
		}
	}

	candidates := narrow(pool, ModePredicate(state.Mode, state.PreferredDifficulty))

	if state.HasWeakTopics && state.IsWeak != nil && len(candidates) > 1 {
		if s.rng.Float64() < WeakTopicBias {
			candidates = narrow(candidates, func(q *models.Question) bool {
				return state.IsWeak(q.EffectiveTopic())
			})
		}
	}

	return candidates, true
}

func (s *Selector) fallback(pool []*models.Question) (*models.Question, bool) {
	usable := make([]*models.Question, 0, len(pool))
	for _, q := range pool {
		if q != nil {
			usable = append(usable, q)
		}
	}
	if len(usable) == 0 {
		return nil, false
	}
	return usable[s.rng.IntN(len(usable))], true
}

// narrow keeps the questions matching keep, or returns in unchanged when
// nothing matches.
func narrow(in []*models.Question, keep func(*models.Question) bool) []*models.Question {
	out := make([]*models.Question, 0, len(in))
	for _, q := range in {
		if keep(q) {
			out = append(out, q)
		}
	}
	if len(out) == 0 {
		return in
	}
	return out
}

// ModePredicate returns the difficulty filter for mode.
func ModePredicate(mode models.Mode, preferredDifficulty float64) func(*models.Question) bool {
	switch mode {
	case models.ModeMastery:
		return func(q *models.Question) bool { return q.EffectiveDifficulty() >= 4 }
	case models.ModeSupport:
		return func(q *models.Question) bool { return q.EffectiveDifficulty() <= 2 }
	case models.ModeGamified:
		return func(q *models.Question) bool {
			d := q.EffectiveDifficulty()
			return d >= 2 && d <= 3
		}
	case models.ModeConfidenceBuilding:
		return func(q *models.Question) bool { return q.EffectiveDifficulty() == 1 }
	default:
		target := TargetDifficulty(preferredDifficulty)
		return func(q *models.Question) bool {
			diff := q.EffectiveDifficulty() - target
			return diff >= -1 && diff <= 1
		}
	}
}

// TargetDifficulty rounds the preferred difficulty onto the 1-5 scale.
func TargetDifficulty(preferred float64) int {
	target := int(math.Round(preferred))
	return max(models.MinDifficulty, min(models.MaxDifficulty, target))
}

// FromModel captures the selector inputs from a learner model.
func FromModel(m *learner.Model) State {
	return State{
		Mode:                m.Mode(),
		PreferredDifficulty: m.PreferredDifficulty,
		IsWeak:              m.IsWeak,
		HasWeakTopics:       len(m.WeakTopics()) > 0,
	}
}
