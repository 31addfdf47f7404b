package models

const (
	// DefaultDifficulty is assumed for questions without a difficulty.
	DefaultDifficulty = 2

	// DefaultExplanation is shown when a question carries no explanation.
	DefaultExplanation = "No explanation available"

	MinDifficulty = 1
	MaxDifficulty = 5
)

// Question is an immutable question record supplied by a question source.
// Missing fields are tolerated; the accessors substitute defaults.
type Question struct {
	ID          uint     `json:"id" validate:"required"`
	Prompt      string   `json:"question" validate:"required"`
	Options     []string `json:"options" validate:"required,min=2,max=26,dive,required"`
	Correct     *int     `json:"correct,omitempty" validate:"omitempty,min=0"`
	Topic       string   `json:"topic,omitempty" validate:"omitempty,topic"`
	Difficulty  int      `json:"difficulty,omitempty" validate:"min=0,max=5"`
	Explanation string   `json:"explanation,omitempty"`
	ExamType    string   `json:"exam_type,omitempty"`
}

// EffectiveDifficulty returns the difficulty, or DefaultDifficulty when unset.
func (q *Question) EffectiveDifficulty() int {
	if q.Difficulty == 0 {
		return DefaultDifficulty
	}
	return q.Difficulty
}

// EffectiveTopic returns the topic label, or DefaultTopic when unset.
func (q *Question) EffectiveTopic() string {
	if q.Topic == "" {
		return DefaultTopic
	}
	return q.Topic
}

// EffectiveExplanation returns the explanation, or DefaultExplanation when unset.
func (q *Question) EffectiveExplanation() string {
	if q.Explanation == "" {
		return DefaultExplanation
	}
	return q.Explanation
}

// IsMalformed reports whether the record cannot take part in difficulty
// filtering.
func (q *Question) IsMalformed() bool {
	return q == nil || q.Difficulty < 0 || q.Difficulty > MaxDifficulty
}

// IsCorrect grades an answer. A question without a valid correct option
// judges every answer incorrect.
func (q *Question) IsCorrect(answer int) bool {
	if q.Correct == nil || *q.Correct < 0 || *q.Correct >= len(q.Options) {
		return false
	}
	return answer == *q.Correct
}

// CorrectAnswerText returns the text of the correct option, or "" if unknown.
func (q *Question) CorrectAnswerText() string {
	if q.Correct == nil || *q.Correct < 0 || *q.Correct >= len(q.Options) {
		return ""
	}
	return q.Options[*q.Correct]
}

// QuestionView is the client-facing projection of a question; it never
// reveals the answer.
type QuestionView struct {
	ID         uint     `json:"id"`
	Prompt     string   `json:"question"`
	Options    []string `json:"options"`
	Topic      string   `json:"topic"`
	Difficulty int      `json:"difficulty"`
	ExamType   string   `json:"exam_type,omitempty"`
}

// View builds the client-facing projection.
func (q *Question) View() *QuestionView {
	options := make([]string, len(q.Options))
	copy(options, q.Options)
	return &QuestionView{
		ID:         q.ID,
		Prompt:     q.Prompt,
		Options:    options,
		Topic:      q.EffectiveTopic(),
		Difficulty: q.EffectiveDifficulty(),
		ExamType:   q.ExamType,
	}
}

// IntPtr is a helper for building questions with a correct option.
func IntPtr(v int) *int {
	return &v
}
