package models

// DefaultTimeTaken is assumed when an answer arrives without timing, in seconds.
const DefaultTimeTaken = 15.0

type SubmitAnswerRequest struct {
	QuestionID uint     `json:"question_id" validate:"required"`
	Answer     *int     `json:"answer" validate:"required"`
	TimeTaken  *float64 `json:"time_taken,omitempty" validate:"omitempty,gt=0,max=3600"`
}

// EffectiveTimeTaken returns the reported time, or DefaultTimeTaken.
func (r *SubmitAnswerRequest) EffectiveTimeTaken() float64 {
	if r.TimeTaken == nil {
		return DefaultTimeTaken
	}
	return *r.TimeTaken
}

type NextQuestionResponse struct {
	Question *QuestionView `json:"question"`
	Insights *Insights     `json:"insights"`
}

type SubmitAnswerResponse struct {
	Correct       bool      `json:"correct"`
	Feedback      string    `json:"feedback"`
	Explanation   string    `json:"explanation"`
	CorrectAnswer string    `json:"correct_answer"`
	LearningTip   string    `json:"learning_tip"`
	Insights      *Insights `json:"insights"`
}

type InsightsResponse struct {
	*Insights
	Recommendations []string    `json:"recommendations"`
	NextFocusAreas  []FocusArea `json:"next_focus_areas"`
}

// QuestionBankResponse lists the question bank without answers.
type QuestionBankResponse struct {
	Questions []*QuestionView `json:"questions"`
	Total     int             `json:"total"`
}
