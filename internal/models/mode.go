package models

// Mode is the learning mode the tutor operates in. It drives question
// difficulty filtering and the tone of feedback.
type Mode string

const (
	ModeMastery            Mode = "mastery"
	ModeSupport            Mode = "support"
	ModeGamified           Mode = "gamified"
	ModeConfidenceBuilding Mode = "confidence_building"
	ModeBalanced           Mode = "balanced"
)

// Modes lists every mode in rule-priority order.
var Modes = []Mode{
	ModeMastery,
	ModeSupport,
	ModeGamified,
	ModeConfidenceBuilding,
	ModeBalanced,
}

func (m Mode) String() string {
	return string(m)
}
