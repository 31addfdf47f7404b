package feedback

import "github.com/SAP-F-2025/adaptive-tutor-service/internal/models"

// FallbackTip is returned for topics without a tip.
const FallbackTip = "Keep practicing to improve your understanding!"

type tipPair struct {
	correct   string
	incorrect string
}

// Tips is the static learning-tip table keyed by topic and outcome.
type Tips struct {
	table map[models.Topic]tipPair
}

// NewTips returns the built-in tip table.
func NewTips() *Tips {
	return &Tips{table: map[models.Topic]tipPair{
		models.TopicBasicC: {
			correct:   "Great! Try more complex control structures to advance further.",
			incorrect: "Review C syntax basics: variable declarations, printf/scanf and basic operators.",
		},
		models.TopicControlStructures: {
			correct:   "Perfect! Now practice nested conditions and compound logical expressions.",
			incorrect: "Focus on if-else logic, switch fall-through and boolean expressions. Trace the code by hand.",
		},
		models.TopicLoops: {
			correct:   "Excellent loop understanding! Try nested loops and pattern printing next.",
			incorrect: "Practice for/while/do-while loops, paying attention to initialization, condition and update.",
		},
		models.TopicArraysStrings: {
			correct:   "Strong array skills! Move on to 2D arrays and string library functions.",
			incorrect: "Review array indexing, string functions (strcpy, strlen) and array initialization.",
		},
		models.TopicFunctionsRecursion: {
			correct:   "Great function concepts! Challenge yourself with recursive algorithms.",
			incorrect: "Practice parameters, return values and small recursive problems step by step.",
		},
		models.TopicPointersMemory: {
			correct:   "Excellent pointer mastery! Try dynamic allocation and pointer arithmetic.",
			incorrect: "Start with the address-of (&) and dereference (*) operators before pointer arithmetic.",
		},
		models.TopicNumberSystems: {
			correct:   "Perfect conversions! Practice arithmetic in other bases.",
			incorrect: "Review binary, octal and hexadecimal conversion and two's complement.",
		},
	}}
}

// Tip returns the tip for topic and outcome, or FallbackTip.
func (t *Tips) Tip(topic string, isCorrect bool) string {
	known, ok := models.ParseTopic(topic)
	if !ok {
		return FallbackTip
	}
	pair, ok := t.table[known]
	if !ok {
		return FallbackTip
	}
	if isCorrect {
		return pair.correct
	}
	return pair.incorrect
}
