package models

// Topic is a curriculum topic. The set is closed; questions tagged with any
// other label are still served but excluded from per-topic bookkeeping.
type Topic string

const (
	TopicBasicC              Topic = "Basic C Programming"
	TopicControlStructures   Topic = "Control Structures"
	TopicLoops               Topic = "Loops and Iterations"
	TopicArraysStrings       Topic = "Arrays and Strings"
	TopicFunctionsRecursion  Topic = "Functions and Recursion"
	TopicPointersMemory      Topic = "Pointers and Memory"
	TopicNumberSystems       Topic = "Number Systems"
	TopicPatternPrinting     Topic = "Pattern Printing"
	TopicAdvancedProgramming Topic = "Advanced Programming"
)

// DefaultTopic is the label substituted for questions that carry no topic.
const DefaultTopic = "General"

// Topics lists every known topic in curriculum order.
var Topics = []Topic{
	TopicBasicC,
	TopicControlStructures,
	TopicLoops,
	TopicArraysStrings,
	TopicFunctionsRecursion,
	TopicPointersMemory,
	TopicNumberSystems,
	TopicPatternPrinting,
	TopicAdvancedProgramming,
}

// Exam scopes, each a superset of the previous one.
var (
	QuizTopics = []Topic{
		TopicBasicC,
		TopicControlStructures,
		TopicLoops,
	}
	MidsemTopics = []Topic{
		TopicBasicC,
		TopicControlStructures,
		TopicLoops,
		TopicArraysStrings,
		TopicFunctionsRecursion,
		TopicNumberSystems,
	}
	EndsemTopics = Topics
)

// ParseTopic maps a free-form label onto the closed topic set.
func ParseTopic(label string) (Topic, bool) {
	for _, t := range Topics {
		if string(t) == label {
			return t, true
		}
	}
	return "", false
}
