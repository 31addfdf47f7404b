package models

import "fmt"

type ImportStatus string

const (
	ImportProcessing       ImportStatus = "processing"
	ImportCompleted        ImportStatus = "completed"
	ImportValidationFailed ImportStatus = "validation_failed"
)

// ImportValidationError describes one rejected cell or record of an import.
type ImportValidationError struct {
	Row     int    `json:"row"`
	Column  string `json:"column"`
	Message string `json:"message"`
	Value   string `json:"value"`
}

// Question bank spreadsheet columns, in export order.
const (
	ColumnID          = "id"
	ColumnQuestion    = "question"
	ColumnOptionA     = "option_a"
	ColumnOptionB     = "option_b"
	ColumnCorrect     = "correct"
	ColumnTopic       = "topic"
	ColumnDifficulty  = "difficulty"
	ColumnExplanation = "explanation"
	ColumnExamType    = "exam_type"
)

// MaxOptions is the widest question a spreadsheet can hold: one column per
// option letter A-Z.
const MaxOptions = 26

// MinOptionColumns is the number of option columns every export carries.
const MinOptionColumns = 4

// OptionColumn names the column of the i-th option (0 is option_a).
func OptionColumn(i int) string {
	return fmt.Sprintf("option_%c", 'a'+i)
}

// OptionLetter is the answer letter of the i-th option (0 is A).
func OptionLetter(i int) string {
	return string(rune('A' + i))
}

// RequiredImportColumns must be present in every tabular import.
var RequiredImportColumns = []string{ColumnID, ColumnQuestion, ColumnOptionA, ColumnOptionB, ColumnCorrect}
