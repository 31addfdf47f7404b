package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/SAP-F-2025/adaptive-tutor-service/internal/models"
	"github.com/SAP-F-2025/adaptive-tutor-service/internal/validator"
	"github.com/xuri/excelize/v2"
)

// ImportExportService parses question bank files and renders insights reports.
type ImportExportService interface {
	ImportQuestionsFromFile(ctx context.Context, reader io.Reader, filename string) (*ImportResult, error)
	ImportQuestionsFromJSON(ctx context.Context, reader io.Reader) (*ImportResult, error)
	ImportQuestionsFromCSV(ctx context.Context, reader io.Reader) (*ImportResult, error)
	ImportQuestionsFromExcel(ctx context.Context, reader io.Reader) (*ImportResult, error)

	ExportQuestionsToExcel(ctx context.Context, questions []*models.Question) ([]byte, error)
	ExportInsightsToExcel(ctx context.Context, report *models.InsightsResponse, generatedAt time.Time) ([]byte, error)
}

type importExportService struct {
	logger    *slog.Logger
	validator *validator.Validator
}

func NewImportExportService(logger *slog.Logger, validator *validator.Validator) ImportExportService {
	return &importExportService{
		logger:    logger,
		validator: validator,
	}
}

// ===== IMPORT OPERATIONS =====

type ImportResult struct {
	TotalRows     int                            `json:"total_rows"`
	ProcessedRows int                            `json:"processed_rows"`
	SuccessCount  int                            `json:"success_count"`
	ErrorCount    int                            `json:"error_count"`
	Errors        []models.ImportValidationError `json:"errors"`
	Questions     []*models.Question             `json:"questions,omitempty"`
	Status        models.ImportStatus            `json:"status"`
}

// candidate is a parsed record waiting for bank-level validation.
type candidate struct {
	row      int
	question *models.Question
}

func (s *importExportService) ImportQuestionsFromFile(ctx context.Context, reader io.Reader, filename string) (*ImportResult, error) {
	s.logger.Info("Starting question bank import", "filename", filename)

	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".json":
		return s.ImportQuestionsFromJSON(ctx, reader)
	case ".csv":
		return s.ImportQuestionsFromCSV(ctx, reader)
	case ".xlsx":
		return s.ImportQuestionsFromExcel(ctx, reader)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

func (s *importExportService) ImportQuestionsFromJSON(ctx context.Context, reader io.Reader) (*ImportResult, error) {
	var questions []*models.Question
	if err := json.NewDecoder(reader).Decode(&questions); err != nil {
		return nil, NewValidationError("file", fmt.Sprintf("invalid JSON question bank: %v", err), nil)
	}

	candidates := make([]candidate, len(questions))
	for i, q := range questions {
		candidates[i] = candidate{row: i + 1, question: q}
	}

	result := s.finish(&ImportResult{TotalRows: len(questions)}, candidates, nil)
	s.logImport("JSON", result)
	return result, nil
}

func (s *importExportService) ImportQuestionsFromCSV(ctx context.Context, reader io.Reader) (*ImportResult, error) {
	csvReader := csv.NewReader(reader)
	csvReader.TrimLeadingSpace = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	result, err := s.importRows(records)
	if err != nil {
		return nil, err
	}
	s.logImport("CSV", result)
	return result, nil
}

func (s *importExportService) ImportQuestionsFromExcel(ctx context.Context, reader io.Reader) (*ImportResult, error) {
	f, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, NewValidationError("file", "Excel file has no sheets", nil)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read Excel rows: %w", err)
	}

	result, err := s.importRows(rows)
	if err != nil {
		return nil, err
	}
	s.logImport("Excel", result)
	return result, nil
}

// importRows handles the tabular formats: a header row followed by one
// question per row.
func (s *importExportService) importRows(rows [][]string) (*ImportResult, error) {
	if len(rows) < 2 {
		return nil, NewValidationError("file", "file must have header row and at least one data row", len(rows))
	}

	headerMap := make(map[string]int)
	for i, header := range rows[0] {
		headerMap[strings.ToLower(strings.TrimSpace(header))] = i
	}
	for _, col := range models.RequiredImportColumns {
		if _, exists := headerMap[col]; !exists {
			return nil, NewValidationError("headers", fmt.Sprintf("missing required column: %s", col), col)
		}
	}

	result := &ImportResult{TotalRows: len(rows) - 1}

	var candidates []candidate
	var rowErrors []models.ImportValidationError
	for i, row := range rows[1:] {
		rowNum := i + 2
		q, errs := parseRow(row, headerMap, rowNum)
		if len(errs) > 0 {
			rowErrors = append(rowErrors, errs...)
			result.ErrorCount++
			result.ProcessedRows++
			continue
		}
		candidates = append(candidates, candidate{row: rowNum, question: q})
	}

	return s.finish(result, candidates, rowErrors), nil
}

// finish runs bank validation over the parsed candidates and fills in the
// counters.
func (s *importExportService) finish(result *ImportResult, candidates []candidate, rowErrors []models.ImportValidationError) *ImportResult {
	batch := make([]*models.Question, len(candidates))
	for i, c := range candidates {
		batch[i] = c.question
	}
	invalid := s.validator.Question().ValidateBank(batch)

	for i, c := range candidates {
		result.ProcessedRows++
		if errs, bad := invalid[i]; bad {
			for _, e := range errs {
				rowErrors = append(rowErrors, models.ImportValidationError{
					Row:     c.row,
					Column:  e.Field,
					Message: e.Message,
					Value:   fmt.Sprint(e.Value),
				})
			}
			result.ErrorCount++
			continue
		}
		result.Questions = append(result.Questions, c.question)
		result.SuccessCount++
	}

	sort.SliceStable(rowErrors, func(i, j int) bool { return rowErrors[i].Row < rowErrors[j].Row })
	result.Errors = rowErrors

	result.Status = models.ImportCompleted
	if result.SuccessCount == 0 {
		result.Status = models.ImportValidationFailed
	}
	return result
}

func (s *importExportService) logImport(format string, result *ImportResult) {
	s.logger.Info(format+" import completed",
		"total_rows", result.TotalRows,
		"success_count", result.SuccessCount,
		"error_count", result.ErrorCount)
}

func parseRow(row []string, headerMap map[string]int, rowNum int) (*models.Question, []models.ImportValidationError) {
	var errs []models.ImportValidationError

	column := func(name string) string {
		if index, exists := headerMap[name]; exists && index < len(row) {
			return strings.TrimSpace(row[index])
		}
		return ""
	}
	fail := func(col, msg, value string) {
		errs = append(errs, models.ImportValidationError{Row: rowNum, Column: col, Message: msg, Value: value})
	}

	q := &models.Question{
		Prompt:      column(models.ColumnQuestion),
		Topic:       column(models.ColumnTopic),
		Explanation: column(models.ColumnExplanation),
		ExamType:    column(models.ColumnExamType),
	}

	if raw := column(models.ColumnID); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			fail(models.ColumnID, "must be a positive integer", raw)
		}
		q.ID = uint(id)
	}

	for i := 0; i < models.MaxOptions; i++ {
		if _, exists := headerMap[models.OptionColumn(i)]; !exists {
			break
		}
		if opt := column(models.OptionColumn(i)); opt != "" {
			q.Options = append(q.Options, opt)
		}
	}

	if raw := column(models.ColumnCorrect); raw != "" {
		idx, ok := parseCorrect(raw)
		if !ok {
			fail(models.ColumnCorrect, "must be an option letter (A-Z) or a zero-based index", raw)
		}
		q.Correct = models.IntPtr(idx)
	}

	if raw := column(models.ColumnDifficulty); raw != "" {
		d, err := strconv.Atoi(raw)
		if err != nil {
			fail(models.ColumnDifficulty, "must be a number", raw)
		}
		q.Difficulty = d
	}

	return q, errs
}

// parseCorrect accepts an option letter or a zero-based index.
func parseCorrect(raw string) (int, bool) {
	if len(raw) == 1 {
		letter := strings.ToUpper(raw)[0]
		if letter >= 'A' && letter <= 'Z' {
			return int(letter - 'A'), true
		}
	}
	idx, err := strconv.Atoi(raw)
	if err != nil || idx < 0 {
		return 0, false
	}
	return idx, true
}

// ===== EXPORT OPERATIONS =====

// questionHeaders lays out the bank columns with optionCount option columns.
func questionHeaders(optionCount int) []string {
	headers := []string{models.ColumnID, models.ColumnQuestion}
	for i := 0; i < optionCount; i++ {
		headers = append(headers, models.OptionColumn(i))
	}
	return append(headers,
		models.ColumnCorrect, models.ColumnTopic, models.ColumnDifficulty,
		models.ColumnExplanation, models.ColumnExamType,
	)
}

// ExportQuestionsToExcel writes the bank in the import layout, widening the
// option columns to the question with the most options. Questions with more
// than models.MaxOptions options cannot be represented and fail the export.
func (s *importExportService) ExportQuestionsToExcel(ctx context.Context, questions []*models.Question) ([]byte, error) {
	optionCount := models.MinOptionColumns
	for _, q := range questions {
		if len(q.Options) > models.MaxOptions {
			return nil, NewValidationError("options",
				fmt.Sprintf("question %d has %d options, at most %d can be exported", q.ID, len(q.Options), models.MaxOptions),
				len(q.Options))
		}
		optionCount = max(optionCount, len(q.Options))
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Questions"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("failed to create Excel sheet: %w", err)
	}

	rows := [][]any{toRow(questionHeaders(optionCount))}
	for _, q := range questions {
		row := []any{q.ID, q.Prompt}
		for i := 0; i < optionCount; i++ {
			if i < len(q.Options) {
				row = append(row, q.Options[i])
			} else {
				row = append(row, "")
			}
		}
		// Out-of-range answers keep their raw index so a re-import reports
		// them instead of losing them.
		correct := ""
		if q.Correct != nil {
			if *q.Correct >= 0 && *q.Correct < len(q.Options) {
				correct = models.OptionLetter(*q.Correct)
			} else {
				correct = strconv.Itoa(*q.Correct)
			}
		}
		row = append(row, correct, q.Topic, q.Difficulty, q.Explanation, q.ExamType)
		rows = append(rows, row)
	}

	if err := writeRows(f, sheet, rows); err != nil {
		return nil, err
	}
	return toBytes(f)
}

func (s *importExportService) ExportInsightsToExcel(ctx context.Context, report *models.InsightsResponse, generatedAt time.Time) ([]byte, error) {
	if report == nil || report.Insights == nil {
		return nil, NewValidationError("report", "is required", nil)
	}
	in := report.Insights

	f := excelize.NewFile()
	defer f.Close()

	const (
		summarySheet = "Summary"
		topicsSheet  = "Topics"
		adviceSheet  = "Recommendations"
	)
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, fmt.Errorf("failed to create Excel sheet: %w", err)
	}
	for _, name := range []string{topicsSheet, adviceSheet} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("failed to create Excel sheet: %w", err)
		}
	}

	summary := [][]any{
		{"Metric", "Value"},
		{"Generated At", generatedAt.Format("2006-01-02 15:04:05")},
		{"Learning Mode", string(in.LearningMode)},
		{"Questions Answered", in.QuestionsAnswered},
		{"Accuracy (%)", in.Accuracy},
		{"Competence", in.Competence},
		{"Engagement", in.Engagement},
		{"Confidence", in.Confidence},
		{"Current Streak", in.Streak},
		{"Best Streak", in.MaxStreak},
		{"Avg Response Time (s)", in.AvgResponseTime},
		{"Session Time (min)", in.SessionTime},
		{"Quiz Readiness", in.ExamReadiness.Quiz},
		{"Midsem Readiness", in.ExamReadiness.Midsem},
		{"Endsem Readiness", in.ExamReadiness.Endsem},
	}
	if err := writeRows(f, summarySheet, summary); err != nil {
		return nil, err
	}

	topics := [][]any{{"Topic", "Mastery", "Accuracy (%)", "Attempted", "Standing"}}
	for _, t := range models.Topics {
		ts, ok := in.TopicMastery[t]
		if !ok {
			continue
		}
		topics = append(topics, []any{string(t), ts.Mastery, ts.Accuracy, ts.QuestionsAttempted, standing(in, t)})
	}
	if err := writeRows(f, topicsSheet, topics); err != nil {
		return nil, err
	}

	advice := [][]any{{"Recommendation"}}
	for _, r := range report.Recommendations {
		advice = append(advice, []any{r})
	}
	advice = append(advice, []any{}, []any{"Focus Topic", "Priority", "Suggestion"})
	for _, fa := range report.NextFocusAreas {
		advice = append(advice, []any{string(fa.Topic), fa.Priority, fa.Suggestion})
	}
	if err := writeRows(f, adviceSheet, advice); err != nil {
		return nil, err
	}

	return toBytes(f)
}

func standing(in *models.Insights, t models.Topic) string {
	for _, w := range in.WeakTopics {
		if w == t {
			return "weak"
		}
	}
	for _, s := range in.StrongTopics {
		if s == t {
			return "strong"
		}
	}
	return ""
}

func toRow(values []string) []any {
	row := make([]any, len(values))
	for i, v := range values {
		row[i] = v
	}
	return row
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for r, row := range rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("failed to write cell %s!%s: %w", sheet, cell, err)
			}
		}
	}
	return nil
}

func toBytes(f *excelize.File) ([]byte, error) {
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buf.Bytes(), nil
}
