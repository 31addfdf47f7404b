// Package postgres loads the question bank from a SQL database through gorm.
package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SAP-F-2025/adaptive-tutor-service/internal/models"
	"github.com/SAP-F-2025/adaptive-tutor-service/internal/repositories"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// QuestionRecord is the persisted form of a question.
type QuestionRecord struct {
	ID          uint           `gorm:"primaryKey"`
	Prompt      string         `gorm:"type:text;not null"`
	Options     datatypes.JSON `gorm:"not null"` // []string
	Correct     *int
	Topic       string `gorm:"size:100;index"`
	Difficulty  int    `gorm:"default:0;index"`
	Explanation string `gorm:"type:text"`
	ExamType    string `gorm:"size:20"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (QuestionRecord) TableName() string {
	return "questions"
}

// ToModel decodes the record into a question.
func (r *QuestionRecord) ToModel() (*models.Question, error) {
	var options []string
	if len(r.Options) > 0 {
		if err := json.Unmarshal(r.Options, &options); err != nil {
			return nil, fmt.Errorf("question %d: decode options: %w", r.ID, err)
		}
	}
	return &models.Question{
		ID:          r.ID,
		Prompt:      r.Prompt,
		Options:     options,
		Correct:     r.Correct,
		Topic:       r.Topic,
		Difficulty:  r.Difficulty,
		Explanation: r.Explanation,
		ExamType:    r.ExamType,
	}, nil
}

// NewQuestionRecord encodes a question for persistence.
func NewQuestionRecord(q *models.Question) (*QuestionRecord, error) {
	options, err := json.Marshal(q.Options)
	if err != nil {
		return nil, fmt.Errorf("question %d: encode options: %w", q.ID, err)
	}
	return &QuestionRecord{
		ID:          q.ID,
		Prompt:      q.Prompt,
		Options:     datatypes.JSON(options),
		Correct:     q.Correct,
		Topic:       q.Topic,
		Difficulty:  q.Difficulty,
		Explanation: q.Explanation,
		ExamType:    q.ExamType,
	}, nil
}

type QuestionStore struct {
	db *gorm.DB
}

func NewQuestionStore(db *gorm.DB) *QuestionStore {
	return &QuestionStore{db: db}
}

func (s *QuestionStore) Migrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(&QuestionRecord{})
}

// Save upserts questions by id.
func (s *QuestionStore) Save(ctx context.Context, questions []*models.Question) error {
	if len(questions) == 0 {
		return nil
	}
	records := make([]*QuestionRecord, 0, len(questions))
	for _, q := range questions {
		if q == nil {
			continue
		}
		record, err := NewQuestionRecord(q)
		if err != nil {
			return err
		}
		records = append(records, record)
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		CreateInBatches(records, 100).Error
}

// LoadAll returns every stored question ordered by id.
func (s *QuestionStore) LoadAll(ctx context.Context) ([]*models.Question, error) {
	var records []QuestionRecord
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to load questions: %w", err)
	}
	questions := make([]*models.Question, 0, len(records))
	for i := range records {
		q, err := records[i].ToModel()
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, nil
}

// LoadRepository snapshots the table into an in-memory repository. The
// tutor never writes questions, so one read at startup is enough.
func (s *QuestionStore) LoadRepository(ctx context.Context) (*repositories.MemoryQuestionRepository, error) {
	questions, err := s.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	return repositories.NewMemoryQuestionRepository(questions), nil
}
