package repositories

import (
	"context"
	"errors"

	"github.com/SAP-F-2025/adaptive-tutor-service/internal/models"
)

// ErrNotFound is returned when a lookup matches no record.
var ErrNotFound = errors.New("record not found")

// QuestionRepository is the read-only question source consumed by the tutor.
type QuestionRepository interface {
	// All returns every question in source order.
	All(ctx context.Context) ([]*models.Question, error)
	GetByID(ctx context.Context, id uint) (*models.Question, error)
	Count(ctx context.Context) (int, error)
}

// MemoryQuestionRepository holds an immutable question bank. It is safe for
// concurrent use without locking.
type MemoryQuestionRepository struct {
	questions []*models.Question
	byID      map[uint]*models.Question
}

// NewMemoryQuestionRepository copies questions into a new repository. Nil
// entries are dropped; for duplicate IDs the first record wins lookups.
func NewMemoryQuestionRepository(questions []*models.Question) *MemoryQuestionRepository {
	repo := &MemoryQuestionRepository{
		questions: make([]*models.Question, 0, len(questions)),
		byID:      make(map[uint]*models.Question, len(questions)),
	}
	for _, q := range questions {
		if q == nil {
			continue
		}
		clone := cloneQuestion(q)
		repo.questions = append(repo.questions, clone)
		if _, exists := repo.byID[clone.ID]; !exists {
			repo.byID[clone.ID] = clone
		}
	}
	return repo
}

func (r *MemoryQuestionRepository) All(ctx context.Context) ([]*models.Question, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]*models.Question, len(r.questions))
	copy(out, r.questions)
	return out, nil
}

func (r *MemoryQuestionRepository) GetByID(ctx context.Context, id uint) (*models.Question, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	q, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return q, nil
}

func (r *MemoryQuestionRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return len(r.questions), nil
}

func cloneQuestion(q *models.Question) *models.Question {
	clone := *q
	clone.Options = append([]string(nil), q.Options...)
	if q.Correct != nil {
		clone.Correct = models.IntPtr(*q.Correct)
	}
	return &clone
}
