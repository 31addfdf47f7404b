package postgres

import (
	"context"
	"testing"

	"github.com/SAP-F-2025/adaptive-tutor-service/internal/models"
	"github.com/SAP-F-2025/adaptive-tutor-service/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) *QuestionStore {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	store := NewQuestionStore(db)
	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func TestQuestionStore_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	seed := repositories.SeedQuestions()
	require.NoError(t, store.Save(ctx, seed))

	loaded, err := store.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, len(seed))

	for i, q := range loaded {
		assert.Equal(t, seed[i].ID, q.ID)
		assert.Equal(t, seed[i].Options, q.Options)
		assert.Equal(t, *seed[i].Correct, *q.Correct)
		assert.Equal(t, seed[i].Topic, q.Topic)
		assert.Equal(t, seed[i].Difficulty, q.Difficulty)
	}
}

func TestQuestionStore_SaveUpserts(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	q := &models.Question{ID: 7, Prompt: "old", Options: []string{"a", "b"}}
	require.NoError(t, store.Save(ctx, []*models.Question{q}))

	q.Prompt = "new"
	q.Correct = models.IntPtr(1)
	require.NoError(t, store.Save(ctx, []*models.Question{q, nil}))

	loaded, err := store.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "new", loaded[0].Prompt)
	assert.Equal(t, 1, *loaded[0].Correct)
}

func TestQuestionStore_MissingFieldsSurvive(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Save(ctx, []*models.Question{
		{ID: 1, Prompt: "bare", Options: []string{"x", "y"}},
	}))

	repo, err := store.LoadRepository(ctx)
	require.NoError(t, err)

	q, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, q.Correct)
	assert.Equal(t, models.DefaultDifficulty, q.EffectiveDifficulty())
	assert.Equal(t, models.DefaultTopic, q.EffectiveTopic())
}

func TestQuestionStore_EmptyTable(t *testing.T) {
	store := newTestStore(t)

	repo, err := store.LoadRepository(context.Background())
	require.NoError(t, err)

	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}
