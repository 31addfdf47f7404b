package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SAP-F-2025/adaptive-tutor-service/internal/cache"
	"github.com/SAP-F-2025/adaptive-tutor-service/internal/events"
	"github.com/SAP-F-2025/adaptive-tutor-service/internal/feedback"
	"github.com/SAP-F-2025/adaptive-tutor-service/internal/learner"
	"github.com/SAP-F-2025/adaptive-tutor-service/internal/models"
	"github.com/SAP-F-2025/adaptive-tutor-service/internal/repositories"
	"github.com/SAP-F-2025/adaptive-tutor-service/internal/selection"
	"github.com/SAP-F-2025/adaptive-tutor-service/internal/validator"
)

// TutorService drives one learner session.
type TutorService interface {
	NextQuestion(ctx context.Context) (*models.NextQuestionResponse, error)
	SubmitAnswer(ctx context.Context, req *models.SubmitAnswerRequest) (*models.SubmitAnswerResponse, error)
	Insights(ctx context.Context) (*models.InsightsResponse, error)
	Reset(ctx context.Context) (*models.Insights, error)

	Questions(ctx context.Context) (*models.QuestionBankResponse, error)
	ExportInsights(ctx context.Context) ([]byte, error)
	ExportQuestions(ctx context.Context) ([]byte, error)
}

// Random is the randomness source for selection and feedback phrasing.
// *rand.Rand from math/rand/v2 satisfies it.
type Random interface {
	Float64() float64
	IntN(n int) int
}

// TutorOptions holds the optional collaborators of a TutorService. Zero
// values fall back to in-memory or no-op implementations.
type TutorOptions struct {
	SessionID string
	Publisher events.EventPublisher
	Cache     cache.CacheService
	CacheTTL  time.Duration
	Exporter  ImportExportService
	Clock     func() time.Time
}

type tutorService struct {
	mu    sync.Mutex
	model *learner.Model
	// version counts model changes; guarded by mu.
	version uint64

	// snapshotMu orders cache writes; storedVersion is the last applied.
	snapshotMu    sync.Mutex
	storedVersion uint64

	repo      repositories.QuestionRepository
	selector  *selection.Selector
	composer  *feedback.Composer
	tips      *feedback.Tips
	validator *validator.Validator
	exporter  ImportExportService

	publisher events.EventPublisher
	cache     cache.CacheService
	cacheTTL  time.Duration
	sessionID string
	now       func() time.Time

	logger *slog.Logger
	ops    *ServiceLogger
}

func NewTutorService(repo repositories.QuestionRepository, rng Random, logger *slog.Logger, validator *validator.Validator, opts TutorOptions) TutorService {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.SessionID == "" {
		opts.SessionID = "default"
	}
	if opts.Publisher == nil {
		opts.Publisher = events.NewMockEventPublisher(logger)
	}
	if opts.Cache == nil {
		opts.Cache = cache.NoopCache{}
	}
	if opts.Exporter == nil {
		opts.Exporter = NewImportExportService(logger, validator)
	}

	return &tutorService{
		model:     learner.New(opts.Clock()),
		repo:      repo,
		selector:  selection.New(rng),
		composer:  feedback.NewComposer(rng),
		tips:      feedback.NewTips(),
		validator: validator,
		exporter:  opts.Exporter,
		publisher: opts.Publisher,
		cache:     opts.Cache,
		cacheTTL:  opts.CacheTTL,
		sessionID: opts.SessionID,
		now:       opts.Clock,
		logger:    logger.With("session_id", opts.SessionID),
		ops:       NewServiceLogger(logger.With("session_id", opts.SessionID), "tutor"),
	}
}

func (s *tutorService) NextQuestion(ctx context.Context) (resp *models.NextQuestionResponse, err error) {
	op := s.ops.WithOperation(ctx, "next_question")
	defer func() { op.LogResult(err) }()

	pool, err := s.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load question pool: %w", err)
	}

	s.mu.Lock()
	q, ok := s.selector.Select(pool, selection.FromModel(s.model))
	insights := s.model.Insights(s.now())
	s.mu.Unlock()

	if !ok {
		s.logger.Warn("No question available", "pool_size", len(pool))
		return nil, ErrNoQuestionsAvailable
	}

	s.logger.Debug("Selected question",
		"question_id", q.ID,
		"difficulty", q.EffectiveDifficulty(),
		"mode", insights.LearningMode)

	return &models.NextQuestionResponse{
		Question: q.View(),
		Insights: insights,
	}, nil
}

func (s *tutorService) SubmitAnswer(ctx context.Context, req *models.SubmitAnswerRequest) (resp *models.SubmitAnswerResponse, err error) {
	op := s.ops.WithOperation(ctx, "submit_answer")
	defer func() { op.LogResult(err) }()

	if req == nil {
		return nil, fmt.Errorf("%w: empty request", ErrValidationFailed)
	}
	if err = s.validator.Validate(req); err != nil {
		return nil, err
	}

	q, err := s.repo.GetByID(ctx, req.QuestionID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("%w: id %d", ErrQuestionNotFound, req.QuestionID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get question: %w", err)
	}

	correct := q.IsCorrect(*req.Answer)
	topic := q.EffectiveTopic()
	timeTaken := req.EffectiveTimeTaken()

	s.mu.Lock()
	before := s.model.Mode()
	s.model.Record(correct, q.EffectiveDifficulty(), timeTaken, topic)
	after := s.model.Mode()
	message := s.composer.Compose(after, correct, topic, s.model.CurrentStreak)
	now := s.now()
	insights := s.model.Insights(now)
	recorded := events.AnswerRecordedEvent{
		QuestionID: q.ID,
		Topic:      topic,
		Correct:    correct,
		Difficulty: q.EffectiveDifficulty(),
		TimeTaken:  timeTaken,
		Competence: s.model.Competence,
		Streak:     s.model.CurrentStreak,
	}
	if t, ok := models.ParseTopic(topic); ok {
		recorded.Standing = s.model.Topic(t).Standing.String()
	}
	s.version++
	version := s.version
	s.mu.Unlock()

	s.logger.Info("Answer recorded",
		"question_id", q.ID,
		"correct", correct,
		"competence", insights.Competence,
		"mode", after)

	s.publish(ctx, events.EventAnswerRecorded, now, recorded)
	if before != after {
		s.publish(ctx, events.EventModeChanged, now, events.ModeChangedEvent{From: string(before), To: string(after)})
	}
	s.syncSnapshot(ctx, version, insights)

	return &models.SubmitAnswerResponse{
		Correct:       correct,
		Feedback:      message,
		Explanation:   q.EffectiveExplanation(),
		CorrectAnswer: q.CorrectAnswerText(),
		LearningTip:   s.tips.Tip(topic, correct),
		Insights:      insights,
	}, nil
}

func (s *tutorService) Insights(ctx context.Context) (*models.InsightsResponse, error) {
	s.mu.Lock()
	insights := s.model.Insights(s.now())
	s.mu.Unlock()

	return &models.InsightsResponse{
		Insights:        insights,
		Recommendations: feedback.Recommend(insights),
		NextFocusAreas:  feedback.FocusAreas(insights),
	}, nil
}

func (s *tutorService) Reset(ctx context.Context) (*models.Insights, error) {
	s.mu.Lock()
	answered := s.model.QuestionsAnswered
	now := s.now()
	s.model.Reset(now)
	insights := s.model.Insights(now)
	s.version++
	version := s.version
	s.mu.Unlock()

	s.logger.Info("Session reset", "questions_answered", answered)

	s.publish(ctx, events.EventSessionReset, now, events.SessionResetEvent{QuestionsAnswered: answered})
	s.syncSnapshot(ctx, version, nil)

	return insights, nil
}

func (s *tutorService) Questions(ctx context.Context) (*models.QuestionBankResponse, error) {
	questions, err := s.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	views := make([]*models.QuestionView, 0, len(questions))
	for _, q := range questions {
		views = append(views, q.View())
	}
	return &models.QuestionBankResponse{Questions: views, Total: len(views)}, nil
}

func (s *tutorService) ExportInsights(ctx context.Context) (data []byte, err error) {
	op := s.ops.WithOperation(ctx, "export_insights")
	defer func() { op.LogResult(err) }()

	report, err := s.Insights(ctx)
	if err != nil {
		return nil, err
	}
	return s.exporter.ExportInsightsToExcel(ctx, report, s.now())
}

func (s *tutorService) ExportQuestions(ctx context.Context) (data []byte, err error) {
	op := s.ops.WithOperation(ctx, "export_questions")
	defer func() { op.LogResult(err) }()

	questions, err := s.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	return s.exporter.ExportQuestionsToExcel(ctx, questions)
}

// publish never fails the caller; delivery problems are only logged.
func (s *tutorService) publish(ctx context.Context, eventType events.EventType, at time.Time, data any) {
	event := events.NewLearningEvent(eventType, s.sessionID, at, data)
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("Failed to publish learning event", "event_type", eventType, "error", err)
	}
}

// syncSnapshot mirrors the insights taken at version into the cache, or
// clears the entry when insights is nil. Versions older than the last
// applied one are dropped so the cache never moves backwards.
func (s *tutorService) syncSnapshot(ctx context.Context, version uint64, insights *models.Insights) {
	s.snapshotMu.Lock()
	defer s.snapshotMu.Unlock()

	if version <= s.storedVersion {
		s.logger.Debug("Skipping stale insights snapshot", "version", version, "stored_version", s.storedVersion)
		return
	}
	s.storedVersion = version

	key := cache.InsightsKey(s.sessionID)
	if insights == nil {
		if err := s.cache.Delete(ctx, key); err != nil {
			s.logger.Warn("Failed to clear insights snapshot", "error", err)
		}
		return
	}
	if err := s.cache.Set(ctx, key, insights, s.cacheTTL); err != nil {
		s.logger.Warn("Failed to cache insights snapshot", "error", err)
	}
}
