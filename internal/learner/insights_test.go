package learner

import (
	"testing"
	"time"

	"github.com/SAP-F-2025/adaptive-tutor-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsights_FreshModel(t *testing.T) {
	m := New(sessionStart)

	in := m.Insights(sessionStart)

	assert.Equal(t, 0.0, in.Accuracy)
	assert.Equal(t, 50, in.Competence)
	assert.Equal(t, 80, in.Engagement)
	assert.Equal(t, 60, in.Confidence)
	assert.Equal(t, 15.0, in.AvgResponseTime)
	assert.Equal(t, models.ModeBalanced, in.LearningMode)
	assert.Empty(t, in.WeakTopics)
	assert.Empty(t, in.StrongTopics)
	assert.Empty(t, in.TopicMastery)
	assert.Equal(t, models.ExamReadiness{}, in.ExamReadiness)
}

func TestInsights_Accuracy(t *testing.T) {
	m := New(sessionStart)
	m.Record(true, 2, 10, string(models.TopicBasicC))
	m.Record(true, 2, 10, string(models.TopicBasicC))
	m.Record(false, 2, 10, string(models.TopicLoops))
	m.Record(true, 2, 10, string(models.TopicLoops))

	in := m.Insights(sessionStart.Add(90 * time.Second))

	assert.Equal(t, 4, in.QuestionsAnswered)
	assert.Equal(t, 75.0, in.Accuracy)
	assert.Equal(t, 1.5, in.SessionTime)
	require.Len(t, in.TopicMastery, 2)
	assert.Equal(t, models.TopicSummary{Mastery: 40, Accuracy: 100, QuestionsAttempted: 2}, in.TopicMastery[models.TopicBasicC])
	assert.Equal(t, models.TopicSummary{Mastery: 20, Accuracy: 50, QuestionsAttempted: 2}, in.TopicMastery[models.TopicLoops])
}

func TestInsights_EndToEndFirstAnswer(t *testing.T) {
	m := New(sessionStart)
	before := m.Insights(sessionStart)

	m.Record(true, 3, 8, string(models.TopicLoops))
	in := m.Insights(sessionStart)

	assert.GreaterOrEqual(t, in.Competence-before.Competence, 9)
	assert.Equal(t, 59, in.Competence)
	assert.Equal(t, 1, in.Streak)
	assert.Equal(t, before.WeakTopics, in.WeakTopics)
	assert.Equal(t, models.ExamReadiness{Quiz: 24, Midsem: 15, Endsem: 8}, in.ExamReadiness)
}

func TestInsights_IsReadOnly(t *testing.T) {
	m := New(sessionStart)
	m.Record(false, 4, 31, string(models.TopicPointersMemory))
	m.Record(true, 1, 6, string(models.TopicBasicC))
	now := sessionStart.Add(5 * time.Minute)

	first := m.Insights(now)
	second := m.Insights(now)

	assert.Equal(t, first, second)
	assert.Equal(t, 2, m.QuestionsAnswered)
}

func TestInsights_TopicListsFollowCurriculumOrder(t *testing.T) {
	m := New(sessionStart)
	m.Record(false, 2, 10, string(models.TopicAdvancedProgramming))
	m.Record(false, 2, 10, string(models.TopicBasicC))
	m.Record(false, 2, 10, string(models.TopicNumberSystems))

	in := m.Insights(sessionStart)

	assert.Equal(t, []models.Topic{
		models.TopicBasicC,
		models.TopicNumberSystems,
		models.TopicAdvancedProgramming,
	}, in.WeakTopics)
}

func TestInsights_RoundsHalfToEven(t *testing.T) {
	m := New(sessionStart)
	m.Competence = 60.5
	m.Engagement = 71.5
	m.Confidence = 20.5
	m.QuizReadiness = 24.5
	m.MidsemReadiness = 15.5
	m.EndsemReadiness = 8.5
	m.AvgResponseTime = 6.25

	in := m.Insights(sessionStart)

	assert.Equal(t, 60, in.Competence)
	assert.Equal(t, 72, in.Engagement)
	assert.Equal(t, 20, in.Confidence)
	assert.Equal(t, models.ExamReadiness{Quiz: 24, Midsem: 16, Endsem: 8}, in.ExamReadiness)
	assert.Equal(t, 6.2, in.AvgResponseTime)
}

func TestInsights_SpeedBonusHalfPointRoundsToEven(t *testing.T) {
	m := New(sessionStart)
	m.Record(false, 4, 10, string(models.TopicBasicC))
	// difficulty 2 gains 7, the speed bonus makes it 10.5
	m.Record(true, 2, 2, string(models.TopicBasicC))

	require.InDelta(t, 50-6+10.5, m.Competence, 1e-9)
	assert.Equal(t, 54, m.Insights(sessionStart).Competence)
}
