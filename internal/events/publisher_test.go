package events

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewLearningEvent(t *testing.T) {
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	e := NewLearningEvent(EventModeChanged, "s-1", at, ModeChangedEvent{From: "balanced", To: "support"})

	assert.NotEmpty(t, e.ID)
	assert.Equal(t, EventSource, e.Source)
	assert.Equal(t, EventVersion, e.Version)
	assert.Equal(t, "s-1", e.SessionID)
	assert.Equal(t, at, e.Timestamp)

	other := NewLearningEvent(EventModeChanged, "s-1", at, nil)
	assert.NotEqual(t, e.ID, other.ID)
}

func TestNewMessage(t *testing.T) {
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	e := NewLearningEvent(EventAnswerRecorded, "s-1", at, AnswerRecordedEvent{QuestionID: 3, Correct: true})

	msg, err := NewMessage(e)
	require.NoError(t, err)

	assert.Equal(t, e.ID, msg.UUID)
	assert.Equal(t, "answer.recorded", msg.Metadata.Get("event_type"))
	assert.Equal(t, "s-1", msg.Metadata.Get("session_id"))
	assert.Equal(t, "2025-03-01T10:00:00Z", msg.Metadata.Get("timestamp"))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(msg.Payload, &decoded))
	assert.Equal(t, "answer.recorded", decoded["type"])
	data := decoded["data"].(map[string]any)
	assert.Equal(t, float64(3), data["question_id"])
	assert.Equal(t, true, data["correct"])
}

func TestWatermillEventPublisher_Publish(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	t.Cleanup(func() { pubSub.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	messages, err := pubSub.Subscribe(ctx, "learning-events")
	require.NoError(t, err)

	publisher := NewWatermillEventPublisher(pubSub, "learning-events", discardLogger())
	event := NewLearningEvent(EventSessionReset, "s-2", time.Now(), SessionResetEvent{QuestionsAnswered: 4})
	require.NoError(t, publisher.Publish(ctx, event))

	select {
	case msg := <-messages:
		msg.Ack()
		assert.Equal(t, event.ID, msg.UUID)
		assert.Equal(t, "session.reset", msg.Metadata.Get("event_type"))
	case <-ctx.Done():
		t.Fatal("message not delivered")
	}
}

func TestMockEventPublisher(t *testing.T) {
	mock := NewMockEventPublisher(discardLogger())
	ctx := context.Background()

	require.NoError(t, mock.Publish(ctx, NewLearningEvent(EventAnswerRecorded, "s", time.Now(), nil)))
	require.NoError(t, mock.Publish(ctx, NewLearningEvent(EventModeChanged, "s", time.Now(), nil)))
	require.NoError(t, mock.Publish(ctx, NewLearningEvent(EventAnswerRecorded, "s", time.Now(), nil)))

	assert.Len(t, mock.Events(), 3)
	assert.Len(t, mock.EventsOfType(EventAnswerRecorded), 2)

	mock.Clear()
	assert.Empty(t, mock.Events())
	assert.NoError(t, mock.Close())
}
