package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OlamideOlanipekun/NaijaBites/internal/models"
)

// newTestAssistant builds an AssistantService with the remote call replaced,
// so no Gemini client is needed.
func newTestAssistant(fn replyFunc) *AssistantService {
	rateChan := make(chan struct{}, 1)
	rateChan <- struct{}{}
	return &AssistantService{rateChan: rateChan, generate: fn}
}

func echoReply(ctx context.Context, history []models.ChatMessage) (string, error) {
	return "Try the Jollof, Oga!", nil
}

func TestSubmit_AppendsUserAndModelMessages(t *testing.T) {
	svc := newTestAssistant(echoReply)
	session := newChatSession()

	got := svc.Submit(context.Background(), session, "What should I eat?")

	// Greeting + user turn + model reply.
	require.Len(t, got, 3)
	assert.Equal(t, models.RoleModel, got[0].Role)
	assert.Equal(t, Greeting, got[0].Text)
	assert.Equal(t, models.RoleUser, got[1].Role)
	assert.Equal(t, "What should I eat?", got[1].Text)
	assert.Equal(t, models.RoleModel, got[2].Role)
	assert.Equal(t, "Try the Jollof, Oga!", got[2].Text)
	assert.False(t, session.Busy())
}

func TestSubmit_EmptyInputLeavesTranscriptUnchanged(t *testing.T) {
	called := false
	svc := newTestAssistant(func(ctx context.Context, history []models.ChatMessage) (string, error) {
		called = true
		return "", nil
	})
	session := newChatSession()

	for _, input := range []string{"", "   ", "\n\t"} {
		got := svc.Submit(context.Background(), session, input)
		assert.Len(t, got, 1, "input %q must be dropped", input)
	}
	assert.False(t, called, "no request may be issued for empty input")
}

func TestSubmit_DroppedWhileAwaitingResponse(t *testing.T) {
	svc := newTestAssistant(echoReply)
	session := newChatSession()

	// Occupy the session as if a request were in flight.
	_, ok := session.beginTurn("first question")
	require.True(t, ok)

	got := svc.Submit(context.Background(), session, "second question")

	// Greeting + the pending user message only; the second submit vanished.
	require.Len(t, got, 2)
	assert.Equal(t, "first question", got[1].Text)
	assert.True(t, session.Busy())

	// Once the turn completes the session accepts submissions again.
	session.endTurn("reply")
	got = svc.Submit(context.Background(), session, "second question")
	assert.Len(t, got, 5)
}

func TestSubmit_ServiceFailureYieldsApologyNotError(t *testing.T) {
	svc := newTestAssistant(func(ctx context.Context, history []models.ChatMessage) (string, error) {
		return "", errors.New("connection reset")
	})
	session := newChatSession()
	before := len(session.Snapshot())

	got := svc.Submit(context.Background(), session, "Hello?")

	// Exactly one user message and one fallback model message were added.
	require.Len(t, got, before+2)
	last := got[len(got)-1]
	assert.Equal(t, models.RoleModel, last.Role)
	assert.Equal(t, fallbackError, last.Text)
	assert.False(t, session.Busy())
}

func TestSubmit_EmptyModelOutputUsesFallback(t *testing.T) {
	svc := newTestAssistant(func(ctx context.Context, history []models.ChatMessage) (string, error) {
		return "   ", nil
	})
	session := newChatSession()

	got := svc.Submit(context.Background(), session, "Hello?")

	last := got[len(got)-1]
	assert.Equal(t, fallbackEmpty, last.Text)
}

func TestSubmit_HistoryCarriesFullTranscript(t *testing.T) {
	var seen []models.ChatMessage
	svc := newTestAssistant(func(ctx context.Context, history []models.ChatMessage) (string, error) {
		seen = history
		return "ok", nil
	})
	session := newChatSession()

	svc.Submit(context.Background(), session, "First")
	svc.Submit(context.Background(), session, "Second")

	// The request for the second turn includes the greeting, both user turns
	// and the first reply, with the new user message last.
	require.Len(t, seen, 4)
	assert.Equal(t, "Second", seen[len(seen)-1].Text)
	assert.Equal(t, models.RoleUser, seen[len(seen)-1].Role)
}

func TestTrimLeadingModelTurns(t *testing.T) {
	history := []models.ChatMessage{
		{Role: models.RoleModel, Text: Greeting},
		{Role: models.RoleUser, Text: "hi"},
		{Role: models.RoleModel, Text: "hello"},
	}

	got := trimLeadingModelTurns(history)
	require.Len(t, got, 2)
	assert.Equal(t, models.RoleUser, got[0].Role)

	assert.Nil(t, trimLeadingModelTurns([]models.ChatMessage{{Role: models.RoleModel, Text: "x"}}))
}

func TestChatSessionStore_SeedsGreetingOnce(t *testing.T) {
	store := NewChatSessionStore()

	a := store.GetOrCreate("s1")
	b := store.GetOrCreate("s1")
	c := store.GetOrCreate("s2")

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
	require.Len(t, a.Snapshot(), 1)
	assert.Equal(t, Greeting, a.Snapshot()[0].Text)
}
