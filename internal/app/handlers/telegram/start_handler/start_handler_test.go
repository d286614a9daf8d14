package start_handler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	msgrepo "github.com/IT-Nick/promo-quiz/internal/domain/messages/repository"
	msgservice "github.com/IT-Nick/promo-quiz/internal/domain/messages/service"
	"github.com/IT-Nick/promo-quiz/internal/domain/model"
	sessionrepo "github.com/IT-Nick/promo-quiz/internal/domain/sessions/repository"
	sessionservice "github.com/IT-Nick/promo-quiz/internal/domain/sessions/service"
)

type failingSessions struct{}

func (failingSessions) CreateSession(context.Context, int64) (string, error) {
	return "", errors.New("storage unavailable")
}

func TestPromptBuildsDeepLink(t *testing.T) {
	ctx := context.Background()
	sessions := sessionservice.NewSessionService(sessionrepo.NewMemorySessionRepository(), 0)
	messages := msgservice.NewMessageService(msgrepo.NewMessageRepository(nil))
	h := NewStartHandler(sessions, messages, "https://quiz.example.com/")

	prompt, markup, err := h.Prompt(ctx, 555)
	require.NoError(t, err)
	require.Equal(t, msgrepo.DefaultMessages[model.StartPromptKey], prompt)
	require.Len(t, markup.InlineKeyboard, 1)
	require.Len(t, markup.InlineKeyboard[0], 1)

	button := markup.InlineKeyboard[0][0]
	require.Equal(t, msgrepo.DefaultMessages[model.StartButtonKey], button.Text)
	require.Regexp(t, `^https://quiz\.example\.com/\?sessionId=[0-9a-f-]{36}$`, button.URL)

	sessionID := button.URL[len("https://quiz.example.com/?sessionId="):]
	chatID, err := sessions.ResolveAndConsume(ctx, sessionID)
	require.NoError(t, err)
	require.Equal(t, int64(555), chatID)
}

func TestPromptEachCallMintsNewSession(t *testing.T) {
	ctx := context.Background()
	sessions := sessionservice.NewSessionService(sessionrepo.NewMemorySessionRepository(), 0)
	messages := msgservice.NewMessageService(msgrepo.NewMessageRepository(nil))
	h := NewStartHandler(sessions, messages, "http://localhost:5173")

	_, first, err := h.Prompt(ctx, 1)
	require.NoError(t, err)
	_, second, err := h.Prompt(ctx, 1)
	require.NoError(t, err)

	require.NotEqual(t, first.InlineKeyboard[0][0].URL, second.InlineKeyboard[0][0].URL)
}

func TestPromptSessionFailure(t *testing.T) {
	messages := msgservice.NewMessageService(msgrepo.NewMessageRepository(nil))
	h := NewStartHandler(failingSessions{}, messages, "http://localhost:5173")

	_, _, err := h.Prompt(context.Background(), 1)
	require.Error(t, err)
}
