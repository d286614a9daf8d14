package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestQuestionsCommand(t *testing.T) {
	t.Setenv("QUESTIONS_PATH", "")
	t.Setenv("DATABASE_URL", "")
	dir := t.TempDir()
	questions := filepath.Join(dir, "questions.json")
	require.NoError(t, os.WriteFile(questions, []byte(`[{"question":"2+2?","options":["3","4"],"answerIndex":1}]`), 0o644))
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("quiz:\n  questions_path: \""+questions+"\"\n"), 0o644))

	out, err := runCmd(t, "questions", "--config", cfgPath)
	require.NoError(t, err)
	require.Contains(t, out, "1 questions")
	require.Contains(t, out, "2+2?")
}

func TestQuestionsCommandRejectsBadIndex(t *testing.T) {
	t.Setenv("QUESTIONS_PATH", "")
	t.Setenv("DATABASE_URL", "")
	dir := t.TempDir()
	questions := filepath.Join(dir, "questions.json")
	require.NoError(t, os.WriteFile(questions, []byte(`[{"question":"2+2?","options":["3","4"],"answerIndex":5}]`), 0o644))
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("quiz:\n  questions_path: \""+questions+"\"\n"), 0o644))

	_, err := runCmd(t, "questions", "--config", cfgPath)
	require.Error(t, err)
}

func TestResultCommand(t *testing.T) {
	mr := miniredis.RunT(t)
	require.NoError(t, mr.Set("quiz:result:555",
		`{"chatId":555,"answers":[1,0],"promoCode":"FREEBET-AB12","submittedAt":"2026-10-17T10:00:00Z","correctCount":2,"total":2,"allCorrect":true}`))

	t.Setenv("STORAGE_TYPE", "redis")
	t.Setenv("REDIS_ADDR", mr.Addr())

	out, err := runCmd(t, "result", "555", "--config", filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Contains(t, out, "2/2 correct")
	require.Contains(t, out, "FREEBET-AB12")
}

func TestResultCommandInvalidChatID(t *testing.T) {
	_, err := runCmd(t, "result", "abc")
	require.Error(t, err)
}
