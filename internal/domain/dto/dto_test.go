package dto

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"github.com/IT-Nick/promo-quiz/internal/domain/model"
)

func parse(t *testing.T, body string) (string, []int, error) {
	t.Helper()
	var req SubmitRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	return req.Parse()
}

func TestSubmitRequestParse(t *testing.T) {
	sessionID, answers, err := parse(t, `{"sessionId":"abc","answers":[1,null,0]}`)
	require.NoError(t, err)
	require.Equal(t, "abc", sessionID)
	require.Equal(t, []int{1, model.Unanswered, 0}, answers)

	_, answers, err = parse(t, `{"sessionId":"abc","answers":[]}`)
	require.NoError(t, err)
	require.NotNil(t, answers)
	require.Empty(t, answers)
}

func TestSubmitRequestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing session", `{"answers":[1]}`},
		{"empty session", `{"sessionId":"","answers":[1]}`},
		{"numeric session", `{"sessionId":42,"answers":[1]}`},
		{"null session", `{"sessionId":null,"answers":[1]}`},
		{"missing answers", `{"sessionId":"abc"}`},
		{"answers string", `{"sessionId":"abc","answers":"1,2"}`},
		{"answers null", `{"sessionId":"abc","answers":null}`},
		{"answers object", `{"sessionId":"abc","answers":{"0":1}}`},
		{"non integer element", `{"sessionId":"abc","answers":[1,"b"]}`},
		{"fractional element", `{"sessionId":"abc","answers":[1.5]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := parse(t, tt.body)
			require.ErrorIs(t, err, model.ErrInvalidPayload)
		})
	}
}

func TestNewQuestionsResponseRedacts(t *testing.T) {
	questions := []model.Question{{Text: "2+2?", Options: []string{"3", "4"}, AnswerIndex: 1}}

	open := NewQuestionsResponse(questions, false)
	require.NotNil(t, open.Questions[0].AnswerIndex)
	require.Equal(t, 1, *open.Questions[0].AnswerIndex)

	hidden := NewQuestionsResponse(questions, true)
	require.Nil(t, hidden.Questions[0].AnswerIndex)

	data, err := json.Marshal(hidden)
	require.NoError(t, err)
	require.NotContains(t, string(data), "answerIndex")
}

func TestNewQuestionsResponseEmptyBank(t *testing.T) {
	data, err := json.Marshal(NewQuestionsResponse(nil, false))
	require.NoError(t, err)
	require.JSONEq(t, `{"questions":[]}`, string(data))
}
