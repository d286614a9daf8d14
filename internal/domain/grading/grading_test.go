package grading

import (
	"testing"

	"github.com/IT-Nick/promo-quiz/internal/domain/model"
	"github.com/stretchr/testify/require"
)

func bank(answers ...int) []model.Question {
	questions := make([]model.Question, 0, len(answers))
	for i, a := range answers {
		questions = append(questions, model.Question{
			ID:          i + 1,
			Text:        "Вопрос",
			Options:     []string{"Да", "Нет", "Не уверен"},
			AnswerIndex: a,
		})
	}
	return questions
}

func TestGrade(t *testing.T) {
	tests := []struct {
		name    string
		bank    []model.Question
		answers []int
		want    model.GradingResult
	}{
		{
			name:    "all correct",
			bank:    bank(1, 0),
			answers: []int{1, 0},
			want:    model.GradingResult{CorrectCount: 2, Total: 2, AllCorrect: true},
		},
		{
			name:    "one mismatch",
			bank:    bank(1, 0),
			answers: []int{1, 1},
			want:    model.GradingResult{CorrectCount: 1, Total: 2},
		},
		{
			name:    "short answers count as wrong",
			bank:    bank(1, 0, 2),
			answers: []int{1},
			want:    model.GradingResult{CorrectCount: 1, Total: 3},
		},
		{
			name:    "extra answers ignored",
			bank:    bank(1, 0),
			answers: []int{1, 0, 2, 2},
			want:    model.GradingResult{CorrectCount: 2, Total: 2, AllCorrect: true},
		},
		{
			name:    "unanswered slot",
			bank:    bank(1, 0),
			answers: []int{model.Unanswered, 0},
			want:    model.GradingResult{CorrectCount: 1, Total: 2},
		},
		{
			name:    "empty bank never all correct",
			bank:    nil,
			answers: nil,
			want:    model.GradingResult{},
		},
		{
			name:    "empty answers",
			bank:    bank(0),
			answers: []int{},
			want:    model.GradingResult{Total: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Grade(tt.answers, tt.bank))
		})
	}
}

func TestGradeIsDeterministic(t *testing.T) {
	questions := bank(2, 1, 0, 3)
	answers := []int{2, 0, 0, 3}

	first := Grade(answers, questions)
	second := Grade(answers, questions)
	require.Equal(t, first, second)
	require.Equal(t, []int{2, 0, 0, 3}, answers)
}
