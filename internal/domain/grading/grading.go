package grading

import "github.com/IT-Nick/promo-quiz/internal/domain/model"

// Grade сравнивает ответы с банком вопросов по позициям.
// Недостающие ответы считаются неверными, лишние игнорируются.
// Пустой банк никогда не дает AllCorrect: без вопросов промокод не положен.
func Grade(answers []int, questions []model.Question) model.GradingResult {
	correct := 0
	for i, q := range questions {
		if i < len(answers) && answers[i] == q.AnswerIndex {
			correct++
		}
	}

	total := len(questions)
	return model.GradingResult{
		CorrectCount: correct,
		Total:        total,
		AllCorrect:   total > 0 && correct == total,
	}
}
