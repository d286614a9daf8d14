package dto

import "github.com/IT-Nick/promo-quiz/internal/domain/model"

// QuestionsResponse ответ GET /api/questions
type QuestionsResponse struct {
	Questions []QuestionView `json:"questions"`
}

// QuestionView вопрос в том виде, в котором его получает фронтенд.
// AnswerIndex равен nil, если правильные ответы скрыты настройкой quiz.redact_answers.
type QuestionView struct {
	ID          int      `json:"id,omitempty"`
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	AnswerIndex *int     `json:"answerIndex,omitempty"`
}

// NewQuestionsResponse собирает ответ из банка вопросов
func NewQuestionsResponse(questions []model.Question, redactAnswers bool) QuestionsResponse {
	views := make([]QuestionView, 0, len(questions))
	for _, q := range questions {
		view := QuestionView{
			ID:       q.ID,
			Question: q.Text,
			Options:  q.Options,
		}
		if !redactAnswers {
			idx := q.AnswerIndex
			view.AnswerIndex = &idx
		}
		views = append(views, view)
	}
	return QuestionsResponse{Questions: views}
}
