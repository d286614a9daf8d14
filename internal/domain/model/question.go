package model

// Question представляет вопрос викторины.
// Позиция вопроса в банке определяет индекс ответа в отправке.
type Question struct {
	ID          int      `json:"id,omitempty"`
	Text        string   `json:"question"`
	Options     []string `json:"options"`
	AnswerIndex int      `json:"answerIndex"`
}

// Unanswered обозначает пропущенную позицию в отправке (null в JSON).
const Unanswered = -1
