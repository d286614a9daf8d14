package questions_handler

import (
	"net/http"

	"github.com/IT-Nick/promo-quiz/internal/domain/dto"
	"github.com/IT-Nick/promo-quiz/internal/domain/model"
	httpError "github.com/IT-Nick/promo-quiz/pkg/http"
)

type QuestionBank interface {
	Questions() []model.Question
}

// QuestionsHandler отдает банк вопросов фронтенду
type QuestionsHandler struct {
	questions     QuestionBank
	redactAnswers bool
}

// NewQuestionsHandler создает новый экземпляр обработчика
func NewQuestionsHandler(questions QuestionBank, redactAnswers bool) *QuestionsHandler {
	return &QuestionsHandler{
		questions:     questions,
		redactAnswers: redactAnswers,
	}
}

// ServeHTTP метод для обработки запроса
func (h *QuestionsHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	httpError.JSONResponse(w, http.StatusOK, dto.NewQuestionsResponse(h.questions.Questions(), h.redactAnswers))
}
