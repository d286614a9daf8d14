package health_handler

import (
	"net/http"

	httpError "github.com/IT-Nick/promo-quiz/pkg/http"
)

type healthResponse struct {
	Status    string `json:"status"`
	Questions int    `json:"questions"`
}

type QuestionCounter interface {
	Count() int
}

// HealthHandler отвечает на GET /healthz
type HealthHandler struct {
	questions QuestionCounter
}

// NewHealthHandler создает новый экземпляр обработчика
func NewHealthHandler(questions QuestionCounter) *HealthHandler {
	return &HealthHandler{questions: questions}
}

// ServeHTTP отвечает статусом и размером банка вопросов
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	httpError.JSONResponse(w, http.StatusOK, healthResponse{Status: "ok", Questions: h.questions.Count()})
}
