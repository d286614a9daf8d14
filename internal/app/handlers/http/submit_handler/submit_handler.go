package submit_handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/IT-Nick/promo-quiz/internal/domain/dto"
	"github.com/IT-Nick/promo-quiz/internal/domain/model"
	httpError "github.com/IT-Nick/promo-quiz/pkg/http"
)

const maxBodyBytes = 1 << 20

type Submitter interface {
	Submit(ctx context.Context, sessionID string, answers []int) (model.ResultRecord, error)
}

// SubmitHandler обрабатывает POST /api/submit
type SubmitHandler struct {
	submissions Submitter
	logger      *slog.Logger
}

// NewSubmitHandler создает новый экземпляр обработчика
func NewSubmitHandler(submissions Submitter, logger *slog.Logger) *SubmitHandler {
	return &SubmitHandler{
		submissions: submissions,
		logger:      logger,
	}
}

// ServeHTTP метод для обработки запроса
func (h *SubmitHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req dto.SubmitRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		httpError.ErrorResponse(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	sessionID, answers, err := req.Parse()
	if err != nil {
		httpError.ErrorResponse(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	if _, err := h.submissions.Submit(r.Context(), sessionID, answers); err != nil {
		switch {
		case errors.Is(err, model.ErrInvalidPayload):
			httpError.ErrorResponse(w, http.StatusBadRequest, "Invalid payload")
		case errors.Is(err, model.ErrSessionNotFound):
			httpError.ErrorResponse(w, http.StatusNotFound, "Session not found")
		default:
			h.logger.Error("submission failed", "error", err)
			httpError.ErrorResponse(w, http.StatusInternalServerError, "Internal error")
		}
		return
	}

	httpError.JSONResponse(w, http.StatusOK, dto.SubmitResponse{OK: true})
}
