package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Hairash/ai-helper/internal/middleware"
	"github.com/Hairash/ai-helper/internal/models"
)

const maxReplyBodyBytes = 1 << 20

type replyComposer interface {
	Compose(ctx context.Context, requestID string, messages []models.Message) (string, error)
	ProviderName() string
}

type ReplyHandler struct {
	composer replyComposer
}

func NewReplyHandler(composer replyComposer) *ReplyHandler {
	return &ReplyHandler{composer: composer}
}

// AIReply drafts a reply to the last recruiter message of the posted transcript.
func (h *ReplyHandler) AIReply(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxReplyBodyBytes)

	var req models.ReplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResp("VALIDATION_ERROR", "Request body too large", r))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	reply, err := h.composer.Compose(r.Context(), middleware.GetRequestID(r.Context()), req.Messages)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.ReplyResponse{Text: reply})
}

// Health reports liveness and the configured provider.
func (h *ReplyHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":   "ok",
		"provider": h.composer.ProviderName(),
	})
}
