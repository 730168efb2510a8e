package delivery

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/Vovarama1992/voxlate/internal/capture"
	"github.com/Vovarama1992/voxlate/internal/language"
	"github.com/Vovarama1992/voxlate/internal/session"
	"github.com/Vovarama1992/voxlate/internal/stt"
	"github.com/Vovarama1992/voxlate/internal/translate"
	"github.com/Vovarama1992/voxlate/internal/tts"
)

// SessionService is the slice of the orchestrator the handlers need.
type SessionService interface {
	Record(ctx context.Context) (session.RecordResult, error)
	Translate(ctx context.Context, targetCode string, speed float64) (session.TranslateResult, error)
	Snapshot() session.State
}

type Handler struct {
	sessions SessionService
	log      *zap.SugaredLogger
}

func NewHandler(sessions SessionService, log *zap.SugaredLogger) *Handler {
	return &Handler{
		sessions: sessions,
		log:      log,
	}
}

func (h *Handler) Languages(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, language.All())
}

func (h *Handler) Session(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.sessions.Snapshot())
}

func (h *Handler) Record(w http.ResponseWriter, r *http.Request) {
	res, err := h.sessions.Record(r.Context())
	if err != nil {
		h.log.Warnw("record failed", "err", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) Translate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TargetLanguage string  `json:"targetLanguage"`
		Speed          float64 `json:"speed"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json: " + err.Error()})
		return
	}
	if req.Speed == 0 {
		req.Speed = 1.0
	}

	res, err := h.sessions.Translate(r.Context(), req.TargetLanguage, req.Speed)
	if err != nil {
		h.log.Warnw("translate failed", "target", req.TargetLanguage, "err", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), map[string]string{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, capture.ErrNoSpeech),
		errors.Is(err, stt.ErrUnintelligible):
		return http.StatusUnprocessableEntity
	case errors.Is(err, session.ErrNoInput),
		errors.Is(err, session.ErrUnknownTarget),
		errors.Is(err, session.ErrSpeedRange):
		return http.StatusBadRequest
	case errors.Is(err, stt.ErrUnavailable),
		errors.Is(err, translate.ErrTranslate),
		errors.Is(err, tts.ErrSynthesis):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
