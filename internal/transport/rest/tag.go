package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/magadiflo/todo-list-backend/internal/domain"
)

// tagService defines the minimal interface needed by TagHandler.
type tagService interface {
	Get(ctx context.Context, tagID int64) (*domain.Tag, error)
	List(ctx context.Context) ([]domain.Tag, error)
}

// TagHandler serves tag REST endpoints. Tags are read-only here.
type TagHandler struct {
	svc tagService
	log *slog.Logger
}

// NewTagHandler creates a TagHandler.
func NewTagHandler(svc tagService, logger *slog.Logger) *TagHandler {
	return &TagHandler{svc: svc, log: logger.With("handler", "tag")}
}

// Get handles GET /api/v1/tags/{id}.
func (h *TagHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	found, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTagResponse(found))
}

// List handles GET /api/v1/tags.
func (h *TagHandler) List(w http.ResponseWriter, r *http.Request) {
	tags, err := h.svc.List(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTagResponses(tags))
}
