package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/magadiflo/todo-list-backend/internal/domain"
)

// personService defines the minimal interface needed by PersonHandler.
type personService interface {
	Get(ctx context.Context, personID int64) (*domain.Person, error)
	List(ctx context.Context) ([]domain.Person, error)
}

// PersonHandler serves person REST endpoints. Persons are read-only here.
type PersonHandler struct {
	svc personService
	log *slog.Logger
}

// NewPersonHandler creates a PersonHandler.
func NewPersonHandler(svc personService, logger *slog.Logger) *PersonHandler {
	return &PersonHandler{svc: svc, log: logger.With("handler", "person")}
}

// Get handles GET /api/v1/persons/{id}.
func (h *PersonHandler) Get(w http.ResponseWriter, r *http.Request) {
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

	writeJSON(w, http.StatusOK, toPersonResponse(found))
}

// List handles GET /api/v1/persons.
func (h *PersonHandler) List(w http.ResponseWriter, r *http.Request) {
	persons, err := h.svc.List(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toPersonResponses(persons))
}
