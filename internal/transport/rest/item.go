package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/magadiflo/todo-list-backend/internal/domain"
	"github.com/magadiflo/todo-list-backend/internal/service/item"
)

// itemService defines the minimal interface needed by ItemHandler.
type itemService interface {
	Create(ctx context.Context, input item.CreateItemInput) (*domain.Item, error)
	Get(ctx context.Context, itemID int64, loadRelations bool) (*domain.Item, error)
	List(ctx context.Context) ([]domain.Item, error)
	Update(ctx context.Context, itemID int64, input item.UpdateItemInput, expectedVersion *int64) (*domain.Item, error)
	Delete(ctx context.Context, itemID int64, expectedVersion *int64) error
}

// ItemHandler serves item REST endpoints.
type ItemHandler struct {
	svc itemService
	log *slog.Logger
}

// NewItemHandler creates an ItemHandler.
func NewItemHandler(svc itemService, logger *slog.Logger) *ItemHandler {
	return &ItemHandler{svc: svc, log: logger.With("handler", "item")}
}

type createItemRequest struct {
	Description string  `json:"description"`
	AssigneeID  *int64  `json:"assigneeId"`
	TagIDs      []int64 `json:"tagIds"`
}

type updateItemRequest struct {
	Description string  `json:"description"`
	Status      string  `json:"status"`
	AssigneeID  *int64  `json:"assigneeId"`
	TagIDs      []int64 `json:"tagIds"`
}

// Create handles POST /api/v1/items.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.Create(r.Context(), item.CreateItemInput{
		Description: req.Description,
		AssigneeID:  req.AssigneeID,
		TagIDs:      req.TagIDs,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	setETag(w, created.Version)
	writeJSON(w, http.StatusCreated, toItemResponse(created))
}

// Get handles GET /api/v1/items/{id}. The bare row is returned unless the
// loadRelations query parameter is explicitly true.
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	loadRelations := false
	if raw := r.URL.Query().Get("loadRelations"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			respondError(w, r, h.log, domain.NewValidationError("loadRelations", "must be a boolean"))
			return
		}
		loadRelations = parsed
	}

	found, err := h.svc.Get(r.Context(), id, loadRelations)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	setETag(w, found.Version)
	writeJSON(w, http.StatusOK, toItemResponse(found))
}

// List handles GET /api/v1/items. Items are listed without relations.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toItemResponses(items))
}

// Update handles PUT /api/v1/items/{id}. The If-Match header carries the
// expected version for the optimistic-lock check.
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	expectedVersion, err := ifMatchVersion(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var req updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.Update(r.Context(), id, item.UpdateItemInput{
		Description: req.Description,
		Status:      domain.ItemStatus(req.Status),
		AssigneeID:  req.AssigneeID,
		TagIDs:      req.TagIDs,
	}, expectedVersion)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	setETag(w, updated.Version)
	writeJSON(w, http.StatusOK, toItemResponse(updated))
}

// Delete handles DELETE /api/v1/items/{id}. The If-Match header carries the
// expected version for the optimistic-lock check.
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	expectedVersion, err := ifMatchVersion(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id, expectedVersion); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
