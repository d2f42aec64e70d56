package rest

import "net/http"

// Handlers groups the handlers mounted by NewRouter.
type Handlers struct {
	Item   *ItemHandler
	Person *PersonHandler
	Tag    *TagHandler
	Health *HealthHandler
}

// NewRouter builds the HTTP route table.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/v1/items", h.Item.Create)
	mux.HandleFunc("GET /api/v1/items", h.Item.List)
	mux.HandleFunc("GET /api/v1/items/{id}", h.Item.Get)
	mux.HandleFunc("PUT /api/v1/items/{id}", h.Item.Update)
	mux.HandleFunc("DELETE /api/v1/items/{id}", h.Item.Delete)

	mux.HandleFunc("GET /api/v1/persons", h.Person.List)
	mux.HandleFunc("GET /api/v1/persons/{id}", h.Person.Get)

	mux.HandleFunc("GET /api/v1/tags", h.Tag.List)
	mux.HandleFunc("GET /api/v1/tags/{id}", h.Tag.Get)

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)

	return mux
}
