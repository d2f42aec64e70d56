package rest

import (
	"time"

	"github.com/magadiflo/todo-list-backend/internal/domain"
)

type itemResponse struct {
	ID               int64           `json:"id"`
	Description      string          `json:"description"`
	Status           string          `json:"status"`
	AssigneeID       *int64          `json:"assigneeId,omitempty"`
	Assignee         *personResponse `json:"assignee,omitempty"`
	Tags             []tagResponse   `json:"tags,omitempty"`
	Version          int64           `json:"version"`
	CreatedDate      time.Time       `json:"createdDate"`
	LastModifiedDate time.Time       `json:"lastModifiedDate"`
}

type personResponse struct {
	ID               int64     `json:"id"`
	FirstName        string    `json:"firstName"`
	LastName         string    `json:"lastName"`
	Version          int64     `json:"version"`
	CreatedDate      time.Time `json:"createdDate"`
	LastModifiedDate time.Time `json:"lastModifiedDate"`
}

type tagResponse struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Version          int64     `json:"version"`
	CreatedDate      time.Time `json:"createdDate"`
	LastModifiedDate time.Time `json:"lastModifiedDate"`
}

func toItemResponse(item *domain.Item) itemResponse {
	resp := itemResponse{
		ID:               item.ID,
		Description:      item.Description,
		Status:           item.Status.String(),
		AssigneeID:       item.AssigneeID,
		Version:          item.Version,
		CreatedDate:      item.CreatedDate,
		LastModifiedDate: item.LastModifiedDate,
	}
	if item.Assignee != nil {
		assignee := toPersonResponse(item.Assignee)
		resp.Assignee = &assignee
	}
	if len(item.Tags) > 0 {
		resp.Tags = make([]tagResponse, 0, len(item.Tags))
		for i := range item.Tags {
			resp.Tags = append(resp.Tags, toTagResponse(&item.Tags[i]))
		}
	}
	return resp
}

func toItemResponses(items []domain.Item) []itemResponse {
	resp := make([]itemResponse, 0, len(items))
	for i := range items {
		resp = append(resp, toItemResponse(&items[i]))
	}
	return resp
}

func toPersonResponse(p *domain.Person) personResponse {
	return personResponse{
		ID:               p.ID,
		FirstName:        p.FirstName,
		LastName:         p.LastName,
		Version:          p.Version,
		CreatedDate:      p.CreatedDate,
		LastModifiedDate: p.LastModifiedDate,
	}
}

func toPersonResponses(persons []domain.Person) []personResponse {
	resp := make([]personResponse, 0, len(persons))
	for i := range persons {
		resp = append(resp, toPersonResponse(&persons[i]))
	}
	return resp
}

func toTagResponse(t *domain.Tag) tagResponse {
	return tagResponse{
		ID:               t.ID,
		Name:             t.Name,
		Version:          t.Version,
		CreatedDate:      t.CreatedDate,
		LastModifiedDate: t.LastModifiedDate,
	}
}

func toTagResponses(tags []domain.Tag) []tagResponse {
	resp := make([]tagResponse, 0, len(tags))
	for i := range tags {
		resp = append(resp, toTagResponse(&tags[i]))
	}
	return resp
}
