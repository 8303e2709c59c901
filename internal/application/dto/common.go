package dto

import (
	"strings"

	"github.com/jhoicas/khohang-api/internal/domain/repository"
)

// ListQuery es el filtro serializable de los listados (?page=&limit=&search=).
type ListQuery struct {
	Page   int    `query:"page" validate:"omitempty,min=1"`
	Limit  int    `query:"limit" validate:"omitempty,min=1,max=100"`
	Search string `query:"search" validate:"omitempty,max=100"`
}

// Normalize aplica valores por defecto si Page/Limit son cero.
func (q *ListQuery) Normalize() {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.Limit <= 0 {
		q.Limit = 20
	}
	if q.Limit > 100 {
		q.Limit = 100
	}
	q.Search = strings.TrimSpace(q.Search)
}

// Filter traduce la consulta al filtro de repositorio.
func (q ListQuery) Filter() repository.ListFilter {
	q.Normalize()
	return repository.ListFilter{Search: q.Search, Limit: q.Limit, Offset: (q.Page - 1) * q.Limit}
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// NewPage arma los metadatos desde la consulta ya normalizada.
func NewPage(q ListQuery, total int) PageResponse {
	q.Normalize()
	return PageResponse{Page: q.Page, Limit: q.Limit, Total: total}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"` // campo -> regla incumplida
}
