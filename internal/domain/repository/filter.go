package repository

// ListFilter es el filtro serializable de los listados (página, búsqueda).
// Lo construye la capa de aplicación desde dto.ListQuery.
type ListFilter struct {
	Search string
	Limit  int
	Offset int
}
