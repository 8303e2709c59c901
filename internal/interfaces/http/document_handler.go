package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/khohang-api/internal/application/dto"
	"github.com/jhoicas/khohang-api/internal/application/inventory"
	"github.com/jhoicas/khohang-api/internal/domain"
	"github.com/jhoicas/khohang-api/internal/domain/entity"
)

// DocumentHandler maneja las cabeceras de los cuatro tipos de documento
// (import, export, transfer, purchase_request) bajo /api/documents/:kind.
type DocumentHandler struct {
	uc *inventory.DocumentUseCase
}

// NewDocumentHandler construye el handler.
func NewDocumentHandler(uc *inventory.DocumentUseCase) *DocumentHandler {
	return &DocumentHandler{uc: uc}
}

// documentKind lee :kind; un tipo desconocido es un recurso inexistente.
func documentKind(c *fiber.Ctx) (entity.DocumentKind, error) {
	kind, ok := entity.ParseDocumentKind(c.Params("kind"))
	if !ok {
		return "", domain.ErrNotFound
	}
	return kind, nil
}

// Create godoc
// @Summary      Crear documento
// @Tags         documents
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        kind  path  string  true  "import | export | transfer | purchase_request"
// @Param        body  body  dto.CreateDocumentRequest  true  "customer_id (export), warehouse_id (transfer), note, date"
// @Success      201   {object}  dto.DocumentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/documents/{kind} [post]
func (h *DocumentHandler) Create(c *fiber.Ctx) error {
	kind, err := documentKind(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.CreateDocumentRequest
	if err := bind(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), kind, GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Get godoc
// @Summary      Obtener documento con sus líneas
// @Tags         documents
// @Security     Bearer
// @Produce      json
// @Param        kind  path  string  true  "Tipo de documento"
// @Param        id    path  string  true  "ID del documento"
// @Success      200   {object}  dto.DocumentWithDetailsResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/documents/{kind}/{id} [get]
func (h *DocumentHandler) Get(c *fiber.Ctx) error {
	kind, err := documentKind(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Get(c.UserContext(), kind, c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar documentos de un tipo
// @Tags         documents
// @Security     Bearer
// @Produce      json
// @Param        kind    path   string  true   "Tipo de documento"
// @Param        page    query  int     false  "Página"  default(1)
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        search  query  string  false  "Código o nota"
// @Success      200     {object}  dto.DocumentListResponse
// @Router       /api/documents/{kind} [get]
func (h *DocumentHandler) List(c *fiber.Ctx) error {
	kind, err := documentKind(c)
	if err != nil {
		return writeError(c, err)
	}
	var q dto.ListQuery
	if err := bindQuery(c, &q); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.List(c.UserContext(), kind, q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update PUT /api/documents/:kind/:id
func (h *DocumentHandler) Update(c *fiber.Ctx) error {
	kind, err := documentKind(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.UpdateDocumentRequest
	if err := bind(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), kind, c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/documents/:kind/:id (borra también sus líneas)
func (h *DocumentHandler) Delete(c *fiber.Ctx) error {
	kind, err := documentKind(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), kind, c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// PDF godoc
// @Summary      Descargar documento en PDF
// @Tags         documents
// @Security     Bearer
// @Produce      application/pdf
// @Param        kind  path  string  true  "Tipo de documento"
// @Param        id    path  string  true  "ID del documento"
// @Success      200   {file}  binary
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/documents/{kind}/{id}/pdf [get]
func (h *DocumentHandler) PDF(c *fiber.Ctx) error {
	kind, err := documentKind(c)
	if err != nil {
		return writeError(c, err)
	}
	data, name, err := h.uc.PDF(c.UserContext(), kind, c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return sendFile(c, data, name, "application/pdf")
}
