package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/khohang-api/internal/application/dto"
	"github.com/jhoicas/khohang-api/internal/application/inventory"
)

// DetailHandler maneja las líneas producto/color/talla de un documento.
// Cada escritura pasa por el control de duplicados y la compuerta de
// disponibilidad; la respuesta trae el veredicto y los datos releídos.
type DetailHandler struct {
	uc *inventory.DetailUseCase
}

// NewDetailHandler construye el handler.
func NewDetailHandler(uc *inventory.DetailUseCase) *DetailHandler {
	return &DetailHandler{uc: uc}
}

// Add godoc
// @Summary      Agregar línea a un documento
// @Tags         details
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        kind  path  string  true  "Tipo de documento"
// @Param        id    path  string  true  "ID del documento"
// @Param        body  body  dto.DetailRequest  true  "product_id, color_title, size, quantity, unit_price"
// @Success      201   {object}  dto.DetailMutationResponse
// @Failure      400   {object}  dto.ErrorResponse  "MISSING_SELECTION | INVALID_QUANTITY"
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "DUPLICATE_COMBINATION | DOCUMENT_BUSY"
// @Router       /api/documents/{kind}/{id}/details [post]
func (h *DetailHandler) Add(c *fiber.Ctx) error {
	kind, err := documentKind(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.DetailRequest
	if err := bind(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Add(c.UserContext(), kind, c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Editar línea de un documento
// @Tags         details
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        kind      path  string  true  "Tipo de documento"
// @Param        id        path  string  true  "ID del documento"
// @Param        detailId  path  string  true  "ID de la línea"
// @Param        body      body  dto.DetailRequest  true  "product_id, color_title, size, quantity, unit_price"
// @Success      200   {object}  dto.DetailMutationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/documents/{kind}/{id}/details/{detailId} [put]
func (h *DetailHandler) Update(c *fiber.Ctx) error {
	kind, err := documentKind(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.DetailRequest
	if err := bind(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), kind, c.Params("id"), c.Params("detailId"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/documents/:kind/:id/details/:detailId
func (h *DetailHandler) Delete(c *fiber.Ctx) error {
	kind, err := documentKind(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Delete(c.UserContext(), kind, c.Params("id"), c.Params("detailId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Import godoc
// @Summary      Importar líneas desde XLSX
// @Tags         details
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        kind  path      string  true  "Tipo de documento"
// @Param        id    path      string  true  "ID del documento"
// @Param        file  formData  file    true  "Columnas: product_id, color, size, quantity, unit_price"
// @Success      200   {object}  dto.SheetImportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/documents/{kind}/{id}/details/import [post]
func (h *DetailHandler) Import(c *fiber.Ctx) error {
	kind, err := documentKind(c)
	if err != nil {
		return writeError(c, err)
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return writeError(c, &requestError{code: "MISSING_FILE", message: "se requiere el archivo en el campo file"})
	}
	f, err := fh.Open()
	if err != nil {
		return writeError(c, err)
	}
	defer f.Close()

	out, err := h.uc.ImportSheet(c.UserContext(), kind, c.Params("id"), f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
