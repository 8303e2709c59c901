package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/khohang-api/internal/application/dto"
	"github.com/jhoicas/khohang-api/internal/application/report"
)

// SalaryHandler maneja la nómina mensual y su resumen (admin y contabilidad).
type SalaryHandler struct {
	uc *report.SalaryUseCase
}

// NewSalaryHandler construye el handler.
func NewSalaryHandler(uc *report.SalaryUseCase) *SalaryHandler {
	return &SalaryHandler{uc: uc}
}

// Create godoc
// @Summary      Liquidar el salario de un empleado en un mes
// @Tags         salaries
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSalaryRequest  true  "employee_id, year, month, base_salary, bonus, deduction"
// @Success      201   {object}  dto.SalaryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/salaries [post]
func (h *SalaryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSalaryRequest
	if err := bind(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /api/salaries?year=&month=
func (h *SalaryHandler) List(c *fiber.Ctx) error {
	var q dto.SalaryQuery
	if err := bindQuery(c, &q); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.List(c.UserContext(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// MarkPaid PATCH /api/salaries/:id/pay
func (h *SalaryHandler) MarkPaid(c *fiber.Ctx) error {
	out, err := h.uc.MarkPaid(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/salaries/:id
func (h *SalaryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Summary godoc
// @Summary      Resumen de nómina del año o del mes
// @Tags         salaries
// @Security     Bearer
// @Produce      json
// @Param        year   query  int  false  "Año (por defecto el actual)"
// @Param        month  query  int  false  "Mes 1-12"
// @Success      200    {object}  dto.SalarySummaryResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/salaries/summary [get]
func (h *SalaryHandler) Summary(c *fiber.Ctx) error {
	var q dto.SalaryQuery
	if err := bindQuery(c, &q); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Summary(c.UserContext(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Descargar nómina en XLSX
// @Tags         salaries
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        year   query  int  false  "Año"
// @Param        month  query  int  false  "Mes 1-12"
// @Success      200    {file}  binary
// @Router       /api/salaries/summary/export.xlsx [get]
func (h *SalaryHandler) Export(c *fiber.Ctx) error {
	var q dto.SalaryQuery
	if err := bindQuery(c, &q); err != nil {
		return writeError(c, err)
	}
	data, name, err := h.uc.ExportXLSX(c.UserContext(), q)
	if err != nil {
		return writeError(c, err)
	}
	return sendFile(c, data, name, mimeXLSX)
}
