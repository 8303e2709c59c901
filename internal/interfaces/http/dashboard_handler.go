package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/khohang-api/internal/application/report"
)

// DashboardHandler maneja los endpoints del panel.
type DashboardHandler struct {
	uc *report.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *report.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetYear godoc
// @Summary      Entradas, salidas e ingresos por mes
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        year  query  int  false  "Año (por defecto el actual)"
// @Success      200   {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) GetYear(c *fiber.Ctx) error {
	out, err := h.uc.GetYear(c.UserContext(), c.QueryInt("year", 0))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
