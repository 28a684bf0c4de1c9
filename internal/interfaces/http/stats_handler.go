package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Visitantes-api/internal/application/dto"
	"github.com/jhoicas/Visitantes-api/internal/application/stats"
	"github.com/jhoicas/Visitantes-api/internal/domain"
)

// StatsHandler maneja los dashboards por rol.
type StatsHandler struct {
	uc *stats.StatsUseCase
}

// NewStatsHandler construye el handler de agregados.
func NewStatsHandler(uc *stats.StatsUseCase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

// AdminLogs godoc
// @Summary      Totales globales y últimos 50 registros (solo Admin)
// @Tags         stats
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.AdminLogsResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/visitors/admin-logs [get]
func (h *StatsHandler) AdminLogs(c *fiber.Ctx) error {
	out, err := h.uc.AdminLogs(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// SecurityStats godoc
// @Summary      Acciones del guardia autenticado en el día consultado
// @Tags         stats
// @Produce      json
// @Security     BearerAuth
// @Param        date  query  string  false  "YYYY-MM-DD (por defecto hoy)"
// @Success      200  {object}  dto.SecurityStatsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/visitors/security-stats [get]
func (h *StatsHandler) SecurityStats(c *fiber.Ctx) error {
	out, err := h.uc.SecurityStats(c.Context(), GetUserID(c), c.Query("date"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return internalError(c, err)
	}
	return c.JSON(out)
}

// EmployeeStats godoc
// @Summary      Agenda del anfitrión autenticado en el día consultado
// @Tags         stats
// @Produce      json
// @Security     BearerAuth
// @Param        date  query  string  false  "YYYY-MM-DD (por defecto hoy)"
// @Success      200  {object}  dto.EmployeeStatsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/visitors/employee-stats [get]
func (h *StatsHandler) EmployeeStats(c *fiber.Ctx) error {
	out, err := h.uc.EmployeeStats(c.Context(), GetUserID(c), c.Query("date"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return internalError(c, err)
	}
	return c.JSON(out)
}
