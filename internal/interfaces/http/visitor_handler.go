package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Visitantes-api/internal/application/dto"
	"github.com/jhoicas/Visitantes-api/internal/application/visitors"
	"github.com/jhoicas/Visitantes-api/internal/domain"
)

// VisitorHandler maneja registro, consulta y escaneo de visitas.
type VisitorHandler struct {
	uc   *visitors.VisitorUseCase
	scan *visitors.ScanUseCase
}

// NewVisitorHandler construye el handler de visitas.
func NewVisitorHandler(uc *visitors.VisitorUseCase, scan *visitors.ScanUseCase) *VisitorHandler {
	return &VisitorHandler{uc: uc, scan: scan}
}

// Register godoc
// @Summary      Registrar visita esperada
// @Tags         visitors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.RegisterVisitorRequest  true  "datos del visitante"
// @Success      201   {object}  dto.VisitorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/visitors/register [post]
func (h *VisitorHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterVisitorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Register(c.Context(), GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// MyVisitors godoc
// @Summary      Visitas registradas por el caller, más recientes primero
// @Tags         visitors
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.VisitorResponse
// @Router       /api/visitors/my-visitors [get]
func (h *VisitorHandler) MyVisitors(c *fiber.Ctx) error {
	out, err := h.uc.ListMine(c.Context(), GetUserID(c))
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Scan godoc
// @Summary      Escanear un pase (avanza el ciclo de vida)
// @Tags         visitors
// @Produce      json
// @Security     BearerAuth
// @Param        code  path  string  true  "código del pase"
// @Success      200   {object}  dto.ScanResponse
// @Failure      400   {object}  dto.ErrorResponse  "pase ya finalizado"
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "escaneo concurrente"
// @Router       /api/visitors/scan/{code} [put]
func (h *VisitorHandler) Scan(c *fiber.Ctx) error {
	code := strings.TrimSpace(c.Params("code"))
	out, err := h.scan.Scan(c.Context(), code, GetUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrVisitorNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Visitor " + code + " not found."})
		case errors.Is(err, domain.ErrAlreadyCheckedOut):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "ALREADY_CHECKED_OUT", Message: "Already checked out."})
		case errors.Is(err, domain.ErrScanConflict):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SCAN_CONFLICT", Message: "el pase fue escaneado por otro guardia, reintente"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		default:
			return internalError(c, err)
		}
	}
	return c.JSON(out)
}

// PassPDF godoc
// @Summary      Descargar el pase imprimible (PDF con QR)
// @Tags         visitors
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id  path  string  true  "id del registro de visita"
// @Success      200  {file}  binary
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/visitors/{id}/pass.pdf [get]
func (h *VisitorHandler) PassPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.PassPDF(c.Context(), GetUserID(c), GetRole(c), c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrVisitorNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "visita no encontrada"})
		case errors.Is(err, domain.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo el anfitrión puede descargar este pase"})
		default:
			return internalError(c, err)
		}
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="visitor-pass.pdf"`)
	return c.Send(pdfBytes)
}
