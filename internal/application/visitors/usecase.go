package visitors

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Visitantes-api/internal/application/dto"
	"github.com/jhoicas/Visitantes-api/internal/domain"
	"github.com/jhoicas/Visitantes-api/internal/domain/entity"
	"github.com/jhoicas/Visitantes-api/internal/domain/repository"
	"github.com/jhoicas/Visitantes-api/internal/domain/visit"
)

const (
	visitDateLayout = "2006-01-02"
	timeInLayout    = "15:04"
)

// VisitorUseCase registro y consulta de visitas del anfitrión autenticado.
type VisitorUseCase struct {
	visitorRepo repository.VisitorRepository
	userRepo    repository.UserRepository
	passPDF     PassPDFGenerator
}

// NewVisitorUseCase construye el caso de uso.
func NewVisitorUseCase(visitorRepo repository.VisitorRepository, userRepo repository.UserRepository, passPDF PassPDFGenerator) *VisitorUseCase {
	return &VisitorUseCase{visitorRepo: visitorRepo, userRepo: userRepo, passPDF: passPDF}
}

// Register crea el registro de visita en estado Pending con el caller como
// anfitrión. El código de pase lo asigna el store de forma atómica; no se
// deduplica por identidad del visitante: la misma persona puede registrarse
// varias veces con códigos distintos.
func (uc *VisitorUseCase) Register(ctx context.Context, hostID string, in dto.RegisterVisitorRequest) (*dto.VisitorResponse, error) {
	if err := validateRegister(in); err != nil {
		return nil, err
	}
	visitDate, err := time.Parse(visitDateLayout, strings.TrimSpace(in.VisitDate))
	if err != nil {
		return nil, fmt.Errorf("visit_date %q no es una fecha YYYY-MM-DD: %w", in.VisitDate, domain.ErrInvalidInput)
	}
	timeIn := strings.TrimSpace(in.TimeIn)
	if _, err := time.Parse(timeInLayout, timeIn); err != nil {
		return nil, fmt.Errorf("time_in %q no es una hora HH:MM: %w", in.TimeIn, domain.ErrInvalidInput)
	}

	now := time.Now().UTC()
	v := &entity.Visitor{
		ID:            uuid.New().String(),
		FullName:      strings.TrimSpace(in.FullName),
		Mobile:        strings.TrimSpace(in.Mobile),
		Email:         strings.TrimSpace(in.Email),
		Purpose:       strings.TrimSpace(in.Purpose),
		PersonToVisit: strings.TrimSpace(in.PersonToVisit),
		VisitDate:     visitDate,
		TimeIn:        timeIn,
		Status:        visit.StatusPending,
		HostID:        hostID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.visitorRepo.Create(ctx, v); err != nil {
		return nil, err
	}
	resp := toVisitorResponse(v)
	return &resp, nil
}

// ListMine devuelve los registros del anfitrión, más recientes primero.
// Nunca expone registros de otros anfitriones.
func (uc *VisitorUseCase) ListMine(ctx context.Context, hostID string) ([]dto.VisitorResponse, error) {
	list, err := uc.visitorRepo.ListByHost(ctx, hostID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.VisitorResponse, 0, len(list))
	for _, v := range list {
		out = append(out, toVisitorResponse(v))
	}
	return out, nil
}

// PassPDF genera el pase imprimible de una visita del anfitrión.
// Solo el anfitrión del registro (o un Admin) puede descargarlo.
func (uc *VisitorUseCase) PassPDF(ctx context.Context, callerID, callerRole, visitorID string) ([]byte, error) {
	v, err := uc.visitorRepo.FindByID(ctx, visitorID)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrVisitorNotFound
	}
	if v.HostID != callerID && callerRole != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	hostName := ""
	if host, err := uc.userRepo.FindByID(ctx, v.HostID); err == nil && host != nil {
		hostName = host.Name
	}
	return uc.passPDF.GeneratePassPDF(ctx, v, hostName)
}

func validateRegister(in dto.RegisterVisitorRequest) error {
	required := map[string]string{
		"full_name":       in.FullName,
		"mobile":          in.Mobile,
		"email":           in.Email,
		"purpose":         in.Purpose,
		"person_to_visit": in.PersonToVisit,
		"visit_date":      in.VisitDate,
		"time_in":         in.TimeIn,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("el campo %s es requerido: %w", field, domain.ErrInvalidInput)
		}
	}
	return nil
}

// toVisitorResponse mapea la entidad al DTO de salida (sin nombres resueltos;
// los dashboards usan los logs del StatsRepository para eso).
func toVisitorResponse(v *entity.Visitor) dto.VisitorResponse {
	return dto.VisitorResponse{
		ID:            v.ID,
		Code:          v.Code,
		FullName:      v.FullName,
		Mobile:        v.Mobile,
		Email:         v.Email,
		Purpose:       v.Purpose,
		PersonToVisit: v.PersonToVisit,
		VisitDate:     v.VisitDate.Format(visitDateLayout),
		TimeIn:        v.TimeIn,
		EntryTime:     v.EntryTime,
		ExitTime:      v.ExitTime,
		Status:        string(v.Status),
		HostID:        v.HostID,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}
