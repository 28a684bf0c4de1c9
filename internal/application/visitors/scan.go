package visitors

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/Visitantes-api/internal/application/dto"
	"github.com/jhoicas/Visitantes-api/internal/domain"
	"github.com/jhoicas/Visitantes-api/internal/domain/repository"
	"github.com/jhoicas/Visitantes-api/internal/domain/visit"
)

// ScanUseCase avanza el ciclo de vida de un pase al ser escaneado en portería.
type ScanUseCase struct {
	visitorRepo repository.VisitorRepository
}

// NewScanUseCase construye el caso de uso de escaneo.
func NewScanUseCase(visitorRepo repository.VisitorRepository) *ScanUseCase {
	return &ScanUseCase{visitorRepo: visitorRepo}
}

// Scan busca el pase (insensible a mayúsculas, recortando espacios), consulta
// la máquina de estados y ejecuta la transición como compare-and-swap sobre el
// estado leído. Dos escaneos concurrentes sobre un mismo pase producen
// exactamente una transición: el perdedor recibe ErrScanConflict sin que el
// registro se toque dos veces.
//
// Errores: ErrVisitorNotFound si el código no existe, ErrAlreadyCheckedOut si
// el pase ya está en estado terminal (rechazo idempotente), ErrScanConflict si
// se perdió la carrera.
func (uc *ScanUseCase) Scan(ctx context.Context, rawCode, scannerID string) (*dto.ScanResponse, error) {
	code := strings.TrimSpace(rawCode)
	v, err := uc.visitorRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrVisitorNotFound
	}

	next, err := visit.Next(v.Status)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	updated, err := uc.visitorRepo.TransitionStatus(ctx, v.ID, v.Status, next, scannerID, now)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, domain.ErrScanConflict
	}

	// Reflejar la transición en la copia local para la respuesta.
	switch next {
	case visit.StatusCheckedIn:
		v.EntryTime = &now
		v.EntryScannedBy = &scannerID
	case visit.StatusCheckedOut:
		v.ExitTime = &now
		v.ExitScannedBy = &scannerID
	}
	v.Status = next
	v.UpdatedAt = now

	return &dto.ScanResponse{
		Message: visit.ScanMessage(next, v.FullName),
		Visitor: toVisitorResponse(v),
	}, nil
}
