package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Visitantes-api/internal/domain/entity"
	"github.com/jhoicas/Visitantes-api/internal/domain/visit"
)

// VisitorRepository define el puerto de persistencia para Visitor.
//
// El store es el único punto de coordinación entre peticiones concurrentes:
// la asignación del código y la transición de estado deben ser atómicas aquí.
type VisitorRepository interface {
	// Create persiste el registro y asigna el código de pase desde el
	// contador atómico del store. A la vuelta, v.Code queda poblado.
	Create(ctx context.Context, v *entity.Visitor) error

	// FindByCode busca por código de pase, insensible a mayúsculas.
	// Devuelve nil, nil si no existe.
	FindByCode(ctx context.Context, code string) (*entity.Visitor, error)

	FindByID(ctx context.Context, id string) (*entity.Visitor, error)

	// ListByHost devuelve los registros del anfitrión, más recientes primero.
	ListByHost(ctx context.Context, hostID string) ([]*entity.Visitor, error)

	// TransitionStatus ejecuta el compare-and-swap de la transición:
	// escribe `to` junto con el sello (scannerID, at) de entrada o salida
	// únicamente si el estado actual sigue siendo `from`. Devuelve false si
	// otro escaneo ganó la carrera y no se modificó nada.
	TransitionStatus(ctx context.Context, id string, from, to visit.Status, scannerID string, at time.Time) (bool, error)
}
