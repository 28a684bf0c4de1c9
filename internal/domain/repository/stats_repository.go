package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Visitantes-api/internal/domain/entity"
	"github.com/jhoicas/Visitantes-api/internal/domain/visit"
)

// VisitorLog es un registro de visita con los nombres de los actores resueltos
// (anfitrión y guardias de entrada/salida). Cadena vacía si no aplica aún.
type VisitorLog struct {
	entity.Visitor
	HostName       string
	EntryGuardName string
	ExitGuardName  string
}

// StatsRepository consultas de solo lectura para los dashboards por rol.
// La ausencia de filas nunca es error: contadores en cero y lista vacía.
type StatsRepository interface {
	// CountAll total histórico de registros.
	CountAll(ctx context.Context) (int, error)
	// CountCreatedSince registros con created_at >= since.
	CountCreatedSince(ctx context.Context, since time.Time) (int, error)
	// CountByStatus registros actualmente en el estado dado.
	CountByStatus(ctx context.Context, status visit.Status) (int, error)
	// RecentLogs últimos `limit` registros por fecha de creación descendente.
	RecentLogs(ctx context.Context, limit int) ([]VisitorLog, error)

	// GuardActions acciones del guardia en la ventana [start, end]: cuenta
	// entradas y salidas por separado (un registro donde el mismo guardia
	// hizo ambas cuenta una vez en cada contador) y devuelve los registros
	// involucrados, más recientes primero.
	GuardActions(ctx context.Context, guardID string, start, end time.Time) (entries, exits int, logs []VisitorLog, err error)

	// HostSchedule visitas agendadas por el anfitrión con visit_date dentro
	// de la ventana, ordenadas por hora agendada ascendente.
	HostSchedule(ctx context.Context, hostID string, start, end time.Time) ([]VisitorLog, error)
}
