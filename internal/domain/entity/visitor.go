package entity

import (
	"time"

	"github.com/jhoicas/Visitantes-api/internal/domain/visit"
)

// Visitor es el registro de una visita esperada/realizada.
//
// Es append-only: se crea en Pending y solo muta dos veces (entrada y salida),
// siempre hacia adelante. Nunca se borra; los dashboards se derivan de él.
type Visitor struct {
	ID   string
	Code string // pase legible y único, formato VPMS-<n>; inmutable una vez asignado

	FullName      string
	Mobile        string
	Email         string
	Purpose       string
	PersonToVisit string

	VisitDate time.Time // fecha agendada de la visita
	TimeIn    string    // hora de llegada solicitada al registrar, tal cual la escribió el anfitrión

	// Sello de entrada: se escriben juntos, una sola vez, en Pending -> Checked-In.
	EntryTime      *time.Time
	EntryScannedBy *string

	// Sello de salida: se escriben juntos, una sola vez, en Checked-In -> Checked-Out.
	ExitTime      *time.Time
	ExitScannedBy *string

	Status visit.Status
	HostID string // anfitrión que registró la visita; inmutable

	CreatedAt time.Time
	UpdatedAt time.Time
}
