package dto

import "time"

// RegisterVisitorRequest entrada para registrar una visita esperada.
// Todos los campos son obligatorios; visit_date va en formato YYYY-MM-DD
// y time_in en formato HH:MM (24h).
type RegisterVisitorRequest struct {
	FullName      string `json:"full_name" validate:"required,min=1,max=200"`
	Mobile        string `json:"mobile" validate:"required,min=5,max=30"`
	Email         string `json:"email" validate:"required,email"`
	Purpose       string `json:"purpose" validate:"required,max=500"`
	PersonToVisit string `json:"person_to_visit" validate:"required,max=200"`
	VisitDate     string `json:"visit_date" validate:"required"`
	TimeIn        string `json:"time_in" validate:"required"`
}

// VisitorResponse salida de un registro de visita. Los nombres de actores
// resueltos (anfitrión, guardias) van vacíos si aún no aplican.
type VisitorResponse struct {
	ID            string     `json:"id"`
	Code          string     `json:"code"`
	FullName      string     `json:"full_name"`
	Mobile        string     `json:"mobile"`
	Email         string     `json:"email"`
	Purpose       string     `json:"purpose"`
	PersonToVisit string     `json:"person_to_visit"`
	VisitDate     string     `json:"visit_date"` // YYYY-MM-DD
	TimeIn        string     `json:"time_in"`
	EntryTime     *time.Time `json:"entry_time,omitempty"`
	ExitTime      *time.Time `json:"exit_time,omitempty"`
	Status        string     `json:"status"`
	HostID        string     `json:"host_id"`
	HostName      string     `json:"host_name,omitempty"`
	EntryGuard    string     `json:"entry_guard,omitempty"`
	ExitGuard     string     `json:"exit_guard,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// ScanResponse resultado de escanear un pase: mensaje para el kiosco y
// el registro ya transicionado.
type ScanResponse struct {
	Message string          `json:"message"`
	Visitor VisitorResponse `json:"visitor"`
}
