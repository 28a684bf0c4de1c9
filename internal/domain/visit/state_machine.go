// Package visit define el ciclo de vida de un pase de visitante como una
// máquina de estados explícita:
//
//	Pending -> Checked-In -> Checked-Out
//
// El único evento es el escaneo del pase; no existen retrocesos ni salidas
// del estado terminal. Toda la lógica condicional del endpoint de escaneo
// se reduce a consultar esta tabla.
package visit

import (
	"fmt"

	"github.com/jhoicas/Visitantes-api/internal/domain"
)

// Status estado del ciclo de vida de un pase.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusCheckedIn  Status = "Checked-In"
	StatusCheckedOut Status = "Checked-Out"
)

// transitions tabla exhaustiva de avances por escaneo.
// La ausencia de entrada para Checked-Out es deliberada: es terminal.
var transitions = map[Status]Status{
	StatusPending:   StatusCheckedIn,
	StatusCheckedIn: StatusCheckedOut,
}

// Valid indica si el estado pertenece al ciclo de vida.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusCheckedIn, StatusCheckedOut:
		return true
	}
	return false
}

// Terminal indica si ya no hay transición posible.
func (s Status) Terminal() bool { return s == StatusCheckedOut }

// Next devuelve el estado al que avanza el pase al ser escaneado.
// Sobre Checked-Out siempre responde ErrAlreadyCheckedOut, sin importar
// cuántas veces se reintente: el rechazo es idempotente.
func Next(s Status) (Status, error) {
	if !s.Valid() {
		return "", fmt.Errorf("estado de pase desconocido %q: %w", s, domain.ErrInvalidInput)
	}
	next, ok := transitions[s]
	if !ok {
		return "", domain.ErrAlreadyCheckedOut
	}
	return next, nil
}

// ScanMessage construye el mensaje que ve el guardia tras una transición.
// Los textos son copy del producto y se muestran tal cual en el kiosco.
func ScanMessage(reached Status, fullName string) string {
	switch reached {
	case StatusCheckedIn:
		return fmt.Sprintf("Welcome %s! Checked-In.", fullName)
	case StatusCheckedOut:
		return fmt.Sprintf("Goodbye %s! Checked-Out.", fullName)
	}
	return ""
}
