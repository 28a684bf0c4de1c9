package visit

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Visitantes-api/internal/domain"
)

// La tabla de transiciones debe cubrir exactamente el ciclo
// Pending -> Checked-In -> Checked-Out, sin retrocesos.
func TestNext_AvanceCompleto(t *testing.T) {
	next, err := Next(StatusPending)
	require.NoError(t, err)
	assert.Equal(t, StatusCheckedIn, next, "el primer escaneo debe registrar la entrada")

	next, err = Next(next)
	require.NoError(t, err)
	assert.Equal(t, StatusCheckedOut, next, "el segundo escaneo debe registrar la salida")
}

// Checked-Out es terminal: cualquier número de escaneos posteriores falla
// siempre con el mismo error y nunca produce un nuevo estado.
func TestNext_TerminalEsIdempotente(t *testing.T) {
	for i := 0; i < 5; i++ {
		_, err := Next(StatusCheckedOut)
		assert.ErrorIs(t, err, domain.ErrAlreadyCheckedOut, "reintento %d", i)
	}
}

// Un estado fuera del ciclo (dato corrupto) no debe avanzar a nada.
func TestNext_EstadoDesconocido(t *testing.T) {
	_, err := Next(Status("Archived"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.False(t, errors.Is(err, domain.ErrAlreadyCheckedOut))
}

func TestValidYTerminal(t *testing.T) {
	cases := []struct {
		status   Status
		valid    bool
		terminal bool
	}{
		{StatusPending, true, false},
		{StatusCheckedIn, true, false},
		{StatusCheckedOut, true, true},
		{Status(""), false, false},
		{Status("pending"), false, false}, // el estado persiste con mayúscula exacta
	}
	for _, c := range cases {
		assert.Equal(t, c.valid, c.status.Valid(), "Valid(%q)", c.status)
		assert.Equal(t, c.terminal, c.status.Terminal(), "Terminal(%q)", c.status)
	}
}

func TestScanMessage(t *testing.T) {
	assert.Equal(t, "Welcome Alice! Checked-In.", ScanMessage(StatusCheckedIn, "Alice"))
	assert.Equal(t, "Goodbye Alice! Checked-Out.", ScanMessage(StatusCheckedOut, "Alice"))
	assert.Empty(t, ScanMessage(StatusPending, "Alice"), "no existe mensaje para un pase sin transición")
}
