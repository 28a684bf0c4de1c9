package visitors

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Visitantes-api/internal/application/dto"
	"github.com/jhoicas/Visitantes-api/internal/domain"
)

func validRequest() dto.RegisterVisitorRequest {
	return dto.RegisterVisitorRequest{
		FullName: "Alice", Mobile: "3001234567", Email: "alice@test.com",
		Purpose: "Interview", PersonToVisit: "John Employee",
		VisitDate: "2024-01-10", TimeIn: "09:30",
	}
}

func TestRegister_AsignaCodigoYEstadoInicial(t *testing.T) {
	repo := newFakeVisitorRepo()
	uc := NewVisitorUseCase(repo, nil, nil)

	out, err := uc.Register(context.Background(), "host-H", validRequest())
	require.NoError(t, err)
	assert.Equal(t, "VPMS-1001", out.Code)
	assert.Equal(t, "Pending", out.Status)
	assert.Equal(t, "host-H", out.HostID)
	assert.Equal(t, "2024-01-10", out.VisitDate)
	assert.Nil(t, out.EntryTime)
	assert.Nil(t, out.ExitTime)
}

// Registros sucesivos obtienen códigos consecutivos distintos; la misma
// persona puede registrarse varias veces sin deduplicación.
func TestRegister_CodigosUnicosSinDeduplicar(t *testing.T) {
	repo := newFakeVisitorRepo()
	uc := NewVisitorUseCase(repo, nil, nil)

	first, err := uc.Register(context.Background(), "host-H", validRequest())
	require.NoError(t, err)
	second, err := uc.Register(context.Background(), "host-H", validRequest())
	require.NoError(t, err)

	assert.NotEqual(t, first.Code, second.Code)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestRegister_CamposRequeridos(t *testing.T) {
	uc := NewVisitorUseCase(newFakeVisitorRepo(), nil, nil)

	mutations := []func(*dto.RegisterVisitorRequest){
		func(r *dto.RegisterVisitorRequest) { r.FullName = "" },
		func(r *dto.RegisterVisitorRequest) { r.Mobile = "   " },
		func(r *dto.RegisterVisitorRequest) { r.Email = "" },
		func(r *dto.RegisterVisitorRequest) { r.Purpose = "" },
		func(r *dto.RegisterVisitorRequest) { r.PersonToVisit = "" },
		func(r *dto.RegisterVisitorRequest) { r.VisitDate = "" },
		func(r *dto.RegisterVisitorRequest) { r.TimeIn = "" },
	}
	for i, mutate := range mutations {
		in := validRequest()
		mutate(&in)
		_, err := uc.Register(context.Background(), "host-H", in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "caso %d", i)
	}
}

func TestRegister_FechaYHoraInvalidas(t *testing.T) {
	uc := NewVisitorUseCase(newFakeVisitorRepo(), nil, nil)

	in := validRequest()
	in.VisitDate = "10/01/2024"
	_, err := uc.Register(context.Background(), "host-H", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = validRequest()
	in.TimeIn = "9:30 AM"
	_, err = uc.Register(context.Background(), "host-H", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ListMine solo devuelve registros del anfitrión que consulta.
func TestListMine_SoloDelAnfitrion(t *testing.T) {
	repo := newFakeVisitorRepo()
	uc := NewVisitorUseCase(repo, nil, nil)

	_, err := uc.Register(context.Background(), "host-A", validRequest())
	require.NoError(t, err)
	_, err = uc.Register(context.Background(), "host-B", validRequest())
	require.NoError(t, err)

	mine, err := uc.ListMine(context.Background(), "host-A")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "host-A", mine[0].HostID)

	none, err := uc.ListMine(context.Background(), "host-C")
	require.NoError(t, err)
	assert.Empty(t, none)
}
