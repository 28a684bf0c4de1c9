package visitors

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Visitantes-api/internal/application/dto"
	"github.com/jhoicas/Visitantes-api/internal/domain"
	"github.com/jhoicas/Visitantes-api/internal/domain/entity"
	"github.com/jhoicas/Visitantes-api/internal/domain/visit"
)

// fakeVisitorRepo store en memoria con la misma semántica de concurrencia que
// el adaptador de PostgreSQL: asignación secuencial de códigos y transición
// condicionada al estado previo (compare-and-swap).
type fakeVisitorRepo struct {
	mu   sync.Mutex
	seq  int
	byID map[string]*entity.Visitor
	// beforeCAS se ejecuta dentro de TransitionStatus antes de comparar el
	// estado; permite simular un escaneo rival entre lectura y escritura.
	beforeCAS func()
}

func newFakeVisitorRepo() *fakeVisitorRepo {
	return &fakeVisitorRepo{seq: 1000, byID: map[string]*entity.Visitor{}}
}

func (r *fakeVisitorRepo) Create(_ context.Context, v *entity.Visitor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	v.Code = fmt.Sprintf("VPMS-%d", r.seq)
	clone := *v
	r.byID[v.ID] = &clone
	return nil
}

func (r *fakeVisitorRepo) FindByCode(_ context.Context, code string) (*entity.Visitor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.byID {
		if strings.EqualFold(v.Code, code) {
			clone := *v
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeVisitorRepo) FindByID(_ context.Context, id string) (*entity.Visitor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if v, ok := r.byID[id]; ok {
		clone := *v
		return &clone, nil
	}
	return nil, nil
}

func (r *fakeVisitorRepo) ListByHost(_ context.Context, hostID string) ([]*entity.Visitor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Visitor
	for _, v := range r.byID {
		if v.HostID == hostID {
			clone := *v
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeVisitorRepo) TransitionStatus(_ context.Context, id string, from, to visit.Status, scannerID string, at time.Time) (bool, error) {
	if r.beforeCAS != nil {
		hook := r.beforeCAS
		r.beforeCAS = nil
		hook()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.byID[id]
	if !ok || v.Status != from {
		return false, nil
	}
	switch to {
	case visit.StatusCheckedIn:
		v.EntryTime, v.EntryScannedBy = &at, &scannerID
	case visit.StatusCheckedOut:
		v.ExitTime, v.ExitScannedBy = &at, &scannerID
	}
	v.Status = to
	v.UpdatedAt = at
	return true, nil
}

func registerAlice(t *testing.T, repo *fakeVisitorRepo) dto.VisitorResponse {
	t.Helper()
	uc := NewVisitorUseCase(repo, nil, nil)
	out, err := uc.Register(context.Background(), "host-H", dto.RegisterVisitorRequest{
		FullName: "Alice", Mobile: "3001234567", Email: "alice@test.com",
		Purpose: "Interview", PersonToVisit: "John Employee",
		VisitDate: "2024-01-10", TimeIn: "09:30",
	})
	require.NoError(t, err)
	return *out
}

// Escenario completo: registro -> entrada por G1 -> salida por G2 -> rechazo terminal.
func TestScan_CicloCompleto(t *testing.T) {
	repo := newFakeVisitorRepo()
	created := registerAlice(t, repo)
	require.Equal(t, "Pending", created.Status)
	require.NotEmpty(t, created.Code)
	require.Nil(t, created.EntryTime)
	require.Nil(t, created.ExitTime)

	scan := NewScanUseCase(repo)

	in, err := scan.Scan(context.Background(), created.Code, "guard-G1")
	require.NoError(t, err)
	assert.Contains(t, in.Message, "Alice")
	assert.Equal(t, "Checked-In", in.Visitor.Status)
	require.NotNil(t, in.Visitor.EntryTime)
	assert.Nil(t, in.Visitor.ExitTime)

	stored, _ := repo.FindByID(context.Background(), created.ID)
	require.NotNil(t, stored.EntryScannedBy)
	assert.Equal(t, "guard-G1", *stored.EntryScannedBy)

	out, err := scan.Scan(context.Background(), created.Code, "guard-G2")
	require.NoError(t, err)
	assert.Equal(t, "Goodbye Alice! Checked-Out.", out.Message)
	assert.Equal(t, "Checked-Out", out.Visitor.Status)
	require.NotNil(t, out.Visitor.ExitTime)

	stored, _ = repo.FindByID(context.Background(), created.ID)
	require.NotNil(t, stored.ExitScannedBy)
	assert.Equal(t, "guard-G2", *stored.ExitScannedBy)
	// El sello de entrada no se mueve al registrar la salida.
	assert.Equal(t, "guard-G1", *stored.EntryScannedBy)

	// Tercer escaneo y posteriores: siempre el mismo rechazo, sin mutación.
	for i := 0; i < 3; i++ {
		_, err = scan.Scan(context.Background(), created.Code, "guard-G1")
		assert.ErrorIs(t, err, domain.ErrAlreadyCheckedOut)
	}
	final, _ := repo.FindByID(context.Background(), created.ID)
	assert.Equal(t, visit.StatusCheckedOut, final.Status)
}

// La búsqueda del pase no distingue mayúsculas y recorta espacios.
func TestScan_CodigoInsensibleAMayusculas(t *testing.T) {
	repo := newFakeVisitorRepo()
	created := registerAlice(t, repo)
	scan := NewScanUseCase(repo)

	lower := "  " + strings.ToLower(created.Code) + " "
	out, err := scan.Scan(context.Background(), lower, "guard-G1")
	require.NoError(t, err)
	assert.Equal(t, "Checked-In", out.Visitor.Status)
}

func TestScan_CodigoInexistente(t *testing.T) {
	repo := newFakeVisitorRepo()
	registerAlice(t, repo)
	scan := NewScanUseCase(repo)

	for _, code := range []string{"VPMS-9999", "vpms-9999", "nada"} {
		_, err := scan.Scan(context.Background(), code, "guard-G1")
		assert.ErrorIs(t, err, domain.ErrVisitorNotFound, "code=%s", code)
	}
}

// Carrera simulada: un rival transiciona el pase entre la lectura y el CAS.
// Debe haber exactamente una transición Pending -> Checked-In; el perdedor
// recibe conflicto y el registro no se escribe dos veces.
func TestScan_CarreraProduceUnaSolaTransicion(t *testing.T) {
	repo := newFakeVisitorRepo()
	created := registerAlice(t, repo)
	scan := NewScanUseCase(repo)

	repo.beforeCAS = func() {
		ok, err := repo.TransitionStatus(context.Background(), created.ID,
			visit.StatusPending, visit.StatusCheckedIn, "guard-rival", time.Now().UTC())
		require.NoError(t, err)
		require.True(t, ok, "el rival debe ganar la transición")
	}

	_, err := scan.Scan(context.Background(), created.Code, "guard-G1")
	assert.ErrorIs(t, err, domain.ErrScanConflict)

	stored, _ := repo.FindByID(context.Background(), created.ID)
	assert.Equal(t, visit.StatusCheckedIn, stored.Status, "no debe haber doble transición")
	require.NotNil(t, stored.EntryScannedBy)
	assert.Equal(t, "guard-rival", *stored.EntryScannedBy, "el sello de entrada es del ganador")
}
