package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Visitantes-api/internal/domain/entity"
	"github.com/jhoicas/Visitantes-api/internal/domain/repository"
	"github.com/jhoicas/Visitantes-api/internal/domain/visit"
)

var _ repository.VisitorRepository = (*VisitorRepo)(nil)

const visitorColumns = `
	id, code, full_name, mobile, email, purpose, person_to_visit,
	visit_date, time_in, entry_time, exit_time, status,
	host_id, entry_scanned_by, exit_scanned_by, created_at, updated_at`

// VisitorRepo implementación del puerto VisitorRepository sobre PostgreSQL.
type VisitorRepo struct {
	pool *pgxpool.Pool
}

// NewVisitorRepository construye el adaptador de persistencia para visitas.
func NewVisitorRepository(pool *pgxpool.Pool) *VisitorRepo {
	return &VisitorRepo{pool: pool}
}

// Create inserta el registro tomando el código de la secuencia en la misma
// sentencia: la asignación del número es atómica en el store.
func (r *VisitorRepo) Create(ctx context.Context, v *entity.Visitor) error {
	query := `
		INSERT INTO visitors (
			id, code, full_name, mobile, email, purpose, person_to_visit,
			visit_date, time_in, status, host_id, created_at, updated_at
		)
		VALUES ($1, 'VPMS-' || nextval('visitor_code_seq'), $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING code`
	err := r.pool.QueryRow(ctx, query,
		v.ID, v.FullName, v.Mobile, v.Email, v.Purpose, v.PersonToVisit,
		v.VisitDate, v.TimeIn, string(v.Status), v.HostID, v.CreatedAt, v.UpdatedAt,
	).Scan(&v.Code)
	if err != nil {
		return fmt.Errorf("insert visitor: %w", err)
	}
	return nil
}

// FindByCode busca por código de pase, insensible a mayúsculas.
func (r *VisitorRepo) FindByCode(ctx context.Context, code string) (*entity.Visitor, error) {
	query := `SELECT ` + visitorColumns + ` FROM visitors WHERE upper(code) = upper($1)`
	return r.scanOne(ctx, query, code)
}

// FindByID obtiene un registro por ID. Devuelve nil, nil si no existe.
func (r *VisitorRepo) FindByID(ctx context.Context, id string) (*entity.Visitor, error) {
	query := `SELECT ` + visitorColumns + ` FROM visitors WHERE id = $1`
	return r.scanOne(ctx, query, id)
}

// ListByHost lista las visitas del anfitrión, más recientes primero.
func (r *VisitorRepo) ListByHost(ctx context.Context, hostID string) ([]*entity.Visitor, error) {
	query := `SELECT ` + visitorColumns + ` FROM visitors WHERE host_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, hostID)
	if err != nil {
		return nil, fmt.Errorf("list visitors: %w", err)
	}
	defer rows.Close()
	var list []*entity.Visitor
	for rows.Next() {
		v, err := scanVisitor(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

// TransitionStatus ejecuta la transición como un único UPDATE condicionado al
// estado previo. Si otro escaneo ya movió el registro, el WHERE no matchea,
// RowsAffected es cero y no se escribe nada: ahí vive la garantía de que dos
// escaneos concurrentes no pueden producir dos transiciones.
func (r *VisitorRepo) TransitionStatus(ctx context.Context, id string, from, to visit.Status, scannerID string, at time.Time) (bool, error) {
	var query string
	switch to {
	case visit.StatusCheckedIn:
		query = `
			UPDATE visitors
			SET status = $3, entry_time = $4, entry_scanned_by = $5, updated_at = $4
			WHERE id = $1 AND status = $2`
	case visit.StatusCheckedOut:
		query = `
			UPDATE visitors
			SET status = $3, exit_time = $4, exit_scanned_by = $5, updated_at = $4
			WHERE id = $1 AND status = $2`
	default:
		return false, fmt.Errorf("transición a estado no permitido: %q", to)
	}
	tag, err := r.pool.Exec(ctx, query, id, string(from), string(to), at, scannerID)
	if err != nil {
		return false, fmt.Errorf("transition visitor: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *VisitorRepo) scanOne(ctx context.Context, query string, arg any) (*entity.Visitor, error) {
	row := r.pool.QueryRow(ctx, query, arg)
	v, err := scanVisitorRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get visitor: %w", err)
	}
	return v, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVisitorRow(row rowScanner) (*entity.Visitor, error) {
	var v entity.Visitor
	var status string
	err := row.Scan(
		&v.ID, &v.Code, &v.FullName, &v.Mobile, &v.Email, &v.Purpose, &v.PersonToVisit,
		&v.VisitDate, &v.TimeIn, &v.EntryTime, &v.ExitTime, &status,
		&v.HostID, &v.EntryScannedBy, &v.ExitScannedBy, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	v.Status = visit.Status(status)
	return &v, nil
}

func scanVisitor(rows pgx.Rows) (*entity.Visitor, error) {
	v, err := scanVisitorRow(rows)
	if err != nil {
		return nil, fmt.Errorf("scan visitor: %w", err)
	}
	return v, nil
}
