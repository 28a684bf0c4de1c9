package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Visitantes-api/internal/domain/repository"
	"github.com/jhoicas/Visitantes-api/internal/domain/visit"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// logColumns columnas del registro más los nombres de actores resueltos
// con LEFT JOIN (cadena vacía cuando el escaneo aún no ocurre).
const logColumns = `
	v.id, v.code, v.full_name, v.mobile, v.email, v.purpose, v.person_to_visit,
	v.visit_date, v.time_in, v.entry_time, v.exit_time, v.status,
	v.host_id, v.entry_scanned_by, v.exit_scanned_by, v.created_at, v.updated_at,
	COALESCE(h.name, ''), COALESCE(eg.name, ''), COALESCE(xg.name, '')`

const logJoins = `
	FROM visitors v
	LEFT JOIN users h  ON h.id  = v.host_id
	LEFT JOIN users eg ON eg.id = v.entry_scanned_by
	LEFT JOIN users xg ON xg.id = v.exit_scanned_by`

// StatsRepo consultas de solo lectura para los dashboards por rol.
type StatsRepo struct {
	pool *pgxpool.Pool
}

// NewStatsRepository construye el adaptador de agregados.
func NewStatsRepository(pool *pgxpool.Pool) *StatsRepo {
	return &StatsRepo{pool: pool}
}

// CountAll total histórico de registros de visita.
func (r *StatsRepo) CountAll(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM visitors`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("stats.CountAll: %w", err)
	}
	return n, nil
}

// CountCreatedSince registros creados desde el instante dado.
func (r *StatsRepo) CountCreatedSince(ctx context.Context, since time.Time) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM visitors WHERE created_at >= $1`, since).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("stats.CountCreatedSince: %w", err)
	}
	return n, nil
}

// CountByStatus registros actualmente en el estado dado.
func (r *StatsRepo) CountByStatus(ctx context.Context, status visit.Status) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM visitors WHERE status = $1`, string(status)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("stats.CountByStatus: %w", err)
	}
	return n, nil
}

// RecentLogs últimos registros por fecha de creación descendente, con nombres resueltos.
func (r *StatsRepo) RecentLogs(ctx context.Context, limit int) ([]repository.VisitorLog, error) {
	query := `SELECT` + logColumns + logJoins + `
	ORDER BY v.created_at DESC
	LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("stats.RecentLogs: %w", err)
	}
	defer rows.Close()
	return collectLogs(rows)
}

// GuardActions cuenta entradas y salidas del guardia en la ventana por
// separado (un mismo registro puede sumar en ambos contadores) y devuelve los
// registros donde participó, más recientes primero.
func (r *StatsRepo) GuardActions(ctx context.Context, guardID string, start, end time.Time) (int, int, []repository.VisitorLog, error) {
	const countQuery = `
	SELECT
	    COUNT(*) FILTER (WHERE entry_scanned_by = $1 AND entry_time BETWEEN $2 AND $3) AS entries,
	    COUNT(*) FILTER (WHERE exit_scanned_by  = $1 AND exit_time  BETWEEN $2 AND $3) AS exits
	FROM visitors`
	var entries, exits int
	if err := r.pool.QueryRow(ctx, countQuery, guardID, start, end).Scan(&entries, &exits); err != nil {
		return 0, 0, nil, fmt.Errorf("stats.GuardActions count: %w", err)
	}

	query := `SELECT` + logColumns + logJoins + `
	WHERE (v.entry_scanned_by = $1 AND v.entry_time BETWEEN $2 AND $3)
	   OR (v.exit_scanned_by  = $1 AND v.exit_time  BETWEEN $2 AND $3)
	ORDER BY v.updated_at DESC`
	rows, err := r.pool.Query(ctx, query, guardID, start, end)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("stats.GuardActions: %w", err)
	}
	defer rows.Close()
	logs, err := collectLogs(rows)
	if err != nil {
		return 0, 0, nil, err
	}
	return entries, exits, logs, nil
}

// HostSchedule visitas del anfitrión con fecha agendada dentro de la ventana,
// ordenadas por hora agendada ascendente.
func (r *StatsRepo) HostSchedule(ctx context.Context, hostID string, start, end time.Time) ([]repository.VisitorLog, error) {
	query := `SELECT` + logColumns + logJoins + `
	WHERE v.host_id = $1
	  AND v.visit_date BETWEEN $2::date AND $3::date
	ORDER BY v.visit_date ASC, v.time_in ASC`
	rows, err := r.pool.Query(ctx, query, hostID, start, end)
	if err != nil {
		return nil, fmt.Errorf("stats.HostSchedule: %w", err)
	}
	defer rows.Close()
	return collectLogs(rows)
}

func collectLogs(rows pgx.Rows) ([]repository.VisitorLog, error) {
	var logs []repository.VisitorLog
	for rows.Next() {
		var l repository.VisitorLog
		var status string
		if err := rows.Scan(
			&l.ID, &l.Code, &l.FullName, &l.Mobile, &l.Email, &l.Purpose, &l.PersonToVisit,
			&l.VisitDate, &l.TimeIn, &l.EntryTime, &l.ExitTime, &status,
			&l.HostID, &l.EntryScannedBy, &l.ExitScannedBy, &l.CreatedAt, &l.UpdatedAt,
			&l.HostName, &l.EntryGuardName, &l.ExitGuardName,
		); err != nil {
			return nil, fmt.Errorf("scan visitor log: %w", err)
		}
		l.Status = visit.Status(status)
		logs = append(logs, l)
	}
	return logs, rows.Err()
}
