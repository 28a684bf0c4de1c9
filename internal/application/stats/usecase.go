// Package stats contiene los casos de uso de los dashboards por rol.
//
// Cada rol mira el día por un campo distinto, y eso es intencional:
// el admin cuenta por fecha de creación del registro, seguridad por la hora
// real de entrada/salida escaneada y el empleado por la fecha agendada de la
// visita. No se unifican.
package stats

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Visitantes-api/internal/application/dto"
	"github.com/jhoicas/Visitantes-api/internal/domain"
	"github.com/jhoicas/Visitantes-api/internal/domain/repository"
	"github.com/jhoicas/Visitantes-api/internal/domain/visit"
)

const adminRecentLogs = 50 // registros recientes en el dashboard de admin

// StatsUseCase proyecciones read-only sobre los registros de visita.
type StatsUseCase struct {
	statsRepo repository.StatsRepository
}

// NewStatsUseCase construye el caso de uso.
func NewStatsUseCase(statsRepo repository.StatsRepository) *StatsUseCase {
	return &StatsUseCase{statsRepo: statsRepo}
}

// AdminLogs totales globales + los 50 registros más recientes con nombres
// resueltos. Las cuatro consultas van en paralelo.
func (uc *StatsUseCase) AdminLogs(ctx context.Context) (*dto.AdminLogsResponse, error) {
	todayStart, _ := dayWindow(time.Now())

	type countResult struct {
		n   int
		err error
	}
	type logsResult struct {
		logs []repository.VisitorLog
		err  error
	}

	totalCh := make(chan countResult, 1)
	todayCh := make(chan countResult, 1)
	activeCh := make(chan countResult, 1)
	logsCh := make(chan logsResult, 1)

	go func() {
		n, err := uc.statsRepo.CountAll(ctx)
		totalCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.statsRepo.CountCreatedSince(ctx, todayStart)
		todayCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.statsRepo.CountByStatus(ctx, visit.StatusCheckedIn)
		activeCh <- countResult{n, err}
	}()
	go func() {
		logs, err := uc.statsRepo.RecentLogs(ctx, adminRecentLogs)
		logsCh <- logsResult{logs, err}
	}()

	total := <-totalCh
	today := <-todayCh
	active := <-activeCh
	recent := <-logsCh

	if total.err != nil {
		return nil, fmt.Errorf("admin logs: total: %w", total.err)
	}
	if today.err != nil {
		return nil, fmt.Errorf("admin logs: hoy: %w", today.err)
	}
	if active.err != nil {
		return nil, fmt.Errorf("admin logs: activos: %w", active.err)
	}
	if recent.err != nil {
		return nil, fmt.Errorf("admin logs: recientes: %w", recent.err)
	}

	return &dto.AdminLogsResponse{
		TotalVisitors:  total.n,
		TodayVisitors:  today.n,
		ActiveVisitors: active.n,
		Logs:           toLogResponses(recent.logs),
	}, nil
}

// SecurityStats acciones del guardia en el día consultado (hoy por defecto).
// Entradas y salidas se cuentan por separado sobre entry_time/exit_time.
func (uc *StatsUseCase) SecurityStats(ctx context.Context, guardID, date string) (*dto.SecurityStatsResponse, error) {
	start, end, err := parseDayParam(date)
	if err != nil {
		return nil, err
	}
	entries, exits, logs, err := uc.statsRepo.GuardActions(ctx, guardID, start, end)
	if err != nil {
		return nil, fmt.Errorf("security stats: %w", err)
	}
	return &dto.SecurityStatsResponse{
		TotalActions:   entries + exits,
		EntriesAllowed: entries,
		ExitsAllowed:   exits,
		Logs:           toLogResponses(logs),
	}, nil
}

// EmployeeStats agenda del anfitrión en el día consultado, por fecha agendada
// de visita; un visitante cuenta como llegado cuando su estado ya no es Pending.
func (uc *StatsUseCase) EmployeeStats(ctx context.Context, hostID, date string) (*dto.EmployeeStatsResponse, error) {
	start, end, err := parseDayParam(date)
	if err != nil {
		return nil, err
	}
	logs, err := uc.statsRepo.HostSchedule(ctx, hostID, start, end)
	if err != nil {
		return nil, fmt.Errorf("employee stats: %w", err)
	}
	arrived := 0
	for _, l := range logs {
		if l.Status != visit.StatusPending {
			arrived++
		}
	}
	return &dto.EmployeeStatsResponse{
		TotalScheduled: len(logs),
		Arrived:        arrived,
		Pending:        len(logs) - arrived,
		Logs:           toLogResponses(logs),
	}, nil
}

// parseDayParam interpreta el parámetro opcional ?date=YYYY-MM-DD.
// Vacío significa hoy. La ventana es medianoche a medianoche en hora local
// del servidor, igual que el resto de dashboards.
func parseDayParam(date string) (start, end time.Time, err error) {
	day := time.Now()
	if s := strings.TrimSpace(date); s != "" {
		parsed, perr := time.ParseInLocation("2006-01-02", s, time.Local)
		if perr != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("date %q no es una fecha YYYY-MM-DD: %w", date, domain.ErrInvalidInput)
		}
		day = parsed
	}
	start, end = dayWindow(day)
	return start, end, nil
}

// dayWindow devuelve [00:00:00.000, 23:59:59.999…] del día en hora local.
func dayWindow(t time.Time) (start, end time.Time) {
	start = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	end = start.Add(24*time.Hour - time.Nanosecond)
	return start, end
}

func toLogResponses(logs []repository.VisitorLog) []dto.VisitorResponse {
	out := make([]dto.VisitorResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, dto.VisitorResponse{
			ID:            l.ID,
			Code:          l.Code,
			FullName:      l.FullName,
			Mobile:        l.Mobile,
			Email:         l.Email,
			Purpose:       l.Purpose,
			PersonToVisit: l.PersonToVisit,
			VisitDate:     l.VisitDate.Format("2006-01-02"),
			TimeIn:        l.TimeIn,
			EntryTime:     l.EntryTime,
			ExitTime:      l.ExitTime,
			Status:        string(l.Status),
			HostID:        l.HostID,
			HostName:      l.HostName,
			EntryGuard:    l.EntryGuardName,
			ExitGuard:     l.ExitGuardName,
			CreatedAt:     l.CreatedAt,
			UpdatedAt:     l.UpdatedAt,
		})
	}
	return out
}
