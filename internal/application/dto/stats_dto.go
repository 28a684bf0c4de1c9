package dto

// AdminLogsResponse resumen global para el dashboard de administración.
// today_visitors cuenta por fecha de creación del registro; active_visitors
// son los pases actualmente en Checked-In.
type AdminLogsResponse struct {
	TotalVisitors  int               `json:"total_visitors"`
	TodayVisitors  int               `json:"today_visitors"`
	ActiveVisitors int               `json:"active_visitors"`
	Logs           []VisitorResponse `json:"logs"`
}

// SecurityStatsResponse acciones del guardia autenticado en el día consultado.
// Entradas y salidas se cuentan por separado: un registro donde el mismo
// guardia hizo ambas suma en los dos contadores.
type SecurityStatsResponse struct {
	TotalActions   int               `json:"total_actions"`
	EntriesAllowed int               `json:"entries_allowed"`
	ExitsAllowed   int               `json:"exits_allowed"`
	Logs           []VisitorResponse `json:"logs"`
}

// EmployeeStatsResponse agenda del anfitrión autenticado en el día consultado,
// filtrada por fecha agendada de visita (no por actividad de escaneo).
type EmployeeStatsResponse struct {
	TotalScheduled int               `json:"total_scheduled"`
	Arrived        int               `json:"arrived"`
	Pending        int               `json:"pending"`
	Logs           []VisitorResponse `json:"logs"`
}
