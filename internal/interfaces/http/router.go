package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Visitantes-api/internal/application/auth"
	"github.com/jhoicas/Visitantes-api/internal/application/stats"
	"github.com/jhoicas/Visitantes-api/internal/application/visitors"
	"github.com/jhoicas/Visitantes-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	VisitorUC *visitors.VisitorUseCase
	ScanUC    *visitors.ScanUseCase
	StatsUC   *stats.StatsUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	// Alta de personal: requiere token Y rol Admin.
	authGroup.Post("/register-staff",
		AuthMiddleware(deps.JWTSecret),
		RequireRole(entity.RoleAdmin),
		authHandler.RegisterStaff,
	)

	// Visitas (protegido: cualquier rol autenticado)
	visitorsGroup := api.Group("/visitors", AuthMiddleware(deps.JWTSecret))
	visitorHandler := NewVisitorHandler(deps.VisitorUC, deps.ScanUC)
	visitorsGroup.Post("/register", visitorHandler.Register)
	visitorsGroup.Get("/my-visitors", visitorHandler.MyVisitors)
	visitorsGroup.Put("/scan/:code", visitorHandler.Scan)

	// Dashboards por rol
	statsHandler := NewStatsHandler(deps.StatsUC)
	visitorsGroup.Get("/admin-logs", RequireRole(entity.RoleAdmin), statsHandler.AdminLogs)
	visitorsGroup.Get("/security-stats", statsHandler.SecurityStats)
	visitorsGroup.Get("/employee-stats", statsHandler.EmployeeStats)

	// Va al final: ":id" no debe capturar las rutas literales de arriba.
	visitorsGroup.Get("/:id/pass.pdf", visitorHandler.PassPDF)
}
