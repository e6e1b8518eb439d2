package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/avicampo/avicola-api/internal/application/analytics"
	appauth "github.com/avicampo/avicola-api/internal/application/auth"
	"github.com/avicampo/avicola-api/internal/application/cycles"
	"github.com/avicampo/avicola-api/internal/application/farmers"
	"github.com/avicampo/avicola-api/internal/application/orders"
	"github.com/avicampo/avicola-api/internal/application/reports"
	"github.com/avicampo/avicola-api/internal/application/sales"
	"github.com/avicampo/avicola-api/internal/application/session"
	"github.com/avicampo/avicola-api/internal/application/stockledger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	FarmerUC    *farmers.UseCase
	CycleUC     *cycles.UseCase
	StockUC     *stockledger.UseCase
	SalesUC     *sales.UseCase
	OrderUC     *orders.UseCase
	AnalyticsUC *analytics.UseCase
	ReportUC    *reports.UseCase
	AuthUC      *appauth.UseCase
	Resolver    *session.Resolver
	Filters     *session.OfficerFilter
	Guard       *CallbackGuard
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/sign-up", authHandler.SignUp)
	authGroup.Post("/verify-otp", authHandler.VerifyOTP)
	authGroup.Post("/password-reset", authHandler.RequestPasswordReset)
	authGroup.Post("/password-reset/confirm", authHandler.ConfirmPasswordReset)
	authGroup.Post("/resend-code", authHandler.ResendCode)

	// Sesión: el GET decide solo (callback grace); el callback es público
	sessionHandler := NewSessionHandler(deps.Resolver, deps.Filters, deps.AuthUC, deps.Guard, deps.JWTSecret)
	authGroup.Get("/callback", sessionHandler.Callback)
	api.Get("/session", sessionHandler.Get)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	authGroup.Post("/sign-out", AuthMiddleware(deps.JWTSecret), authHandler.SignOut)

	// Sesión protegida: modo de vista y filtro de oficial
	protected.Put("/session/mode", sessionHandler.SwitchMode)
	protected.Get("/session/officer-filter", sessionHandler.GetOfficerFilter)
	protected.Put("/session/officer-filter", sessionHandler.SetOfficerFilter)

	// Pantallas de negocio: además del token, exigen membresía ACTIVE
	gated := protected.Group("/", MembershipGate())

	// Granjeros + ledger de alimento
	farmerHandler := NewFarmerHandler(deps.FarmerUC, deps.Filters)
	stockHandler := NewStockHandler(deps.StockUC)
	farmersGroup := gated.Group("/farmers")
	farmersGroup.Get("/", farmerHandler.List)
	farmersGroup.Post("/", farmerHandler.Create)
	farmersGroup.Get("/:id", farmerHandler.Detail)
	farmersGroup.Put("/:id", farmerHandler.Update)
	farmersGroup.Delete("/:id", farmerHandler.Delete)
	farmersGroup.Get("/:id/stock-logs", stockHandler.Ledger)
	farmersGroup.Post("/:id/restock", stockHandler.Restock)
	farmersGroup.Post("/:id/stock-logs/:logId/revert", stockHandler.Revert)
	gated.Post("/stock/transfers", stockHandler.Transfer)

	// Ciclos + ventas
	cycleHandler := NewCycleHandler(deps.CycleUC, deps.Filters)
	salesHandler := NewSalesHandler(deps.SalesUC, deps.Filters)
	cyclesGroup := gated.Group("/cycles")
	cyclesGroup.Get("/", cycleHandler.List)
	cyclesGroup.Get("/:id", cycleHandler.Detail)
	cyclesGroup.Post("/:id/mortality", cycleHandler.RecordMortality)
	cyclesGroup.Post("/:id/close", cycleHandler.Close)
	cyclesGroup.Post("/:id/sales", salesHandler.Record)
	gated.Get("/sales", salesHandler.ListGrouped)
	gated.Delete("/sales/:id", salesHandler.Delete)

	// Órdenes
	orderHandler := NewOrderHandler(deps.OrderUC, deps.Filters)
	ordersGroup := gated.Group("/orders")
	ordersGroup.Get("/", orderHandler.Overview)
	ordersGroup.Post("/:type", orderHandler.Place)
	ordersGroup.Post("/:type/:id/confirm", orderHandler.Confirm)

	// Gerencia: dashboard, miembros y reportes
	analyticsHandler := NewAnalyticsHandler(deps.AnalyticsUC, deps.Filters)
	gated.Get("/dashboard", analyticsHandler.Dashboard)
	membersGroup := gated.Group("/members")
	membersGroup.Get("/", analyticsHandler.ListMembers)
	membersGroup.Post("/:id/approve", analyticsHandler.ApproveMember)
	membersGroup.Post("/:id/reject", analyticsHandler.RejectMember)

	reportHandler := NewReportHandler(deps.ReportUC)
	reportsGroup := gated.Group("/reports")
	reportsGroup.Get("/performance", reportHandler.Performance)
	reportsGroup.Post("/performance/export", reportHandler.Export)
}
