package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/jhoicas/finflux-dashboard/internal/application/analytics"
	"github.com/jhoicas/finflux-dashboard/internal/application/auth"
	"github.com/jhoicas/finflux-dashboard/internal/application/dto"
	"github.com/jhoicas/finflux-dashboard/internal/application/inventory"
	"github.com/jhoicas/finflux-dashboard/internal/application/report"
	"github.com/jhoicas/finflux-dashboard/internal/application/session"
	"github.com/jhoicas/finflux-dashboard/internal/application/usecase"
	"github.com/jhoicas/finflux-dashboard/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	DashboardUC *analytics.DashboardUseCase
	AnalyticsUC *analytics.AnalyticsUseCase
	Monitor     *inventory.Monitor
	LevelUC     *inventory.LevelUseCase
	ProductUC   *usecase.ProductUseCase
	ExpenseUC   *usecase.ExpenseUseCase
	DepositUC   *usecase.DepositUseCase
	DocumentUC  *usecase.DocumentUseCase
	EmployeeUC  *usecase.EmployeeUseCase
	CustomerUC  *usecase.CustomerUseCase
	SaleUC      *usecase.SaleUseCase
	ReportUC    *report.ReportUseCase
	Sessions    *session.Store
	JWTSecret   string

	// Intentos de login por IP y minuto; 0 = 10.
	LoginLimit int
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authn := []fiber.Handler{AuthMiddleware(deps.JWTSecret), SessionMiddleware(deps.Sessions)}
	// cap == len: cada append posterior copia y no pisa rutas ya registradas.
	guard := func(roles ...string) []fiber.Handler {
		chain := make([]fiber.Handler, 0, len(authn)+1)
		chain = append(chain, authn...)
		return append(chain, RequireRole(roles...))
	}
	managers := guard(entity.RoleOwner, entity.RoleManager)
	everyone := guard(entity.RoleOwner, entity.RoleManager, entity.RoleEmployee)

	// Auth
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", loginLimiter(deps.LoginLimit), authHandler.Login)
	authGroup.Post("/logout", append(everyone, authHandler.Logout)...)

	// Vistas de cualquier rol
	me := api.Group("/me", everyone...)
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	me.Get("/", authHandler.Me)
	me.Get("/attendance", RequireRole(entity.RoleEmployee), employeeHandler.MyAttendance)
	me.Get("/tasks", RequireRole(entity.RoleEmployee), employeeHandler.MyTasks)
	me.Get("/duties", RequireRole(entity.RoleEmployee), employeeHandler.MyDuties)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard", append(everyone, dashboardHandler.GetSummary)...)

	sales := api.Group("/sales", everyone...)
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Get("/", saleHandler.List)
	sales.Post("/", saleHandler.Create)

	// Dueño y gerente
	products := api.Group("/products", managers...)
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	inv := api.Group("/inventory", managers...)
	inventoryHandler := NewInventoryHandler(deps.Monitor, deps.LevelUC)
	inv.Get("/tanks", inventoryHandler.Tanks)
	inv.Post("/refresh", inventoryHandler.Refresh)
	inv.Put("/:id/level", inventoryHandler.UpdateLevel)
	inv.Get("/:id/history", inventoryHandler.History)

	expenses := api.Group("/expenses", managers...)
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses.Get("/", expenseHandler.List)
	expenses.Post("/", expenseHandler.Create)
	expenses.Put("/:id", expenseHandler.Update)
	expenses.Patch("/:id/status", expenseHandler.SetStatus)
	expenses.Delete("/:id", expenseHandler.Delete)

	deposits := api.Group("/bank-deposits", managers...)
	depositHandler := NewDepositHandler(deps.DepositUC)
	deposits.Get("/", depositHandler.List)
	deposits.Post("/", depositHandler.Create)
	deposits.Post("/upload", depositHandler.Upload)
	deposits.Put("/:id", depositHandler.Update)
	deposits.Delete("/:id", depositHandler.Delete)
	deposits.Get("/:id/download", depositHandler.Download)

	documents := api.Group("/documents", managers...)
	documentHandler := NewDocumentHandler(deps.DocumentUC)
	documents.Get("/", documentHandler.List)
	documents.Get("/lifecycle", documentHandler.Lifecycle)
	documents.Post("/", documentHandler.Create)
	documents.Put("/:id", documentHandler.Update)
	documents.Delete("/:id", documentHandler.Delete)

	employees := api.Group("/employees", managers...)
	employees.Get("/", employeeHandler.List)
	employees.Post("/", employeeHandler.Create)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Delete)

	customers := api.Group("/customers", managers...)
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", customerHandler.List)
	customers.Get("/history", customerHandler.History)
	customers.Post("/", customerHandler.Create)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	an := api.Group("/analytics", managers...)
	analyticsHandler := NewAnalyticsHandler(deps.AnalyticsUC)
	an.Get("/sales", analyticsHandler.Sales)
	an.Get("/expenses", analyticsHandler.Expenses)
	an.Get("/deposits", analyticsHandler.Deposits)
	an.Get("/borrowers", analyticsHandler.Borrowers)
	an.Get("/attendance", analyticsHandler.Attendance)

	reports := api.Group("/reports", managers...)
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/monthly-summary", reportHandler.MonthlySummary)
	reports.Get("/inventory", reportHandler.Inventory)
}

func loginLimiter(max int) fiber.Handler {
	if max <= 0 {
		max = 10
	}
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Code:    "TOO_MANY_REQUESTS",
				Message: "demasiados intentos de inicio de sesión, espere un minuto",
			})
		},
	})
}
