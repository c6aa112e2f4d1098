package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/jhoicas/finflux-dashboard/internal/application/analytics"
	"github.com/jhoicas/finflux-dashboard/internal/application/auth"
	"github.com/jhoicas/finflux-dashboard/internal/application/inventory"
	"github.com/jhoicas/finflux-dashboard/internal/application/ports"
	"github.com/jhoicas/finflux-dashboard/internal/application/report"
	"github.com/jhoicas/finflux-dashboard/internal/application/session"
	"github.com/jhoicas/finflux-dashboard/internal/application/usecase"
	"github.com/jhoicas/finflux-dashboard/internal/application/validation"
	"github.com/jhoicas/finflux-dashboard/internal/infrastructure/backend"
	"github.com/jhoicas/finflux-dashboard/internal/infrastructure/cache"
	"github.com/jhoicas/finflux-dashboard/internal/infrastructure/excel"
	infrapdf "github.com/jhoicas/finflux-dashboard/internal/infrastructure/pdf"
	"github.com/jhoicas/finflux-dashboard/internal/infrastructure/scheduler"
	"github.com/jhoicas/finflux-dashboard/internal/infrastructure/sms"
	httpRouter "github.com/jhoicas/finflux-dashboard/internal/interfaces/http"
	"github.com/jhoicas/finflux-dashboard/pkg/config"
	"github.com/jhoicas/finflux-dashboard/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.Log.Level,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.Backend.BaseURL).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es obligatorio")
	}

	ctx := context.Background()

	client := backend.NewClient(backend.Config{
		BaseURL:       cfg.Backend.BaseURL,
		LoginURL:      cfg.Backend.ResolvedLoginURL(),
		Timeout:       cfg.Backend.Timeout,
		LongTimeout:   cfg.Backend.LongTimeout,
		UploadTimeout: time.Minute,
	}, nil, log)

	productRepo := backend.NewProductRepository(client)
	employeeRepo := backend.NewEmployeeRepository(client)
	expenseRepo := backend.NewExpenseRepository(client)
	depositRepo := backend.NewDepositRepository(client)
	documentRepo := backend.NewDocumentRepository(client)
	saleRepo := backend.NewSaleRepository(client)
	logRepo := backend.NewInventoryLogRepository(client)
	customerRepo := backend.NewCustomerRepository(client)
	attendanceRepo := backend.NewAttendanceRepository(client)
	taskRepo := backend.NewTaskRepository(client)
	dutyRepo := backend.NewDutyRepository(client)

	// SMS: pasarela HTTP si está configurada; si no, solo log.
	var smsSender ports.SMSSender = sms.NewLogSender(log)
	if cfg.SMS.GatewayURL != "" {
		smsSender = sms.NewHTTPSender(sms.Config{
			GatewayURL: cfg.SMS.GatewayURL,
			APIKey:     cfg.SMS.APIKey,
			SenderID:   cfg.SMS.SenderID,
		}, nil, log)
	}
	if len(cfg.SMS.Recipients) == 0 {
		log.Warn().Msg("SMS_RECIPIENTS vacío: las alertas de stock bajo no se enviarán")
	}

	// Snapshots de tanques: Redis si hay dirección; si no, memoria del proceso.
	var snapshots ports.SnapshotStore = cache.NewMemoryStore(cfg.Redis.SnapshotTTL)
	if cfg.Redis.Addr != "" {
		rdb, err := cache.NewRedisClient(ctx, cfg.Redis.Addr)
		if err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("Redis no disponible, snapshots en memoria")
		} else {
			defer rdb.Close()
			snapshots = cache.NewRedisSnapshotStore(rdb, cfg.Redis.SnapshotTTL)
		}
	}

	poller := scheduler.New(log)

	sessions := session.NewStore(session.Config{
		Inactivity: cfg.Session.Inactivity,
		Threshold:  cfg.Alert.ThresholdPercent,
	}, log)

	monitor := inventory.NewMonitor(productRepo, smsSender, snapshots, poller, inventory.Config{
		Recipients:   cfg.SMS.Recipients,
		PollInterval: cfg.Session.PollInterval,
	}, log)
	sessions.SetWatcher(monitor.Watch)

	// Barrido de sesiones vencidas aunque no lleguen más requests.
	if _, err := poller.Every("session-sweep", time.Minute, func(context.Context) { sessions.Sweep() }); err != nil {
		log.Fatal().Err(err).Msg("programar barrido de sesiones")
	}

	sources := analytics.Sources{
		Products:   productRepo,
		Sales:      saleRepo,
		Expenses:   expenseRepo,
		Deposits:   depositRepo,
		Customers:  customerRepo,
		Attendance: attendanceRepo,
		Tasks:      taskRepo,
	}

	authUC := auth.NewAuthUseCase(backend.NewAuthGateway(client), sessions, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		// Comprobantes de hasta 10 MB más el sobre multipart.
		BodyLimit: validation.MaxUploadBytes + 2<<20,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs (solo si existe el archivo generado)
	const swaggerFile = "./docs/swagger.json"
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "FinFlux Dashboard API",
		}))
	} else {
		log.Info().Str("file", swaggerFile).Msg("sin especificación OpenAPI, /docs deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":   "ok",
			"service":  cfg.App.Name,
			"sessions": sessions.Len(),
			"pollers":  poller.Active(),
		})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		DashboardUC: analytics.NewDashboardUseCase(sources),
		AnalyticsUC: analytics.NewAnalyticsUseCase(sources),
		Monitor:     monitor,
		LevelUC:     inventory.NewLevelUseCase(productRepo, logRepo),
		ProductUC:   usecase.NewProductUseCase(productRepo),
		ExpenseUC:   usecase.NewExpenseUseCase(expenseRepo),
		DepositUC:   usecase.NewDepositUseCase(depositRepo, backend.NormalizeSignedURL, log),
		DocumentUC:  usecase.NewDocumentUseCase(documentRepo),
		EmployeeUC:  usecase.NewEmployeeUseCase(employeeRepo, attendanceRepo, taskRepo, dutyRepo),
		CustomerUC:  usecase.NewCustomerUseCase(customerRepo),
		SaleUC:      usecase.NewSaleUseCase(saleRepo),
		ReportUC:    report.NewReportUseCase(sources, infrapdf.NewMarotoPDFGenerator(), excel.NewInventorySheetGenerator()),
		Sessions:    sessions,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	sessions.Shutdown()
	if err := poller.Stop(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("detener sondeos")
	}

	log.Info().Msg("aplicación detenida")
}
