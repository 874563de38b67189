package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/Jawbreaker1989/queenscorner-api/internal/application/admin"
	"github.com/Jawbreaker1989/queenscorner-api/internal/application/auth"
	"github.com/Jawbreaker1989/queenscorner-api/internal/application/clients"
	"github.com/Jawbreaker1989/queenscorner-api/internal/application/invoices"
	"github.com/Jawbreaker1989/queenscorner-api/internal/application/payments"
	"github.com/Jawbreaker1989/queenscorner-api/internal/application/projects"
	"github.com/Jawbreaker1989/queenscorner-api/internal/application/quotations"
	"github.com/Jawbreaker1989/queenscorner-api/internal/application/workorders"
	"github.com/Jawbreaker1989/queenscorner-api/internal/infrastructure/cache"
	"github.com/Jawbreaker1989/queenscorner-api/internal/infrastructure/notification"
	infrapdf "github.com/Jawbreaker1989/queenscorner-api/internal/infrastructure/pdf"
	"github.com/Jawbreaker1989/queenscorner-api/internal/infrastructure/postgres"
	"github.com/Jawbreaker1989/queenscorner-api/internal/infrastructure/storage"
	"github.com/Jawbreaker1989/queenscorner-api/internal/infrastructure/tasks"
	httpRouter "github.com/Jawbreaker1989/queenscorner-api/internal/interfaces/http"
	"github.com/Jawbreaker1989/queenscorner-api/pkg/config"
	"github.com/Jawbreaker1989/queenscorner-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Repositorios
	clientRepo := postgres.NewClientRepository(pool)
	quotationRepo := postgres.NewQuotationRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)
	workOrderRepo := postgres.NewWorkOrderRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	seqRepo := postgres.NewSequenceRepository(pool)
	adminRepo := postgres.NewAdminRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Caché de lectura por regiones: TTL corto, listas y detalles.
	readCache := cache.NewRegional(
		time.Duration(cfg.Cache.TTLSeconds)*time.Second,
		cfg.Cache.MaxEntries,
	)

	// Pool de tareas en segundo plano (notificaciones y PDFs).
	taskPool := tasks.NewPool(tasks.Config{
		Workers:     cfg.Workers.Workers,
		QueueDepth:  cfg.Workers.QueueDepth,
		TaskTimeout: time.Duration(cfg.Workers.TaskTimeoutSec) * time.Second,
		MaxRetries:  cfg.Workers.MaxRetries,
	}, log)
	taskPool.Start()

	pdfStorage, err := storage.NewLocal(cfg.Storage.PDFDir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.Storage.PDFDir).Msg("directorio de PDFs")
	}
	pdfRenderer := infrapdf.NewMarotoRenderer(cfg.Business)
	notifier := notification.NewSimulated(log)

	// Casos de uso
	clientUC := clients.NewUseCase(clientRepo, readCache)
	quotationUC := quotations.NewUseCase(quotationRepo, clientRepo, seqRepo, readCache)
	projectUC := projects.NewUseCase(projectRepo, quotationRepo, readCache)
	workOrderUC := workorders.NewUseCase(
		workOrderRepo, projectRepo, quotationRepo, clientRepo,
		taskPool, notifier, log,
	)
	invoiceUC := invoices.NewUseCase(
		invoiceRepo, projectRepo, quotationRepo, clientRepo, seqRepo,
		readCache, taskPool, pdfRenderer, pdfStorage, log,
	)
	paymentUC := payments.NewUseCase(txRunner, paymentRepo, projectRepo, readCache)
	adminUC := admin.NewUseCase(adminRepo, readCache)
	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// Usuario administrador único: se siembra (o re-hashea) en cada arranque.
	if err := authUC.SeedAdmin(cfg.Admin.Username, cfg.Admin.Password); err != nil {
		log.Fatal().Err(err).Msg("sembrar usuario administrador")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Queens Corner API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		ClientUC:    clientUC,
		QuotationUC: quotationUC,
		ProjectUC:   projectUC,
		WorkOrderUC: workOrderUC,
		InvoiceUC:   invoiceUC,
		PaymentUC:   paymentUC,
		AuthUC:      authUC,
		AdminUC:     adminUC,
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
	taskPool.Stop(shutdownCtx)

	log.Info().Msg("aplicación detenida")
}
