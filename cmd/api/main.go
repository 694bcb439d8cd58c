package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/g-inventory/internal/application/auth"
	"github.com/jhoicas/g-inventory/internal/application/bootstrap"
	"github.com/jhoicas/g-inventory/internal/application/inventory"
	appreport "github.com/jhoicas/g-inventory/internal/application/report"
	"github.com/jhoicas/g-inventory/internal/application/usecase"
	"github.com/jhoicas/g-inventory/internal/domain/repository"
	"github.com/jhoicas/g-inventory/internal/infrastructure/memory"
	"github.com/jhoicas/g-inventory/internal/infrastructure/metrics"
	"github.com/jhoicas/g-inventory/internal/infrastructure/notify"
	"github.com/jhoicas/g-inventory/internal/infrastructure/postgres"
	infrareport "github.com/jhoicas/g-inventory/internal/infrastructure/report"
	httpRouter "github.com/jhoicas/g-inventory/internal/interfaces/http"
	"github.com/jhoicas/g-inventory/pkg/config"
	"github.com/jhoicas/g-inventory/pkg/logger"
)

const contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// stores repositorios elegidos según STORE_DRIVER.
type stores struct {
	users          repository.UserRepository
	permissions    repository.PermissionRepository
	products       repository.ProductRepository
	inputs         repository.ProductInputRepository
	outputs        repository.ProductOutputRepository
	reports        repository.ReportRepository
	configurations repository.ConfigurationRepository
	close          func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	st, err := openStores(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar almacenamiento")
	}
	defer st.close()

	seeder := bootstrap.NewSeeder(st.users, st.permissions, st.configurations, bootstrap.Options{
		AdminPassword:   cfg.Bootstrap.AdminPassword,
		LimitedPassword: cfg.Bootstrap.LimitedPassword,
		AlertEmail:      cfg.Bootstrap.AlertEmail,
	}, log.Component("seeder"))
	if _, err := seeder.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("sembrar datos iniciales")
	}

	// Métricas en un registry propio
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// Canales de aviso: SMTP si está configurado, si no solo log. Telegram es adicional.
	var channels []notify.Channel
	if cfg.Mail.Enabled() {
		channels = append(channels, notify.NewMailChannel(cfg.Mail))
	} else {
		log.Warn().Msg("SMTP_HOST vacío: los avisos solo se registran en el log")
		channels = append(channels, notify.NewLogChannel(log.Component("alerts")))
	}
	if cfg.Telegram.Enabled() {
		tg, err := notify.NewTelegramChannel(cfg.Telegram)
		if err != nil {
			log.Error().Err(err).Msg("canal Telegram deshabilitado")
		} else {
			channels = append(channels, tg)
		}
	}

	dispatcher := notify.NewDispatcher(notify.Options{
		Workers:     cfg.Alerts.Workers,
		QueueSize:   cfg.Alerts.QueueSize,
		SendTimeout: cfg.Alerts.SendTimeout,
	}, st.configurations, channels, m, log.Component("dispatcher"))
	metrics.QueueDepth(reg, func() float64 { return float64(dispatcher.Depth()) })
	dispatcher.Start()

	alertEngine := inventory.NewAlertEngine(st.products, st.inputs, st.outputs, dispatcher, log.Component("alerts"))
	authUC := auth.NewAuthUseCase(st.users, st.permissions, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	exportUC := appreport.NewExportUseCase(st.reports, st.products, st.inputs, st.outputs, st.configurations,
		map[string]appreport.Format{
			"xlsx": {Renderer: infrareport.NewXLSXRenderer(), ContentType: contentTypeXLSX, Extension: "xlsx"},
			"pdf":  {Renderer: infrareport.NewPDFRenderer(), ContentType: "application/pdf", Extension: "pdf"},
		})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.AccessLog(log.Component("http"), m))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "G Inventory API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	if cfg.App.MetricsEnabled {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:          authUC,
		ProductUC:       usecase.NewProductUseCase(st.products, st.inputs, st.outputs),
		InputUC:         inventory.NewProductInputUseCase(st.inputs, st.products, alertEngine),
		OutputUC:        inventory.NewProductOutputUseCase(st.outputs, st.products, alertEngine),
		UserUC:          usecase.NewUserUseCase(st.users, st.permissions),
		PermissionUC:    usecase.NewPermissionUseCase(st.permissions),
		ConfigurationUC: usecase.NewConfigurationUseCase(st.configurations),
		ReportUC:        usecase.NewReportUseCase(st.reports),
		ExportUC:        exportUC,
		JWTSecret:       cfg.JWT.Secret,
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
	// los avisos en cola se entregan antes de cerrar
	if err := dispatcher.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del dispatcher de avisos")
	}

	log.Info().Msg("aplicación detenida")
}

func openStores(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*stores, error) {
	if cfg.Driver == "memory" {
		r := memory.NewRepositories()
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
		return &stores{
			users:          r.Users,
			permissions:    r.Permissions,
			products:       r.Products,
			inputs:         r.Inputs,
			outputs:        r.Outputs,
			reports:        r.Reports,
			configurations: r.Configurations,
			close:          func() {},
		}, nil
	}

	dsn := postgres.ResolveDSN(cfg)
	if cfg.AutoMigrate {
		if err := postgres.Migrate(ctx, dsn); err != nil {
			return nil, err
		}
		log.Info().Msg("migraciones aplicadas")
	}
	pool, err := postgres.NewPool(ctx, dsn)
	if err != nil {
		return nil, err
	}
	r := postgres.NewRepositories(pool)
	return &stores{
		users:          r.Users,
		permissions:    r.Permissions,
		products:       r.Products,
		inputs:         r.Inputs,
		outputs:        r.Outputs,
		reports:        r.Reports,
		configurations: r.Configurations,
		close:          pool.Close,
	}, nil
}
