package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/alexedwards/scs/goredisstore"
	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/ekinveldet/cinema-booking/internal/domain"
	"github.com/ekinveldet/cinema-booking/internal/mailer"
	"github.com/ekinveldet/cinema-booking/internal/repository"
	appvalidator "github.com/ekinveldet/cinema-booking/internal/validator"
	"github.com/ekinveldet/cinema-booking/internal/vcs"
)

var (
	version = vcs.Version()
)

type Application struct {
	config         Config
	logger         *slog.Logger
	validator      *validator.Validate
	mailer         mailer.Mailer
	sessionManager *scs.SessionManager
	metrics        *metrics

	userRepo    domain.UserRepository
	catalogRepo domain.CatalogRepository
	bookingRepo domain.BookingRepository
	reportRepo  domain.ReportRepository
}

type Config struct {
	Port int
	Env  string

	Redis RedisConfig
	SMTP  SMTPConfig
	Admin AdminConfig
	Store repository.Config

	OtelCollectorUrl string
}

type RedisConfig struct {
	URL          string
	MaxOpenConns int
	MaxIdleConns int
	MaxIdleTime  time.Duration
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Sender   string
}

// AdminConfig seeds the single admin account at startup. Admin rights are a
// per-request authorization check on the session; there is no separate
// admin login state.
type AdminConfig struct {
	Name     string
	Email    string
	Password string
}

func Run() error {
	// Missing .env is fine, flags and real env vars still apply.
	_ = godotenv.Load()

	var cfg Config

	flag.IntVar(&cfg.Port, "port", envInt("PORT", 3000), "server port")
	flag.StringVar(&cfg.Env, "env", envString("ENV", "dev"), "Environment (dev|staging|prod)")

	flag.StringVar(&cfg.Redis.URL, "redis-url", envString("REDIS_URL", ""), "Redis URL for the session store (in-memory sessions when empty)")
	flag.IntVar(&cfg.Redis.MaxOpenConns, "redis-max-open-conns", 25, "Redis max open connections")
	flag.IntVar(&cfg.Redis.MaxIdleConns, "redis-max-idle-conns", 10, "Redis max idle connections")
	flag.DurationVar(&cfg.Redis.MaxIdleTime, "redis-max-idle-time", 2*time.Minute, "Redis max idle time for connections")

	flag.StringVar(&cfg.SMTP.Host, "smtp-host", envString("SMTP_HOST", "sandbox.smtp.mailtrap.io"), "SMTP host")
	flag.IntVar(&cfg.SMTP.Port, "smtp-port", envInt("SMTP_PORT", 2525), "SMTP port")
	flag.StringVar(&cfg.SMTP.Username, "smtp-username", envString("SMTP_USERNAME", ""), "SMTP username")
	flag.StringVar(&cfg.SMTP.Password, "smtp-password", envString("SMTP_PASSWORD", ""), "SMTP password")
	flag.StringVar(&cfg.SMTP.Sender, "smtp-sender", envString("SMTP_SENDER", "CineGo <no-reply@cinego.example>"), "SMTP sender")

	flag.StringVar(&cfg.Admin.Name, "admin-name", envString("ADMIN_NAME", "Admin"), "Seed admin display name")
	flag.StringVar(&cfg.Admin.Email, "admin-email", envString("ADMIN_EMAIL", "admin@cinego.example"), "Seed admin email")
	flag.StringVar(&cfg.Admin.Password, "admin-password", envString("ADMIN_PASSWORD", ""), "Seed admin password (admin account disabled when empty)")

	flag.IntVar(&cfg.Store.SeatCapacity, "seat-capacity", envInt("SEAT_CAPACITY", domain.DefaultSeatCapacity), "Seats per screening hall")
	flag.IntVar(&cfg.Store.Limits.MaxMovies, "max-movies", 0, "Catalog movie limit (0 = default)")
	flag.IntVar(&cfg.Store.Limits.MaxScreenings, "max-screenings", 0, "Catalog screening limit (0 = default)")
	flag.IntVar(&cfg.Store.Limits.MaxBookings, "max-bookings", 0, "Ledger booking limit (0 = default)")
	flag.IntVar(&cfg.Store.Limits.MaxUsers, "max-users", 0, "User limit (0 = default)")

	flag.StringVar(&cfg.OtelCollectorUrl, "otel-collector-url", envString("OTEL_COLLECTOR_URL", ""), "OpenTelemetry collector URL (telemetry disabled when empty)")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	app, err := New(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize application", "error", err)
		return err
	}

	shutdownTelemetry, err := app.InitTelemetry()
	if err != nil {
		logger.Error("failed to initialize telemetry", "error", err)
		return err
	}
	defer shutdownTelemetry(context.Background())

	return app.serve()
}

// New wires the in-memory store, repositories, session manager and mailer
// into a ready-to-serve Application, and seeds the admin account.
func New(cfg Config, logger *slog.Logger) (*Application, error) {
	store := repository.NewStore(cfg.Store)

	sessionManager, err := newSessionManager(cfg)
	if err != nil {
		return nil, err
	}

	metrics, err := newMetrics()
	if err != nil {
		return nil, err
	}

	app := &Application{
		config:         cfg,
		logger:         logger,
		validator:      appvalidator.NewValidator(),
		mailer:         mailer.NewSMTPMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.Sender),
		sessionManager: sessionManager,
		metrics:        metrics,
		userRepo:       repository.NewMemoryUserRepository(store),
		catalogRepo:    repository.NewMemoryCatalogRepository(store),
		bookingRepo:    repository.NewMemoryBookingRepository(store),
		reportRepo:     repository.NewMemoryReportRepository(store),
	}

	err = app.seedAdmin()
	if err != nil {
		return nil, err
	}

	return app, nil
}

func newSessionManager(cfg Config) (*scs.SessionManager, error) {
	sessionManager := scs.New()
	sessionManager.IdleTimeout = 20 * time.Minute
	sessionManager.Cookie.Name = "session_id"

	// The default in-memory store matches the single-process model; Redis
	// is only for keeping sessions across restarts.
	if cfg.Redis.URL == "" {
		return sessionManager, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:            cfg.Redis.URL,
		MaxIdleConns:    cfg.Redis.MaxIdleConns,
		MaxActiveConns:  cfg.Redis.MaxOpenConns,
		ConnMaxIdleTime: cfg.Redis.MaxIdleTime,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := rdb.Ping(ctx).Err()
	if err != nil {
		return nil, err
	}

	sessionManager.Store = goredisstore.New(rdb)

	return sessionManager, nil
}

func (app *Application) seedAdmin() error {
	if app.config.Admin.Password == "" {
		app.logger.Warn("admin password not set, no admin account seeded")
		return nil
	}

	admin := domain.User{
		Name:  app.config.Admin.Name,
		Email: app.config.Admin.Email,
		Role:  domain.RoleAdmin,
	}

	err := admin.Password.Set(app.config.Admin.Password)
	if err != nil {
		return err
	}

	return app.userRepo.Create(context.Background(), &admin)
}

func (app *Application) serve() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		err := srv.Shutdown(ctx)
		if err != nil {
			shutdownError <- err
		}

		shutdownError <- nil
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.Env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)

	r.Use(middleware.Logger)
	r.Use(middleware.RequestID)
	r.Use(app.recoverPanic)
	r.Use(app.sessionManager.LoadAndSave)

	r.Get("/health", app.GetHealth)

	r.Post("/users", app.RegisterUser)
	r.Post("/sessions", app.Login)
	r.Delete("/sessions", app.Logout)

	r.Get("/movies", app.GetMovies)
	r.Get("/screenings", app.GetScreenings)
	r.Get("/screenings/{screeningId}/seats", app.GetScreeningSeatMap)

	r.Group(func(r chi.Router) {
		r.Use(app.requireAuthentication)

		r.Post("/bookings", app.CreateBooking)
		r.Get("/users/me/bookings", app.GetMyBookings)
		r.Put("/bookings/{bookingId}", app.UpdateBooking)
		r.Delete("/bookings/{bookingId}", app.CancelBooking)
	})

	r.Group(func(r chi.Router) {
		r.Use(app.requireAuthentication, app.requireAdmin)

		r.Post("/movies", app.CreateMovie)
		r.Patch("/movies/{movieId}", app.UpdateMovie)
		r.Delete("/movies/{movieId}", app.DeleteMovie)

		r.Post("/screenings", app.CreateScreening)
		r.Patch("/screenings/{screeningId}", app.UpdateScreening)
		r.Delete("/screenings/{screeningId}", app.DeleteScreening)

		r.Get("/bookings", app.GetAllBookings)
		r.Get("/reports/bookings", app.GetBookingsReport)
		r.Get("/reports/revenue", app.GetRevenueReport)
	})

	return r
}

func envString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}

	return fallback
}

func envInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}

	return fallback
}
