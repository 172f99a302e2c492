package bootstrap

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gin-gonic/gin"

	"skillgap-backend/internal/auth"
	"skillgap-backend/internal/llm"
	"skillgap-backend/internal/llm/gemini"
	"skillgap-backend/internal/mail"
	"skillgap-backend/internal/report"
	"skillgap-backend/internal/roadmap"
	"skillgap-backend/internal/roles"
	"skillgap-backend/internal/server"
	"skillgap-backend/internal/sessions"
	"skillgap-backend/internal/shared/config"
	"skillgap-backend/internal/shared/storage/db"
	"skillgap-backend/internal/shared/telemetry"
	"skillgap-backend/internal/uploads"
	"skillgap-backend/internal/users"
)

// App holds shared dependencies.
type App struct {
	Config         config.Config
	Router         *gin.Engine
	DB             *sql.DB
	LLM            llm.Client
	Mailer         *mail.Mailer
	UsersRepo      users.Repo
	UsersService   *users.Service
	SessionStore   sessions.Store
	SessionManager *sessions.Manager
	RoadmapService *roadmap.Service
	GoogleAuth     *auth.GoogleService
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var userRepo users.Repo
	var sessionStore sessions.Store
	if sqlDB != nil {
		userRepo = &users.PGRepo{DB: sqlDB}
		sessionStore = &sessions.PGStore{DB: sqlDB}
	} else {
		userRepo = users.NewMemoryRepo()
		sessionStore = sessions.NewMemoryStore()
	}

	userSvc := users.NewService(userRepo)
	sessionMgr := sessions.NewManager(sessionStore, userSvc, cfg.SessionTTL, cfg.IsProduction())

	llmClient, err := buildLLM(ctx, cfg)
	if err != nil {
		return nil, err
	}

	mailer := buildMailer(cfg)

	roadmapSvc := roadmap.NewService(llmClient, cfg.GeminiTimeout)

	googleAuthSvc := auth.NewGoogleService(
		cfg.GoogleClientID,
		cfg.GoogleClientSecret,
		cfg.GoogleRedirectURL,
		cfg.UIRedirectURL,
		cfg.UIFailureURL,
		userSvc,
		sessionMgr,
	)

	var sender report.Sender
	if mailer != nil {
		sender = mailer
	}

	app := &App{
		Config:         cfg,
		DB:             sqlDB,
		LLM:            llmClient,
		Mailer:         mailer,
		UsersRepo:      userRepo,
		UsersService:   userSvc,
		SessionStore:   sessionStore,
		SessionManager: sessionMgr,
		RoadmapService: roadmapSvc,
		GoogleAuth:     googleAuthSvc,
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:         cfg,
		RolesHandler:   roles.NewHandler(),
		UploadHandler:  uploads.NewHandler(cfg.UploadDir, cfg.MaxUploadBytes),
		RoadmapHandler: roadmap.NewHandler(roadmapSvc),
		ReportHandler:  report.NewHandler(sessionMgr, sender),
		GoogleAuth:     googleAuthSvc,
	})

	return app, nil
}

// Close releases long-lived resources.
func (a *App) Close() {
	if a == nil {
		return
	}
	if a.LLM != nil {
		_ = a.LLM.Close()
	}
	if a.DB != nil {
		_ = a.DB.Close()
	}
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if cfg.DatabaseURL == "" {
		if cfg.IsProduction() {
			return nil, fmt.Errorf("DATABASE_URL is required in production")
		}
		telemetry.Warn("bootstrap.db", map[string]any{"msg": "DATABASE_URL empty; using in-memory stores"})
		return nil, nil
	}

	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.DefaultServerOptions())
	if err != nil {
		if cfg.IsProduction() {
			return nil, err
		}
		telemetry.Warn("bootstrap.db", map[string]any{"msg": "database connect failed; using in-memory stores", "err": err.Error()})
		return nil, nil
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		if cfg.IsProduction() {
			return nil, err
		}
		telemetry.Warn("bootstrap.db", map[string]any{"msg": "migrations failed; using in-memory stores", "err": err.Error()})
		return nil, nil
	}

	return sqlDB, nil
}

func buildLLM(ctx context.Context, cfg config.Config) (llm.Client, error) {
	if cfg.GeminiAPIKey == "" {
		if cfg.IsProduction() {
			return nil, fmt.Errorf("%w: GEMINI_API_KEY is required in production", llm.ErrNotConfigured)
		}
		telemetry.Warn("bootstrap.llm", map[string]any{"msg": "GEMINI_API_KEY empty; roadmap generation disabled"})
		return llm.PlaceholderClient{}, nil
	}
	return gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
}

func buildMailer(cfg config.Config) *mail.Mailer {
	mailer, err := mail.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.MailFrom)
	if err != nil {
		telemetry.Warn("bootstrap.mail", map[string]any{"msg": "SMTP not configured; email reports disabled"})
		return nil
	}
	return mailer
}
