package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/nlog/notes-system/docs"
	"github.com/nlog/notes-system/internal/api/handler"
	"github.com/nlog/notes-system/internal/api/middleware"
	"github.com/nlog/notes-system/internal/core/ports"
	"github.com/nlog/notes-system/internal/core/service"
)

// Deps carries everything the router needs. Repositories and the token
// service are interfaces so tests can drop in in-memory fakes; DB is only
// used by the readiness probe and may be nil in tests.
type Deps struct {
	Accounts ports.AccountRepository
	Notes    ports.NoteRepository
	Tokens   ports.TokenService
	TokenTTL time.Duration
	DB       *mongo.Database
	Logger   zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("nlog"))

	// --- Dependencies ---
	authService := service.NewAuthService(deps.Accounts, deps.Tokens, deps.TokenTTL, deps.Logger)
	noteService := service.NewNoteService(deps.Notes, deps.Logger)
	authHandler := handler.NewAuthHandler(authService)
	noteHandler := handler.NewNoteHandler(noteService)
	authMiddleware := middleware.Auth(deps.Tokens, deps.Accounts)

	// --- Public routes ---
	e.GET("/", handler.Root)
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/login", authHandler.Login)

	// --- Protected routes ---
	notes := e.Group("/notes", authMiddleware)
	notes.POST("/", noteHandler.Create)
	notes.GET("/", noteHandler.List)
	notes.PUT("/:note_id", noteHandler.Update)
	notes.DELETE("/:note_id", noteHandler.Delete)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	healthHandler := handler.NewHealthHandler()
	e.GET("/health", healthHandler.Liveness) // liveness – is the process alive?
	if deps.DB != nil {
		readiness := handler.NewReadinessHandler(deps.DB)
		e.GET("/health/ready", readiness.Readiness) // readiness – are dependencies up?
	}

	return e
}
