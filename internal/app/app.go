package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/akshar-2001/revenge-valut/internal/config"
	"github.com/akshar-2001/revenge-valut/internal/controller"
	"github.com/akshar-2001/revenge-valut/internal/repository"
	"github.com/akshar-2001/revenge-valut/internal/service"
	"github.com/akshar-2001/revenge-valut/pkg/configwatcher"
	"github.com/akshar-2001/revenge-valut/pkg/logger"
	"github.com/akshar-2001/revenge-valut/pkg/monitoring"
	"github.com/akshar-2001/revenge-valut/pkg/security"
	"github.com/akshar-2001/revenge-valut/pkg/tracing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// App owns the whole application state: the in-memory repositories are
// constructed here, threaded into the services, and torn down with the
// process. Nothing is persisted.
type App struct {
	Config     *config.Config
	Router     *gin.Engine
	services   *services
	configPath string
	shutdownTp func(context.Context) error
}

type repositories struct {
	subject  *repository.SubjectRepository
	question *repository.QuestionRepository
}

type services struct {
	generation *service.GenerationService
	subject    *service.SubjectService
	quiz       *service.QuizService
	dashboard  *service.DashboardService
}

type controllers struct {
	subject   *controller.SubjectController
	quiz      *controller.QuizController
	dashboard *controller.DashboardController
	health    *controller.HealthController
}

func (a *App) initRepositories() *repositories {
	return &repositories{
		subject:  repository.NewSubjectRepository(),
		question: repository.NewQuestionRepository(),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{}

	s.generation = service.NewGenerationService(cfg.AI)
	s.subject = service.NewSubjectService(repos.subject, repos.question)
	s.quiz = service.NewQuizService(repos.subject, repos.question, s.generation, cfg)
	s.dashboard = service.NewDashboardService(repos.subject, repos.question, cfg.Quiz)

	return s
}

func (a *App) initControllers(s *services, repos *repositories) *controllers {
	return &controllers{
		subject:   controller.NewSubjectController(s.subject),
		quiz:      controller.NewQuizController(s.quiz, repos.question),
		dashboard: controller.NewDashboardController(s.dashboard),
		health:    controller.NewHealthController(repos.subject, repos.question),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// watchConfig hot-reloads the config file and fans the fresh settings out to
// the services that can apply them at runtime.
func (a *App) watchConfig(s *services) {
	go configwatcher.WatchConfig(filepath.Join(a.configPath, "config.yaml"), func(cfg *config.Config) {
		s.generation.ApplyConfig(cfg.AI)
		s.quiz.ApplyConfig(cfg)
		s.dashboard.ApplyConfig(cfg.Quiz)
		logger.Log.Info("configuration reloaded")
	})
}

func NewApp(cfg *config.Config, configPath string) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	app := &App{
		Config:     cfg,
		configPath: configPath,
	}

	repos := app.initRepositories()
	services := app.initServices(repos, cfg)
	app.services = services
	controllers := app.initControllers(services, repos)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("revenge-vault", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.shutdownTp = tp.Shutdown
	}

	app.registerRoutes(router, controllers)

	app.watchConfig(services)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if a.shutdownTp != nil {
		if err := a.shutdownTp(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	log.Println("Server exiting")
}
