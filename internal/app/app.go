package app

import (
	"coder_edu_frontend/internal/apiclient"
	"coder_edu_frontend/internal/config"
	"coder_edu_frontend/internal/controller"
	"coder_edu_frontend/internal/progression"
	"coder_edu_frontend/internal/service"
	"coder_edu_frontend/internal/session"
	"coder_edu_frontend/pkg/configwatcher"
	"coder_edu_frontend/pkg/database"
	"coder_edu_frontend/pkg/logger"
	"coder_edu_frontend/pkg/monitoring"
	"coder_edu_frontend/pkg/security"
	"coder_edu_frontend/pkg/tracing"
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

const configDir = "configs"

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	Redis           *redis.Client
	API             session.API
	services        *services
	visitStore      progression.VisitStore
	limiter         *security.Limiter
	tracer          *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type services struct {
	storage      *service.StorageService
	course       *service.CourseService
	module       *service.ModuleService
	dashboard    *service.DashboardService
	room         *service.RoomService
	learningPath *service.LearningPathService
	notification *service.NotificationService
}

type controllers struct {
	home         *controller.HomeController
	auth         *controller.AuthController
	course       *controller.CourseController
	module       *controller.ModuleController
	dashboard    *controller.DashboardController
	room         *controller.RoomController
	learningPath *controller.LearningPathController
	notification *controller.NotificationController
	health       *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initServices(cfg *config.Config) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.course = service.NewCourseService()
	s.module = service.NewModuleService(s.storage)
	s.dashboard = service.NewDashboardService()
	s.room = service.NewRoomService()
	s.learningPath = service.NewLearningPathService()
	s.notification = service.NewNotificationService()

	return s
}

func (a *App) initControllers(s *services) *controllers {
	return &controllers{
		home:         controller.NewHomeController(),
		auth:         controller.NewAuthController(),
		course:       controller.NewCourseController(s.course),
		module:       controller.NewModuleController(s.module, progression.NewVisits(a.visitStore)),
		dashboard:    controller.NewDashboardController(s.dashboard),
		room:         controller.NewRoomController(s.room),
		learningPath: controller.NewLearningPathController(s.learningPath),
		notification: controller.NewNotificationController(s.notification),
		health:       controller.NewHealthController(a.Redis),
	}
}

func (a *App) initVisitStore(cfg *config.Config) progression.VisitStore {
	if cfg.Visit.Store == config.VisitStoreRedis && a.Redis != nil {
		return progression.NewRedisVisitStore(a.Redis, cfg.Visit.TTL)
	}
	return progression.NewMemoryVisitStore(cfg.Visit.TTL)
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	a.limiter = security.NewLimiter(cfg.RateLimit.MaxRequests, window)
	router.Use(security.RateLimiter(a.limiter, nil))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// startBackgroundTasks 清理限流条目；内存存储时还要清理过期的模块访问
func (a *App) startBackgroundTasks(ctx context.Context) {
	go a.limiter.Run(ctx, time.Minute)

	mem, ok := a.visitStore.(*progression.MemoryVisitStore)
	if !ok {
		return
	}
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := mem.Sweep(); n > 0 {
					logger.Log.Debug("Expired module visits removed", zap.Int("count", n))
				}
			}
		}
	}()
}

// newApp 组装路由，不做任何外部连接
func newApp(cfg *config.Config, api session.API, rdb *redis.Client) *App {
	app := &App{
		Config: cfg,
		Redis:  rdb,
		API:    api,
	}
	app.visitStore = app.initVisitStore(cfg)
	app.services = app.initServices(cfg)
	controllers := app.initControllers(app.services)

	// 监控初始化
	monitoring.Init()

	router := gin.New()
	router.Use(gin.Recovery())
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers, cfg)

	app.RegisterConfigCallback(logger.SetLevel)
	return app
}

func NewApp(cfg *config.Config) *App {
	gin.SetMode(cfg.Server.Mode)
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	var rdb *redis.Client
	if cfg.Visit.Store == config.VisitStoreRedis {
		var err error
		rdb, err = database.InitRedis(&cfg.Redis)
		if err != nil {
			logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		}
	}

	var tp *sdktrace.TracerProvider
	if cfg.Tracing.Enabled {
		var err error
		tp, err = tracing.InitTracer("learning-frontend", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app := newApp(cfg, apiclient.New(cfg.API), rdb)
	app.tracer = tp
	return app
}

func (a *App) applyConfig(cfg *config.Config) {
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
}

func (a *App) Run() {
	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	a.startBackgroundTasks(ctx)

	// 配置热更新
	go func() {
		configFile := filepath.Join(configDir, "config.yaml")
		if err := configwatcher.WatchConfig(ctx, configFile, a.applyConfig); err != nil {
			logger.Log.Warn("Config watcher disabled", zap.Error(err))
		}
	}()

	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("listen", zap.Error(err))
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	if a.tracer != nil {
		if err := a.tracer.Shutdown(shutdownCtx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		a.Redis.Close()
	}

	logger.Log.Info("Server exiting")
}
