package app

import (
	"coder_edu_frontend/docs"
	"coder_edu_frontend/internal/config"
	"coder_edu_frontend/internal/guard"
	"coder_edu_frontend/internal/middleware"
	"coder_edu_frontend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/api/health", c.health.HealthCheck)

	// 以下路由都需要会话
	site := router.Group("/")
	site.Use(middleware.VisitorMiddleware(cfg.Session), middleware.SessionMiddleware(a.API, cfg.Session))
	{
		site.GET("/", c.home.Index)

		// 1. 公共路由(匿名可访问)
		a.registerPublicRoutes(site.Group("/api"), c)

		// 2. 登录用户
		authGroup := site.Group("/api")
		authGroup.Use(middleware.Guard(guard.Authenticated))
		a.registerStudentRoutes(authGroup, c)

		// 3. 教师 / 管理员
		staff := site.Group("/api")
		staff.Use(middleware.Guard(guard.Staff))
		staff.GET("/dashboard/instructor", c.dashboard.Instructor)

		// 4. 管理员
		admin := site.Group("/api")
		admin.Use(middleware.Guard(guard.AdminOnly))
		admin.GET("/dashboard/admin", c.dashboard.Admin)
	}
}

func (a *App) registerPublicRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.POST("/login", c.auth.Login)
	rg.POST("/logout", c.auth.Logout)

	rg.GET("/courses", c.course.ListCourses)
	rg.GET("/courses/:id", c.course.GetCourse)
	rg.GET("/categories", c.course.ListCategories)

	rg.GET("/learning-paths", c.learningPath.ListPaths)
	rg.GET("/learning-paths/:id", c.learningPath.GetPath)
}

func (a *App) registerStudentRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/me", c.auth.Me)
	rg.POST("/courses/:id/enroll", c.course.Enroll)
	rg.GET("/dashboard/student", c.dashboard.Student)

	// 模块访问与测验
	modules := rg.Group("/modules/:id")
	{
		modules.GET("", c.module.Visit)
		modules.POST("/generate", c.module.Generate)
		modules.GET("/download", c.module.Download)
		modules.POST("/leave", c.module.Leave)
		modules.POST("/quiz/start", c.module.StartQuiz)
		modules.POST("/quiz/select", c.module.SelectOption)
		modules.POST("/quiz/advance", c.module.Advance)
		modules.POST("/quiz/retry", c.module.Retry)
		modules.POST("/quiz/dismiss", c.module.Dismiss)
	}

	rg.GET("/rooms", c.room.ListRooms)
	rg.POST("/rooms/join", c.room.JoinRoom)
	rg.GET("/rooms/:id", c.room.GetRoom)

	rg.GET("/notifications", c.notification.List)
	rg.POST("/notifications/:id/read", c.notification.MarkRead)
}
