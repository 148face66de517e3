package app

import (
	"github.com/akshar-2001/revenge-valut/docs"
	"github.com/akshar-2001/revenge-valut/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)
		api.GET("/dashboard", c.dashboard.Overview)

		subjects := api.Group("/subjects")
		{
			subjects.POST("", c.subject.Create)
			subjects.GET("", c.subject.List)
			subjects.GET("/:id", c.subject.Get)
			subjects.PUT("/:id/content", c.subject.UpdateContent)
			subjects.DELETE("/:id", c.subject.Delete)
		}

		api.GET("/questions", c.quiz.ListQuestions)

		quiz := api.Group("/quiz")
		{
			quiz.POST("/start", c.quiz.Start)
			quiz.GET("", c.quiz.Active)
			quiz.POST("/answer", c.quiz.SubmitAnswer)
			quiz.POST("/next", c.quiz.Advance)
			quiz.GET("/summary", c.quiz.Summary)
			quiz.DELETE("", c.quiz.Discard)
		}
	}
}
