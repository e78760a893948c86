package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khoahotran/portfolio-builder/pkg/logger"
)

type Handlers struct {
	Portfolio *PortfolioHandler
	Wizard    *WizardHandler
	Preview   *PreviewHandler
	// Metrics is optional. When set, every request is counted and
	// GET /metrics is served.
	Metrics *Metrics
}

func NewRouter(h Handlers, log logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(log))
	if h.Metrics != nil {
		router.Use(h.Metrics.Middleware())
		router.GET("/metrics", gin.WrapH(h.Metrics.Handler()))
	}
	router.Use(ErrorMiddleware(log))

	router.GET("/preview", h.Preview.Preview)

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })

		api.GET("/portfolio", h.Portfolio.GetPortfolio)
		api.PUT("/portfolio/:section", h.Portfolio.ReplaceSection)

		wz := api.Group("/wizard")
		{
			wz.GET("", h.Wizard.GetWizard)
			wz.POST("/next", h.Wizard.Next)
			wz.POST("/prev", h.Wizard.Prev)
			wz.PUT("/step", h.Wizard.JumpTo)

			wz.GET("/personal-info", h.Wizard.GetPersonalInfo)
			wz.PATCH("/personal-info", h.Wizard.PatchPersonalInfo)

			projects := wz.Group("/projects")
			{
				projects.GET("", h.Wizard.ListProjects)
				projects.POST("", h.Wizard.AddProject)
				projects.PATCH("/:id", h.Wizard.PatchProject)
				projects.DELETE("/:id", h.Wizard.DeleteProject)
				projects.POST("/:id/technologies", h.Wizard.AddTechnology)
				projects.DELETE("/:id/technologies", h.Wizard.RemoveTechnology)
			}

			wz.GET("/experience", h.Wizard.GetExperience)
			wz.POST("/experience", h.Wizard.AddExperience)
			wz.PATCH("/experience/:id", h.Wizard.PatchExperience)
			wz.DELETE("/experience/:id", h.Wizard.DeleteExperience)
			wz.POST("/skills", h.Wizard.AddSkill)
			wz.DELETE("/skills", h.Wizard.RemoveSkill)

			wz.GET("/contact", h.Wizard.GetContact)
			wz.PATCH("/social", h.Wizard.PatchSocial)
			wz.POST("/testimonials", h.Wizard.AddTestimonial)
			wz.PATCH("/testimonials/:id", h.Wizard.PatchTestimonial)
			wz.DELETE("/testimonials/:id", h.Wizard.DeleteTestimonial)
		}
	}
	return router
}
