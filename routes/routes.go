package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"wellbeing-backend/config"
	"wellbeing-backend/controllers"
	"wellbeing-backend/utils"
	"wellbeing-backend/web"
)

// Dependencies carries everything the router wires into handlers.
type Dependencies struct {
	Config      *config.Config
	Logger      zerolog.Logger
	Submissions *controllers.SubmissionHandler
	Pages       *controllers.PageHandler
	Admin       *controllers.AdminHandler
}

func SetupRouter(deps Dependencies) (*gin.Engine, error) {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		deps.Logger.Error().Interface("panic", recovered).Str("path", c.Request.URL.Path).Msg("Recovered from panic")
		utils.RespondWithError(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
	}))
	r.Use(config.PerformanceLogger(deps.Logger))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     deps.Config.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-CSRFToken"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}
	r.SetHTMLTemplate(tmpl)

	r.NoRoute(deps.Pages.NotFound)
	r.NoMethod(func(c *gin.Context) {
		utils.RespondWithError(c, http.StatusMethodNotAllowed, "Method not allowed.")
	})

	// Public pages
	r.GET("/", deps.Pages.Index)
	r.GET("/services", deps.Pages.Services)
	r.GET("/blog", deps.Pages.BlogList)
	r.GET("/blog/:slug", deps.Pages.BlogDetail)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	if deps.Config.RateLimitPerMinute > 0 {
		api.Use(utils.NewRateLimiter(deps.Config.RateLimitPerMinute).Middleware())
	}
	{
		api.POST("/submit-booking/", deps.Submissions.SubmitBooking)
		api.POST("/submit-contact/", deps.Submissions.SubmitContact)
		api.POST("/footer-contact/", deps.Submissions.FooterContact)
		// the handler answers non-POST methods itself
		api.Any("/subscribe-newsletter/", deps.Submissions.SubscribeNewsletter)
	}

	admin := r.Group("/admin/api")
	{
		admin.POST("/login", deps.Admin.Login)

		protected := admin.Group("")
		protected.Use(utils.AuthMiddleware(deps.Config.JWTSecret))

		protected.GET("/dashboard", deps.Admin.GetDashboardOverview)

		bookings := protected.Group("/bookings")
		{
			bookings.GET("", deps.Admin.ListBookings)
			bookings.GET("/:id", deps.Admin.GetBooking)
			bookings.PUT("/:id/status", deps.Admin.UpdateBookingStatus)
		}

		contacts := protected.Group("/contacts")
		{
			contacts.GET("", deps.Admin.ListContacts)
			contacts.PUT("/:id/read", deps.Admin.MarkContactRead)
		}

		subscribers := protected.Group("/subscribers")
		{
			subscribers.GET("", deps.Admin.ListSubscribers)
			subscribers.PUT("/:id/active", deps.Admin.SetSubscriberActive)
		}

		services := protected.Group("/services")
		{
			services.GET("", deps.Admin.ListServices)
			services.POST("", deps.Admin.CreateService)
			services.PUT("/:id", deps.Admin.UpdateService)
			services.DELETE("/:id", deps.Admin.DeleteService)
		}

		blogs := protected.Group("/blogs")
		{
			blogs.GET("", deps.Admin.ListBlogs)
			blogs.POST("", deps.Admin.CreateBlog)
			blogs.PUT("/:id/publish", deps.Admin.PublishBlog)
		}
	}

	return r, nil
}
