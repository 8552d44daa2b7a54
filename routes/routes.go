package routes

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-console/auth"
	"hotel-console/config"
	"hotel-console/controllers"
	"hotel-console/middleware"
	"hotel-console/models"
	"hotel-console/permissions"
	"hotel-console/services"
)

const dashboardPage = "/dashboard.html"

// Services is everything the router wires into controllers.
type Services struct {
	Auth         *auth.Service
	Clients      *services.ClientService
	Rooms        *services.RoomService
	Reservations *services.ReservationService
	Catalog      *services.ServiceCatalog
	Staff        *services.StaffService
	Dashboard    *services.DashboardService
}

func mount[V any](g *gin.RouterGroup, rc *controllers.ResourceController[V]) {
	g.GET("", rc.List)
	g.GET("/export.csv", rc.ExportCSV)
	g.GET("/export.pdf", rc.ExportPDF)
	g.GET("/:id", rc.Get)
	g.POST("", rc.Create)
	g.PUT("/:id", rc.Update)
	g.DELETE("/:id", rc.Delete)
}

func SetupRouter(cfg *config.Config, svc Services, log *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger(log))

	allowCredentials := true
	for _, origin := range cfg.CORSOrigins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	ac := controllers.NewAuthController(svc.Auth, cfg.EntryPage, cfg.SessionTTL, log)
	limiter := middleware.NewRateLimiter(cfg.LoginRatePerMin)

	api := r.Group("/api")
	api.POST("/auth/login", limiter.Middleware(), ac.Login)
	api.POST("/auth/logout", ac.Logout)

	private := api.Group("", middleware.CheckAuth(svc.Auth, cfg.EntryPage, log))
	{
		private.GET("/auth/session", ac.Session)
		private.GET("/me/capabilities", controllers.Capabilities)
		private.GET("/dashboard", controllers.NewDashboardController(svc.Dashboard).Get)

		mount(private.Group("/"+models.ClientsKey), controllers.NewResourceController[*models.Client](svc.Clients, log))
		mount(private.Group("/"+models.RoomsKey), controllers.NewResourceController[*models.Room](svc.Rooms, log))
		mount(private.Group("/"+models.ReservationsKey), controllers.NewResourceController[*services.ReservationView](svc.Reservations, log))
		mount(private.Group("/"+models.ServicesKey, middleware.RequirePage(permissions.PageServices, dashboardPage)),
			controllers.NewResourceController[*models.Service](svc.Catalog, log))
		mount(private.Group("/"+models.StaffKey, middleware.RequirePage(permissions.PageStaff, dashboardPage)),
			controllers.NewResourceController[*models.Staff](svc.Staff, log))
	}

	return r
}
