package handler

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"bardabar-be-svc/internal/middleware"
	"bardabar-be-svc/internal/service"
	"bardabar-be-svc/pkg/logger"
)

// SetupRoutes sets up all API routes
func SetupRoutes(
	router *gin.Engine,
	menuService service.MenuService,
	eventService service.EventService,
	newsService service.NewsService,
	staffService service.StaffService,
	contactService service.ContactService,
	aboutService service.AboutService,
	adminService service.AdminService,
	jwtSecret string,
	logger *logger.Logger,
) {
	// Initialize handlers
	menuHandler := NewMenuHandler(menuService, logger)
	eventHandler := NewEventHandler(eventService, logger)
	newsHandler := NewNewsHandler(newsService, logger)
	staffHandler := NewStaffHandler(staffService, logger)
	contactHandler := NewContactHandler(contactService, logger)
	aboutHandler := NewAboutHandler(aboutService, logger)
	adminHandler := NewAdminHandler(adminService, jwtSecret, logger)

	adminOnly := middleware.AdminRequired(adminService, jwtSecret, logger)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		// Health check
		api.GET("/health", HealthCheck)

		// Menu routes
		menu := api.Group("/menu")
		{
			menu.GET("/categories", menuHandler.ListCategories)
			menu.POST("/categories", adminOnly, menuHandler.CreateCategory)
			menu.PUT("/categories/:id", adminOnly, menuHandler.UpdateCategory)
			menu.DELETE("/categories/:id", adminOnly, menuHandler.DeleteCategory)

			menu.GET("/items", menuHandler.ListItems)
			menu.POST("/items", adminOnly, menuHandler.CreateItem)
			menu.POST("/items/import", adminOnly, menuHandler.ImportItems)
			menu.PUT("/items/:id", adminOnly, menuHandler.UpdateItem)
			menu.DELETE("/items/:id", adminOnly, menuHandler.DeleteItem)
		}

		// Event routes
		events := api.Group("/events")
		{
			events.GET("", eventHandler.List)
			events.POST("", adminOnly, eventHandler.Create)
			events.PUT("/:id", adminOnly, eventHandler.Update)
			events.DELETE("/:id", adminOnly, eventHandler.Delete)
		}

		// News routes
		news := api.Group("/news")
		{
			news.GET("", newsHandler.List)
			news.POST("", adminOnly, newsHandler.Create)
			news.PUT("/:id", adminOnly, newsHandler.Update)
			news.DELETE("/:id", adminOnly, newsHandler.Delete)
		}

		// Staff routes
		staff := api.Group("/staff")
		{
			staff.GET("", staffHandler.List)
			staff.POST("", adminOnly, staffHandler.Create)
			staff.PUT("/:id", adminOnly, staffHandler.Update)
			staff.DELETE("/:id", adminOnly, staffHandler.Delete)
		}

		// Contact routes: submitting is public, reading is not
		contacts := api.Group("/contacts")
		{
			contacts.POST("", contactHandler.Submit)
			contacts.GET("", adminOnly, contactHandler.List)
		}

		// About content routes
		about := api.Group("/about")
		{
			about.GET("", aboutHandler.Get)
			about.PUT("", adminOnly, aboutHandler.Update)
		}

		// Admin routes
		admin := api.Group("/admin")
		{
			admin.GET("/status", adminHandler.Status)
			admin.POST("/verify", adminHandler.Verify)
			admin.POST("/password", adminOnly, adminHandler.SetPassword)
		}
	}
}

// HealthCheck reports service liveness
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"service": "bardabar-be-svc",
	})
}
