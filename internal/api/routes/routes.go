package routes

import (
	"net/http"

	"hackathon-backend/internal/api/handlers"
	"hackathon-backend/internal/api/middleware"
	"hackathon-backend/internal/config"
	"hackathon-backend/internal/repository"
	"hackathon-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, identityProvider service.IdentityProvider) *gin.Engine {
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.Metrics())

	validator := service.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	memberRepo := repository.NewTeamMemberRepository(db)
	hackathonRepo := repository.NewHackathonRepository(db)
	participationRepo := repository.NewParticipationRepository(db)

	// Initialize services
	userService := service.NewUserService(userRepo, teamRepo, memberRepo, hackathonRepo, participationRepo, validator)
	teamService := service.NewTeamService(teamRepo, userRepo, memberRepo, validator)
	hackathonService := service.NewHackathonService(hackathonRepo, teamRepo, participationRepo, validator)
	identityService := service.NewIdentityService(userService, identityProvider)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	userHandler := handlers.NewUserHandler(userService, teamService)
	teamHandler := handlers.NewTeamHandler(teamService)
	hackathonHandler := handlers.NewHackathonHandler(hackathonService)
	webhookHandler := handlers.NewWebhookHandler(identityService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		// User routes
		users := v1.Group("/users")
		{
			users.POST("", userHandler.CreateUser)
			users.GET("", userHandler.GetAllUsers)
			users.GET("/:id", userHandler.GetUserByID)
			users.PATCH("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
			users.POST("/:id/hackathons/:hackathonId", userHandler.JoinHackathon)
			users.DELETE("/:id/hackathons/:hackathonId", userHandler.LeaveHackathon)
			users.POST("/:id/teams/:teamId", userHandler.JoinTeam)
			users.DELETE("/:id/teams/:teamId", userHandler.LeaveTeam)
			users.GET("/:id/teams", userHandler.GetTeamsForUser)
		}

		// Team routes
		teams := v1.Group("/teams")
		{
			teams.POST("", teamHandler.CreateTeam)
			teams.GET("", teamHandler.GetAllTeams)
			teams.GET("/:id", teamHandler.GetTeamByID)
			teams.PATCH("/:id", teamHandler.UpdateTeam)
			teams.DELETE("/:id", teamHandler.DeleteTeam)
			teams.POST("/:id/members/:userId", teamHandler.AddMember)
			teams.DELETE("/:id/members/:userId", teamHandler.RemoveMember)
			teams.GET("/:id/members", teamHandler.GetMembers)
		}

		// Hackathon routes
		hackathons := v1.Group("/hackathons")
		{
			hackathons.POST("", hackathonHandler.CreateHackathon)
			hackathons.GET("", hackathonHandler.GetAllHackathons)
			hackathons.GET("/:id", hackathonHandler.GetHackathonByID)
			hackathons.PATCH("/:id", hackathonHandler.UpdateHackathon)
			hackathons.DELETE("/:id", hackathonHandler.DeleteHackathon)
			hackathons.POST("/:id/teams/:teamId", hackathonHandler.AddTeam)
			hackathons.DELETE("/:id/teams/:teamId", hackathonHandler.RemoveTeam)
			hackathons.GET("/:id/participants", hackathonHandler.GetParticipants)
			hackathons.GET("/:id/teams", hackathonHandler.GetTeams)
		}

		// Identity provider webhook
		v1.POST("/webhook", webhookHandler.HandleWebhook)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, handlers.ErrorResponse{Error: "route not found"})
	})

	return router
}
