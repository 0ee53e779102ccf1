package routes

import (
	"scouting-planner-backend/internal/api/handlers"
	"scouting-planner-backend/internal/api/middleware"
	"scouting-planner-backend/internal/auth"
	"scouting-planner-backend/internal/config"
	"scouting-planner-backend/internal/database/models"
	"scouting-planner-backend/internal/repository"
	"scouting-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validate := validator.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	scoutGroupRepo := repository.NewScoutGroupRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)
	appearanceRepo := repository.NewAppearanceRepository(db)

	// Initialize services
	mediaStore := service.NewMediaStore(cfg)
	userService := service.NewUserService(userRepo, validate)
	profileService := service.NewProfileService(profileRepo, mediaStore, validate)
	scoutGroupService := service.NewScoutGroupService(scoutGroupRepo, validate)
	teamService := service.NewTeamService(teamRepo, validate)
	membershipService := service.NewMembershipService(membershipRepo, teamRepo, validate)
	appearanceService := service.NewAppearanceService(appearanceRepo, mediaStore)

	// Initialize auth service and middleware
	authService := auth.NewService(cfg, userRepo)
	authHandler := auth.NewHandler(authService)
	authMiddleware := auth.NewMiddleware(authService, userRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	userHandler := handlers.NewUserHandler(userService)
	profileHandler := handlers.NewProfileHandler(profileService)
	scoutGroupHandler := handlers.NewScoutGroupHandler(scoutGroupService)
	teamHandler := handlers.NewTeamHandler(teamService)
	membershipHandler := handlers.NewMembershipHandler(membershipService)
	appearanceHandler := handlers.NewAppearanceHandler(appearanceService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Uploaded media is served statically
	router.Static("/static", "static")

	// Public routes
	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Scouting Planner API ready"})
	})
	router.GET("/appearance", appearanceHandler.GetAppearance)

	// Auth routes
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	// Authenticated routes
	authed := router.Group("")
	authed.Use(authMiddleware.RequireAuth())
	{
		// Own account and profile
		authed.GET("/users/me", userHandler.GetMe)
		authed.GET("/users/me/profile", profileHandler.GetMyProfile)
		authed.PUT("/users/me/profile", profileHandler.UpsertMyProfile)

		// Role-scoped entity routes; ownership checks live in the services
		authed.GET("/teams", teamHandler.ListTeams)
		authed.GET("/teams/:id", teamHandler.GetTeam)
		authed.POST("/teams", authMiddleware.RequireRole(models.RoleCoordinador), teamHandler.CreateTeam)
		authed.PUT("/teams/:id", teamHandler.UpdateTeam)
		authed.DELETE("/teams/:id", teamHandler.DeleteTeam)

		authed.GET("/memberships", membershipHandler.ListMemberships)
		authed.POST("/memberships", membershipHandler.CreateMembership)
		authed.DELETE("/memberships/:id", membershipHandler.DeleteMembership)

		// Administrator-only routes
		admin := authed.Group("")
		admin.Use(authMiddleware.RequireRole(models.RoleAdministrador))
		{
			admin.GET("/users", userHandler.ListUsers)
			admin.GET("/users/:id", userHandler.GetUser)
			admin.POST("/users", userHandler.CreateUser)
			admin.PUT("/users/:id", userHandler.UpdateUser)
			admin.DELETE("/users/:id", userHandler.DeleteUser)

			admin.GET("/scout-groups", scoutGroupHandler.ListScoutGroups)
			admin.GET("/scout-groups/:id", scoutGroupHandler.GetScoutGroup)
			admin.POST("/scout-groups", scoutGroupHandler.CreateScoutGroup)
			admin.PUT("/scout-groups/:id", scoutGroupHandler.UpdateScoutGroup)
			admin.DELETE("/scout-groups/:id", scoutGroupHandler.DeleteScoutGroup)

			admin.PUT("/appearance", appearanceHandler.UpdateAppearance)
		}
	}

	return router
}
