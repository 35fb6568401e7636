package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/burak/campusplace/internal/app/controllers"
	"github.com/burak/campusplace/internal/app/models"
	"github.com/burak/campusplace/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	placementController *controllers.PlacementController,
	jobController *controllers.JobController,
	networkController *controllers.NetworkController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/profile", authController.Profile)

		// Placement routes are restricted to college accounts and their
		// staff; role checks happen here, identity resolution in services.
		placements := authenticated.Group("/placements")
		placements.Use(authMiddleware.RoleRequired(
			string(models.RoleCollege),
			string(models.RoleCollegeMember),
		))
		{
			placements.POST("/upload", placementController.Upload)
			placements.GET("/filters", placementController.Filters)
			placements.GET("/records", placementController.Records)
			placements.GET("/stats", placementController.Stats)
			placements.GET("/companies", placementController.Companies)
		}

		jobs := authenticated.Group("/jobs")
		{
			jobs.GET("", jobController.List)
			jobs.GET("/:id", jobController.GetByID)

			jobsCompanyProtected := jobs.Group("")
			jobsCompanyProtected.Use(authMiddleware.RoleRequired(string(models.RoleCompany)))
			{
				jobsCompanyProtected.POST("", jobController.Create)
			}
		}

		network := authenticated.Group("/network")
		{
			network.GET("", networkController.List)
			network.GET("/colleges", networkController.Colleges)

			networkPartnerProtected := network.Group("")
			networkPartnerProtected.Use(authMiddleware.RoleRequired(
				string(models.RoleCollege),
				string(models.RoleCompany),
			))
			{
				networkPartnerProtected.POST("/connect", networkController.Connect)
				networkPartnerProtected.POST("/respond", networkController.Respond)
			}
		}
	}
}
