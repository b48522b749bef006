package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/workfair-app/workfair-backend/internal/auth"
	"github.com/workfair-app/workfair-backend/internal/config"
	"github.com/workfair-app/workfair-backend/internal/database"
	"github.com/workfair-app/workfair-backend/internal/events"
	"github.com/workfair-app/workfair-backend/internal/handlers"
	"github.com/workfair-app/workfair-backend/internal/services"
)

func main() {
	// .env is optional outside development.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Configuration error: ", err)
	}

	db := database.Connect(cfg.DatabaseURL)
	if err := database.Migrate(db); err != nil {
		log.Fatal("Migration failed: ", err)
	}
	if err := database.SeedNationalities(db); err != nil {
		log.Fatal("Nationality seed failed: ", err)
	}

	publisher := events.NewPublisher(cfg.RedisURL)
	tokens := auth.NewTokenService(cfg.JWTSecret)
	resolver := services.NewOwnershipResolver(db)

	authService := services.NewAuthService(db, tokens)
	jobService := services.NewJobService(db, resolver)
	applicationService := services.NewApplicationService(db, resolver, publisher)
	employerService := services.NewEmployerService(db)
	jobSeekerService := services.NewJobSeekerService(db)
	learningService := services.NewLearningService(db)
	postService := services.NewPostService(db)

	authHandler := handlers.NewAuthHandler(authService)
	jobHandler := handlers.NewJobHandler(jobService)
	applicationHandler := handlers.NewApplicationHandler(applicationService)
	employerHandler := handlers.NewEmployerHandler(employerService)
	jobSeekerHandler := handlers.NewJobSeekerHandler(jobSeekerService)
	learningHandler := handlers.NewLearningHandler(learningService)
	postHandler := handlers.NewPostHandler(postService)

	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true // For development only
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/signup", authHandler.Signup)
		authRoutes.POST("/signup/employer", authHandler.SignupEmployer)
		authRoutes.POST("/signin/new", authHandler.Signin)
		authRoutes.GET("/signup-user/:user_id", authHandler.GetSignupUser)
	}

	jobs := r.Group("/jobs")
	{
		jobs.GET("", jobHandler.ListJobs)
		jobs.POST("", jobHandler.CreateJob)
		jobs.GET("/:job_id", jobHandler.GetJob)
		jobs.PUT("/:job_id", jobHandler.UpdateJob)
		jobs.PATCH("/:job_id/status", jobHandler.UpdateJobStatus)
		jobs.DELETE("/:job_id", jobHandler.DeleteJob)
	}

	applications := r.Group("/applications")
	{
		applications.GET("", applicationHandler.ListApplications)
		applications.POST("", applicationHandler.CreateApplication)
		applications.PATCH("/:application_id", applicationHandler.UpdateApplication)
	}

	employer := r.Group("/employer")
	{
		employer.GET("/profile/:user_id", employerHandler.GetProfile)
		employer.POST("/profile", employerHandler.UpsertProfile)
		employer.GET("/stores/:user_id", employerHandler.ListStores)
		employer.GET("/stores/:user_id/:store_id", employerHandler.GetStore)
		employer.POST("/stores", employerHandler.CreateStore)
		employer.PATCH("/stores/:user_id/:store_id/main", employerHandler.SetMainStore)
	}

	jobSeeker := r.Group("/job-seeker")
	{
		jobSeeker.POST("/profile", jobSeekerHandler.UpsertProfile)
		jobSeeker.GET("/profiles", jobSeekerHandler.ListProfiles)
		jobSeeker.GET("/profile/:user_id", jobSeekerHandler.GetProfile)
	}

	me := r.Group("/profile", auth.Middleware(tokens))
	{
		me.GET("/me", jobSeekerHandler.GetMe)
		me.PUT("/me", jobSeekerHandler.UpdateMe)
	}

	r.GET("/learning/summary", learningHandler.GetSummary)
	r.POST("/leveltest", learningHandler.SubmitLevelTest)

	posts := r.Group("/api/posts")
	{
		posts.GET("", postHandler.ListPosts)
		posts.GET("/:post_id", postHandler.GetPost)
	}

	log.Printf("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start: ", err)
	}
}
