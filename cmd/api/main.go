package main

import (
	"context"
	"log"
	"os"
	"time"

	"easytocook/internal/auth"
	"easytocook/internal/db"
	"easytocook/internal/image"
	"easytocook/internal/ingest"
	"easytocook/internal/llm"
	"easytocook/internal/middleware"
	"easytocook/internal/recipe"
	"easytocook/internal/scrape"
	"easytocook/internal/session"
	"easytocook/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"GEMINI_API_KEY",
		"GEMINI_MODEL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── STORAGE (optional) ─────────────────────────
	var uploads image.Uploader
	if os.Getenv("R2_ENDPOINT") != "" {
		r2Client, err := storage.NewR2Client(context.Background())
		if err != nil {
			log.Fatal("❌ R2 init failed:", err)
		}
		uploads = r2Client
	} else {
		log.Println("R2 not configured, generated images keep provider URLs")
	}

	// ───────────────────────── AUTH ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	authService := auth.NewService(userRepo)
	authHandler := auth.NewHandler(authService)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	// ───────────────────────── PIPELINE ─────────────────────────
	recipeRepo := recipe.NewPostgresRepository(pgDB)
	recipeService := recipe.NewService(recipeRepo)
	recipeHandler := recipe.NewHandler(recipeService)

	sessions := session.NewManager(session.DefaultTTL)
	rewriter := llm.NewRewriter(llm.NewGeminiClient())
	images := image.NewGenerator(uploads)

	ingestService := ingest.NewService(
		scrape.NewScraper(),
		rewriter,
		images,
		recipeService,
		sessions,
	)
	ingestHandler := ingest.NewHandler(ingestService)

	// Drop abandoned imports in the background.
	go func() {
		for range time.Tick(10 * time.Minute) {
			if n := sessions.Sweep(); n > 0 {
				log.Printf("Swept %d expired ingest sessions", n)
			}
		}
	}()

	// ───────────────────────── INGEST ROUTES ─────────────────────────
	ingestGroup := r.Group("/ingest")
	ingestGroup.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleOperator, auth.RoleAdmin),
	)
	{
		ingestGroup.POST("/url", ingestHandler.ImportURL)
		ingestGroup.POST("/text", ingestHandler.PasteText)
		ingestGroup.POST("/caption", ingestHandler.ImportCaption)
		ingestGroup.GET("/pending", ingestHandler.Preview)
		ingestGroup.POST("/confirm", ingestHandler.Confirm)
		ingestGroup.POST("/cancel", ingestHandler.Cancel)
	}

	// ───────────────────────── ADMIN ROUTES ─────────────────────────
	admin := r.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleAdmin),
	)
	{
		admin.GET("/recipes", recipeHandler.ListByStatus)
		admin.PATCH("/recipes/:id/status", recipeHandler.UpdateStatus)
	}

	// ───────────────────────── PUBLIC ─────────────────────────
	r.GET("/recipes", recipeHandler.ListPublished)
	r.GET("/recipes/:slug", recipeHandler.GetBySlug)

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	log.Println("🚀 API running at http://localhost:8000")
	r.Run(":8000")
}
