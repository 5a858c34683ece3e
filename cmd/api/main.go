package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/DMailloux03/DominosMemoryGame/internal/auth"
	"github.com/DMailloux03/DominosMemoryGame/internal/catalog"
	"github.com/DMailloux03/DominosMemoryGame/internal/db"
	"github.com/DMailloux03/DominosMemoryGame/internal/game"
	"github.com/DMailloux03/DominosMemoryGame/internal/leaderboard"
	"github.com/DMailloux03/DominosMemoryGame/internal/middleware"
	"github.com/DMailloux03/DominosMemoryGame/internal/order"
	"github.com/DMailloux03/DominosMemoryGame/internal/storage"

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
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── PORTION DATA ─────────────────────────
	// Broken reference data must halt startup, not surface mid-game.
	cat, err := catalog.New()
	if err != nil {
		log.Fatal("❌ Portion catalog build failed:", err)
	}

	generator, err := order.New(cat)
	if err != nil {
		log.Fatal("❌ Order generator init failed:", err)
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

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(context.Background())
	if err != nil {
		log.Fatal("❌ R2 init failed:", err)
	}

	// ───────────────────────── AUTH ─────────────────────────
	playerRepo := auth.NewPostgresPlayerRepository(pgDB)
	authService := auth.NewService(playerRepo)
	authHandler := auth.NewHandler(authService)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	// ───────────────────────── CORE SERVICES ─────────────────────────
	leaderboardRepo := leaderboard.NewPostgresRepository(pgDB)
	leaderboardService := leaderboard.NewService(leaderboardRepo)
	gameService := game.NewService(generator, leaderboardService)

	// ───────────────────────── HANDLERS ─────────────────────────
	gameHandler := game.NewHandler(gameService)
	leaderboardHandler := leaderboard.NewHandler(leaderboardService)
	catalogHandler := catalog.NewHandler(cat, r2Client)

	// ───────────────────────── GAME ROUTES ─────────────────────────
	games := r.Group("/games")
	games.Use(middleware.AuthMiddleware())
	{
		games.POST("", gameHandler.Start)
		games.GET("/:id", gameHandler.Get)
		games.POST("/:id/check", gameHandler.Check)
		games.POST("/:id/reveal", gameHandler.Reveal)
		games.POST("/:id/next", gameHandler.Next)
		games.POST("/:id/special-requests", gameHandler.SetSpecialRequests)
	}

	// ───────────────────────── ADMIN ROUTES ─────────────────────────
	admin := r.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleAdmin),
	)
	{
		admin.POST("/reference/publish", catalogHandler.PublishReference)
	}

	// ───────────────────────── PUBLIC ─────────────────────────
	r.GET("/leaderboard", leaderboardHandler.Top)
	r.GET("/reference", catalogHandler.GetReference)

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	log.Println("🚀 API running at http://localhost:8000")
	r.Run(":8000")
}
