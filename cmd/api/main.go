package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"campusconnect/eligibility-engine/internal/config"
	"campusconnect/eligibility-engine/internal/engine"
	"campusconnect/eligibility-engine/internal/handlers"
	"campusconnect/eligibility-engine/internal/repositories"
	"campusconnect/eligibility-engine/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	oppRepo := repositories.NewOpportunityRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Load the skill vocabulary
	vocab, err := services.LoadSkillVocabulary(cfg.Vocabulary.Path)
	if err != nil {
		log.Fatalf("❌ Failed to load skill vocabulary: %v", err)
	}
	log.Printf("✅ Skill vocabulary loaded: %d skills, %d synonyms\n", len(vocab.Skills), len(vocab.Synonyms))

	// Initialize the engine
	extractor := engine.NewExtractor(cfg.Engine.MaxDocumentSize, cfg.Engine.ExtractionTimeout)
	profiles := engine.NewProfileBuilder(vocab.Skills, vocab.Synonyms)
	scorer := engine.NewScorer(engine.ScorerConfig{
		EligibilityThreshold: cfg.Engine.EligibilityThreshold,
		GatePassMultiplier:   cfg.Engine.GatePassMultiplier,
		GateFailMultiplier:   cfg.Engine.GateFailMultiplier,
	})
	suggester := engine.NewSuggestionGenerator(vocab.LearningTimes)
	matcher := engine.NewMatcher(scorer, cfg.Engine.MatcherConcurrency)
	log.Println("✅ Engine initialized successfully")

	// Initialize services
	analyzer := services.NewAnalyzerService(extractor, profiles, scorer, suggester)
	log.Println("✅ Services initialized successfully")

	// Initialize handlers
	analyzeHandler := handlers.NewAnalyzeHandler(analyzer, cfg.Engine.MaxDocumentSize)
	matchHandler := handlers.NewMatchHandler(analyzer, matcher, oppRepo, cfg.Engine.MaxDocumentSize)
	opportunityHandler := handlers.NewOpportunityHandler(oppRepo)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Campus Eligibility Engine API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Engine.MaxDocumentSize) + 1<<20,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// API endpoints
	api.Post("/analyze", analyzeHandler.HandleAnalyze)
	api.Post("/opportunities", opportunityHandler.HandleCreate)
	api.Get("/opportunities", opportunityHandler.HandleList)
	api.Get("/opportunities/:id", opportunityHandler.HandleGet)
	api.Delete("/opportunities/:id", opportunityHandler.HandleDelete)
	api.Post("/opportunities/match", matchHandler.HandleMatch)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Campus Eligibility Engine API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/analyze",
				"POST /api/v1/opportunities",
				"GET /api/v1/opportunities",
				"GET /api/v1/opportunities/:id",
				"DELETE /api/v1/opportunities/:id",
				"POST /api/v1/opportunities/match",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
