package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"eduverse-quiz-service/internal/adaptive"
	"eduverse-quiz-service/internal/config"
	"eduverse-quiz-service/internal/db"
	"eduverse-quiz-service/internal/event"
	"eduverse-quiz-service/internal/gamification"
	"eduverse-quiz-service/internal/handlers"
	"eduverse-quiz-service/internal/repository"
	"eduverse-quiz-service/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	if cfg.MongoURI == "" {
		log.Fatal("MONGO_URI is required")
	}
	db.InitMongo(cfg.MongoURI)

	// RabbitMQ event publisher (optional)
	var publisher *event.EventPublisher
	if cfg.RabbitMQURI != "" && cfg.RabbitMQExchange != "" {
		var err error
		publisher, err = event.NewEventPublisher(cfg.RabbitMQURI, cfg.RabbitMQExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, events will not be published")
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	database := db.Client.Database(cfg.MongoDatabase)

	// Questions
	questionRepo := repository.NewQuestionRepository(database)
	questionService := service.NewQuestionService(questionRepo)
	questionHandler := handlers.NewQuestionHandler(questionService)

	// Quizzes
	quizRepo := repository.NewQuizRepository(database)
	quizService := service.NewQuizService(quizRepo)
	quizHandler := handlers.NewQuizHandler(quizService)

	// Gamification hook: attempts, XP, badges
	attemptRepo := repository.NewAttemptRepository(database)
	statsRepo := repository.NewStatsRepository(database)
	var hookPublisher gamification.Publisher
	if publisher != nil {
		hookPublisher = publisher
	}
	gamificationService := gamification.NewService(attemptRepo, statsRepo, hookPublisher)

	attemptService := service.NewAttemptService(attemptRepo)
	attemptHandler := handlers.NewAttemptHandler(attemptService, gamificationService)

	// Difficulty adapter: local rule, optionally fronted by the advisory
	// model endpoint.
	var adapter adaptive.Adapter = adaptive.NewHeuristic()
	if cfg.AdvisorBaseURL != "" {
		advisor := adaptive.NewAdvisorClient(
			cfg.AdvisorBaseURL,
			cfg.AdvisorAPIKey,
			cfg.AdvisorModel,
			time.Duration(cfg.AdvisorTimeoutSeconds)*time.Second,
		)
		adapter = adaptive.NewAdvisedAdapter(advisor, adaptive.NewHeuristic())
		log.Println("Difficulty advisor enabled:", cfg.AdvisorBaseURL)
	}

	// Sessions: the quiz engine
	sessionRepo := repository.NewSessionRepository(database)
	sessionService := service.NewSessionService(
		sessionRepo,
		quizRepo,
		questionRepo,
		adapter,
		gamificationService,
	)
	sessionHandler := handlers.NewSessionHandler(sessionService)

	publicQuestion := r.Group("/public/quiz/question")
	{
		publicQuestion.GET("/", questionHandler.ListQuestions)
		publicQuestion.GET("/:id", questionHandler.GetQuestion)
	}

	protectedQuestion := r.Group("/protected/quiz/question", requireUser())
	{
		protectedQuestion.POST("/", questionHandler.CreateQuestion)
		protectedQuestion.PUT("/:id", questionHandler.UpdateQuestion)
		protectedQuestion.DELETE("/:id", questionHandler.DeleteQuestion)
	}

	publicQuiz := r.Group("/public/quiz/quiz")
	{
		publicQuiz.GET("/", quizHandler.ListQuizzes)
		publicQuiz.GET("/:id", quizHandler.GetQuiz)
		publicQuiz.GET("/:id/attempts", attemptHandler.GetAttemptsByQuiz)
	}

	protectedQuiz := r.Group("/protected/quiz/quiz", requireUser())
	{
		protectedQuiz.POST("/", quizHandler.CreateQuiz)
		protectedQuiz.PUT("/:id", quizHandler.UpdateQuiz)
		protectedQuiz.DELETE("/:id", quizHandler.DeleteQuiz)
	}

	publicUser := r.Group("/public/quiz/user")
	{
		publicUser.GET("/:id/attempts", func(c *gin.Context) {
			attemptHandler.GetAttemptsByUser(c)
			if publisher != nil {
				publisher.Publish("user.attempts", gin.H{"id": c.Param("id")})
			}
		})
		publicUser.GET("/:id/stats", attemptHandler.GetUserStats)
	}

	setupSessionRoutes(r, sessionHandler, publisher)

	log.Println("quiz engine listening on :" + cfg.Port)
	r.Run(":" + cfg.Port)
}

// requireUser rejects requests without the user id header set by the
// gateway's auth layer.
func requireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("X-User-ID") == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
				"code":  "MISSING_USER_ID",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

func setupSessionRoutes(r *gin.Engine, sessionHandler *handlers.SessionHandler, publisher *event.EventPublisher) {
	protectedSession := r.Group("/protected/quiz/session", requireUser())

	protectedSession.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		return fmt.Sprintf("[SESSION] %v | %3d | %13v | %15s | %-7s %#v\n%s",
			param.TimeStamp.Format("2006/01/02 - 15:04:05"),
			param.StatusCode,
			param.Latency,
			param.ClientIP,
			param.Method,
			param.Path,
			param.ErrorMessage,
		)
	}))

	{
		// Start a new adaptive session
		protectedSession.POST("/", func(c *gin.Context) {
			sessionHandler.StartSession(c)
			if publisher != nil {
				publisher.Publish("quiz.session.started", gin.H{
					"user_id":   c.GetHeader("X-User-ID"),
					"timestamp": time.Now(),
				})
			}
		})

		// Submit an answer; the engine grades, adapts and advances
		protectedSession.POST("/:id/answer", func(c *gin.Context) {
			sessionHandler.SubmitAnswer(c)
			if publisher != nil {
				publisher.Publish("quiz.answer.submitted", gin.H{
					"session_id": c.Param("id"),
					"user_id":    c.GetHeader("X-User-ID"),
					"timestamp":  time.Now(),
				})
			}
		})
	}

	publicSession := r.Group("/public/quiz/session")
	{
		publicSession.GET("/:id", func(c *gin.Context) {
			sessionHandler.GetSession(c)
			if publisher != nil {
				publisher.Publish("quiz.session.viewed", gin.H{
					"session_id": c.Param("id"),
					"timestamp":  time.Now(),
				})
			}
		})
	}
}
