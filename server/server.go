package server

import (
	"taskboard-server/auth"
	"taskboard-server/confs"
	"taskboard-server/db"
	"taskboard-server/handlers"
	httpHandler "taskboard-server/handlers/http"
	"taskboard-server/repositories"
	"taskboard-server/services"
	"taskboard-server/usecases"
	"taskboard-server/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	app      *gin.Engine
	db       db.Database
	tokens   *auth.TokenService
	recorder *services.ActivityRecorder
}

func NewServer(database db.Database, jwtSecret string) *Server {
	return &Server{
		app:    gin.Default(),
		db:     database,
		tokens: auth.NewTokenService(jwtSecret),
	}
}

// Routes wires repositories, use cases and handlers onto the engine and
// returns it. Split from Start so tests can drive the router directly.
func (s *Server) Routes() *gin.Engine {
	// Setup CORS middleware
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	s.app.Use(cors.New(config))

	// Setup healthcheck route
	s.app.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "OK",
		})
	})

	// Initialize repositories
	userRepo := repositories.NewUserPgRepository(s.db)
	columnRepo := repositories.NewColumnPgRepository(s.db)
	cardRepo := repositories.NewCardPgRepository(s.db)
	commentRepo := repositories.NewCommentPgRepository(s.db)
	activityRepo := repositories.NewActivityPgRepository(s.db)

	// Initialize use cases
	userUseCase := usecases.NewUserUseCase(userRepo, s.tokens)
	boardUseCase := usecases.NewBoardUseCase(columnRepo, cardRepo, commentRepo)

	// WebSocket manager and activity recorder
	manager := ws.NewManager()
	s.recorder = services.NewActivityRecorder(activityRepo, manager)

	// Initialize handlers
	userHandler := httpHandler.NewUserHandler(userUseCase)
	columnHandler := httpHandler.NewColumnHandler(boardUseCase, s.recorder)
	cardHandler := httpHandler.NewCardHandler(boardUseCase, s.recorder)
	commentHandler := httpHandler.NewCommentHandler(boardUseCase, s.recorder)
	activityHandler := handlers.NewActivityHandler(s.recorder)
	wsHandler := handlers.NewWSHandler(manager, s.tokens, userUseCase)

	requireAuth := httpHandler.RequireAuth(s.tokens, userUseCase)
	sameUser := httpHandler.RequireSameUser()
	columnOwner := httpHandler.RequireColumnOwnership(boardUseCase)
	commentOwner := httpHandler.RequireCommentOwnership(boardUseCase)

	// User routes
	user := s.app.Group("/user")
	{
		user.POST("/register", userHandler.Register)
		user.POST("/login", userHandler.Login)
		user.GET("/:id", requireAuth, userHandler.GetByID)

		// Column routes
		columns := user.Group("/:id/columns", requireAuth, sameUser)
		{
			columns.GET("", columnHandler.GetColumns)
			columns.POST("", columnHandler.AddColumn)
			columns.PATCH("/:columnId", columnOwner, columnHandler.UpdateColumn)
			columns.DELETE("/:columnId", columnOwner, columnHandler.DeleteColumn)

			// Card routes
			columns.GET("/:columnId/cards", cardHandler.GetCards)
			columns.POST("/:columnId", columnOwner, cardHandler.AddCard)
			columns.PATCH("/:columnId/cards/:cardId", columnOwner, cardHandler.UpdateCard)
			columns.DELETE("/:columnId/cards/:cardId", columnOwner, cardHandler.DeleteCard)

			// Comment routes
			columns.GET("/:columnId/cards/:cardId/comments", commentHandler.GetComments)
			columns.POST("/:columnId/cards/:cardId", columnOwner, commentHandler.AddComment)
			columns.PATCH("/:columnId/cards/:cardId/comments/:commentId", columnOwner, commentOwner, commentHandler.UpdateComment)
			columns.DELETE("/:columnId/cards/:cardId/comments/:commentId", columnOwner, commentOwner, commentHandler.DeleteComment)
		}
	}

	// Activity feed routes
	activity := s.app.Group("/activity", requireAuth)
	{
		activity.GET("", activityHandler.GetActivity)
		activity.GET("/history", activityHandler.GetHistory)
		activity.GET("/stats", activityHandler.GetStats)
		activity.POST("/flush", activityHandler.Flush)
		activity.GET("/connected", wsHandler.GetConnectedUsers)
	}

	// Live event stream; token travels in the query string
	s.app.GET("/ws", wsHandler.HandleUserWS)

	return s.app
}

func (s *Server) Start() {
	s.Routes()
	s.recorder.Start()

	addr := "0.0.0.0:" + confs.GetEnvAsString("PORT", "7777")
	if err := s.app.Run(addr); err != nil {
		panic(err)
	}
}
