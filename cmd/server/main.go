package main

import (
	"net/http"
	"os"

	"github.com/faizuddin0019/werwolf-sub002/internal/auth"
	"github.com/faizuddin0019/werwolf-sub002/internal/config"
	"github.com/faizuddin0019/werwolf-sub002/internal/database"
	"github.com/faizuddin0019/werwolf-sub002/internal/engine"
	"github.com/faizuddin0019/werwolf-sub002/internal/handler"
	"github.com/faizuddin0019/werwolf-sub002/internal/hub"
	"github.com/faizuddin0019/werwolf-sub002/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	// Swagger imports
	_ "github.com/faizuddin0019/werwolf-sub002/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           Werwolf Session API
// @version         1.0
// @description     Phase-driven werewolf game sessions for browser clients.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// Connect to the database
	database.Connect(config.AppConfig.DatabaseURL)

	eventHub := hub.NewHub(log.With().Str("component", "hub").Logger())
	eng := engine.New(store.NewGormStore(database.DB), eventHub, log.With().Str("component", "engine").Logger())
	h := handler.New(eng, eventHub)

	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		games := apiV1.Group("/games")
		{
			// Entry points issue the client token themselves.
			games.POST("", h.CreateGame)
			games.POST("/:code/join", h.JoinGame)

			// Everything else requires the token from create/join.
			session := games.Group("")
			session.Use(auth.ClientAuthMiddleware())
			{
				session.GET("/:code", h.GetSession)
				session.GET("/:code/events", h.StreamEvents)

				// Host controls
				session.POST("/:code/assign_roles", h.AssignRoles)
				session.POST("/:code/next_phase", h.NextPhase)
				session.POST("/:code/reveal_dead", h.RevealDead)
				session.POST("/:code/begin_voting", h.BeginVoting)
				session.POST("/:code/final_vote", h.FinalVote)
				session.POST("/:code/eliminate_player", h.EliminatePlayer)
				session.POST("/:code/end_game", h.EndGame)

				// Night actions and voting
				session.POST("/:code/wolf_select", h.WolfSelect)
				session.POST("/:code/doctor_save", h.DoctorSave)
				session.POST("/:code/police_inspect", h.PoliceInspect)
				session.POST("/:code/vote", h.Vote)

				// Membership
				session.POST("/:code/request_leave", h.RequestLeave)
				session.POST("/:code/approve_leave", h.ApproveLeave)
				session.POST("/:code/deny_leave", h.DenyLeave)
				session.POST("/:code/remove_player", h.RemovePlayer)
			}
		}
	}

	addr := ":" + config.AppConfig.Port
	log.Info().Str("addr", addr).Msg("server is running")
	log.Info().Msg("swagger UI is available at http://localhost:8080/swagger/index.html")
	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
