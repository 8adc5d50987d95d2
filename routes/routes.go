package routes

import (
	"github.com/Dosada05/family-games/handlers"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/Dosada05/family-games/docs"
)

func SetupRoutes(
	router *chi.Mux,
	allowedOrigins []string,
	teamHandler *handlers.TeamHandler,
	gameHandler *handlers.GameHandler,
	bracketHandler *handlers.BracketHandler,
	leaderboardHandler *handlers.LeaderboardHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/swagger/*", httpSwagger.WrapHandler)

	router.Get("/ws/games/{gameID}", webSocketHandler.ServeGameWs)
	router.Get("/ws/competition", webSocketHandler.ServeCompetitionWs)

	router.Route("/api", func(r chi.Router) {
		r.Route("/teams", func(r chi.Router) {
			r.Get("/", teamHandler.ListTeams)
			r.Post("/", teamHandler.CreateTeam)
			r.Route("/{teamID}", func(r chi.Router) {
				r.Get("/", teamHandler.GetTeam)
				r.Put("/", teamHandler.UpdateTeam)
				r.Delete("/", teamHandler.DeleteTeam)
			})
		})

		r.Route("/games", func(r chi.Router) {
			r.Get("/", gameHandler.ListGames)
			r.Post("/", gameHandler.CreateGame)
			r.Route("/{gameID}", func(r chi.Router) {
				r.Get("/", gameHandler.GetGame)
				r.Put("/", gameHandler.UpdateGame)
				r.Delete("/", gameHandler.DeleteGame)
				r.Put("/points", gameHandler.UpdateGamePoints)

				r.Post("/bracket", bracketHandler.GenerateBracket)
				r.Get("/bracket", bracketHandler.GetBracket)
				r.Put("/bracket/rounds/{round}/matches/{matchID}", bracketHandler.SubmitMatchScore)
				r.Put("/scores/{teamID}", bracketHandler.UpdateOverallScore)
			})
		})

		r.Get("/brackets", bracketHandler.ListBrackets)
		r.Get("/leaderboard", leaderboardHandler.GetLeaderboard)
		r.Delete("/competition", leaderboardHandler.ResetCompetition)
	})
}
