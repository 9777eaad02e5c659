package routes

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gns-club/quiz-battle-system/handlers"
	"github.com/gns-club/quiz-battle-system/middleware"
)

func SetupRoutes(
	router *chi.Mux,
	logger *slog.Logger,
	allowedOrigins []string,
	dashboardHandler *handlers.DashboardHandler,
	teamHandler *handlers.TeamHandler,
	questionHandler *handlers.QuestionHandler,
	matchHandler *handlers.MatchHandler,
	battleHandler *handlers.BattleHandler,
	leaderboardHandler *handlers.LeaderboardHandler,
	adminHandler *handlers.AdminHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.Recoverer)
	router.Use(middleware.RequestLogger(logger))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Get("/stats", dashboardHandler.GetStats)

	router.Route("/teams", func(r chi.Router) {
		r.Get("/", teamHandler.ListTeams)
		r.Post("/", teamHandler.CreateTeam)
		r.Patch("/{teamID}", teamHandler.UpdateTeam)
		r.Delete("/{teamID}", teamHandler.DeleteTeam)
	})

	router.Route("/questions", func(r chi.Router) {
		r.Get("/", questionHandler.ListQuestions)
		r.Post("/", questionHandler.CreateQuestion)
		r.Post("/import", questionHandler.ImportQuestions)
		r.Get("/export", questionHandler.ExportQuestions)
		r.Post("/reset", questionHandler.ResetUsed)
		r.Patch("/{questionID}", questionHandler.UpdateQuestion)
		r.Delete("/{questionID}", questionHandler.DeleteQuestion)
	})

	router.Route("/matches", func(r chi.Router) {
		r.Get("/", matchHandler.ListMatches)
		r.Post("/generate", matchHandler.GenerateBracket)
		r.Get("/active", battleHandler.GetActiveMatch)
		r.Post("/{matchID}/start", battleHandler.StartMatch)
		r.Get("/{matchID}/state", battleHandler.GetBattleState)
		r.Get("/{matchID}/history", matchHandler.GetMatchHistory)
	})

	router.Route("/battle", func(r chi.Router) {
		r.Post("/{matchID}/answer", battleHandler.SubmitAnswer)
		r.Post("/{matchID}/timeout", battleHandler.Timeout)
	})

	router.Route("/leaderboard", func(r chi.Router) {
		r.Get("/", leaderboardHandler.GetLeaderboard)
		r.Get("/complete", leaderboardHandler.AllComplete)
	})

	router.Route("/admin", func(r chi.Router) {
		r.Post("/reset", adminHandler.ResetAll)
		r.Post("/seed", adminHandler.SeedDemo)
	})

	router.Get("/ws", webSocketHandler.ServeWs)
	router.Handle("/metrics", promhttp.Handler())
}
