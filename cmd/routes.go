package main

import (
	"net/http"
	"time"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"

	"miraBack/internal/models"
)

func (app *application) JWTMiddlewareWithRole(requiredRole int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return app.JWTMiddleware(next, requiredRole)
	}
}

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	authMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole(0))
	entrepriseMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole(models.RoleEntreprise))
	freelanceMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole(models.RoleFreelance))

	limiter := NewRedisLimiter(app.redis)
	loginLimited := standardMiddleware.Append(app.rateLimit(limiter, 10, time.Minute))

	mux := pat.New()

	// Users
	mux.Post("/user/sign_up", loginLimited.ThenFunc(app.userHandler.SignUp))
	mux.Post("/user/sign_in", loginLimited.ThenFunc(app.userHandler.SignIn))
	mux.Post("/user/sign_out", authMiddleware.ThenFunc(app.userHandler.SignOut))
	mux.Get("/user/me", authMiddleware.ThenFunc(app.userHandler.GetMe))
	mux.Get("/user/:id", authMiddleware.ThenFunc(app.userHandler.GetUserByID))
	mux.Put("/user", authMiddleware.ThenFunc(app.userHandler.UpdateUser))
	mux.Put("/user/password", authMiddleware.ThenFunc(app.userHandler.UpdatePassword))
	mux.Post("/user/avatar", authMiddleware.ThenFunc(app.userHandler.UploadAvatar))
	mux.Post("/user/cv", freelanceMiddleware.ThenFunc(app.userHandler.UploadCV))
	mux.Get("/talents", authMiddleware.ThenFunc(app.userHandler.SearchTalents))

	// Missions
	mux.Post("/mission", entrepriseMiddleware.ThenFunc(app.missionHandler.CreateMission))
	mux.Get("/mission/search", authMiddleware.ThenFunc(app.missionHandler.SearchMissions))
	mux.Get("/mission/mine", authMiddleware.ThenFunc(app.missionHandler.GetMyMissions))
	mux.Get("/mission/:id", authMiddleware.ThenFunc(app.missionHandler.GetMissionByID))
	mux.Get("/mission", authMiddleware.ThenFunc(app.missionHandler.GetMissions))

	// Postulations
	mux.Post("/postulation", freelanceMiddleware.ThenFunc(app.postulationHandler.Apply))
	mux.Get("/postulation/mine", freelanceMiddleware.ThenFunc(app.postulationHandler.GetMine))
	mux.Get("/mission/:id/postulations", entrepriseMiddleware.ThenFunc(app.postulationHandler.GetByMission))
	mux.Put("/postulation/:id/accept", entrepriseMiddleware.ThenFunc(app.postulationHandler.Accept))
	mux.Put("/postulation/:id/reject", entrepriseMiddleware.ThenFunc(app.postulationHandler.Reject))

	// Completion and ratings
	mux.Post("/mission/:id/confirm", entrepriseMiddleware.ThenFunc(app.avisHandler.Confirm))
	mux.Get("/avis/freelance/:id", authMiddleware.ThenFunc(app.avisHandler.GetByFreelance))
	mux.Get("/avis/mission/:id", authMiddleware.ThenFunc(app.avisHandler.GetByMission))

	// Chat
	mux.Get("/ws", authMiddleware.ThenFunc(app.WebSocketHandler))
	mux.Post("/message", authMiddleware.ThenFunc(app.messageHandler.CreateMessage))
	mux.Get("/mission/:id/messages", authMiddleware.ThenFunc(app.messageHandler.GetMessagesForMission))

	// Feed
	mux.Post("/post", authMiddleware.ThenFunc(app.postHandler.CreatePost))
	mux.Get("/feed", authMiddleware.ThenFunc(app.postHandler.GetFeed))
	mux.Get("/post/user/:id", authMiddleware.ThenFunc(app.postHandler.GetPostsByUser))
	mux.Del("/post/:id", authMiddleware.ThenFunc(app.postHandler.DeletePost))

	// Follows
	mux.Post("/follow/:id", authMiddleware.ThenFunc(app.followHandler.Follow))
	mux.Del("/follow/:id", authMiddleware.ThenFunc(app.followHandler.Unfollow))
	mux.Get("/user/:id/followers", authMiddleware.ThenFunc(app.followHandler.GetFollowers))
	mux.Get("/user/:id/following", authMiddleware.ThenFunc(app.followHandler.GetFollowing))
	mux.Get("/user/:id/follow_counts", authMiddleware.ThenFunc(app.followHandler.GetCounts))

	// Device tokens
	mux.Post("/device_token", authMiddleware.ThenFunc(app.notificationHandler.RegisterToken))

	return standardMiddleware.Then(mux)
}
