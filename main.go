package main

import (
	"log"
	"net/http"

	"ses/config"
	"ses/database"
	"ses/gemini"
	"ses/handlers"
	"ses/middleware"
	"ses/models"
	"ses/store"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize JWT secret
	middleware.SetJWTSecret(cfg.JWTSecret)

	// Open the database, bring the schema up to date and seed reference data
	db, err := database.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	if err := database.Seed(db, cfg.SeedDemoAccounts); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	st := store.New(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(cfg, st)
	hackathonHandler := handlers.NewHackathonHandler(st)
	teamHandler := handlers.NewTeamHandler(st)
	startupHandler := handlers.NewStartupHandler(st)
	hubHandler := handlers.NewHubHandler(st)
	adminHandler := handlers.NewAdminHandler(st)
	chatHandler := handlers.NewChatHandler(gemini.NewClient(cfg.GeminiAPIKey, cfg.ChatTimeout))

	// Setup router
	router := chi.NewRouter()
	router.Use(chimiddleware.Logger)
	router.Use(chimiddleware.Recoverer)

	// Public routes
	router.Post("/register", authHandler.Register)
	router.Post("/login", authHandler.Login)

	// Protected routes
	router.Group(func(r chi.Router) {
		r.Use(middleware.Auth(st))

		r.Get("/logout", authHandler.Logout)
		r.Get("/me", authHandler.Me)

		r.Get("/hackathons", hackathonHandler.List)
		r.Get("/hackathons/{id}", hackathonHandler.Get)
		r.Post("/hackathons", hackathonHandler.Create)
		r.Put("/hackathons/{id}", hackathonHandler.Update)
		r.Delete("/hackathons/{id}", hackathonHandler.Delete)
		r.Get("/hackathons/{id}/teams", teamHandler.ListByHackathon)

		r.Post("/teams", teamHandler.Create)
		r.Get("/teams/{id}", teamHandler.Get)
		r.Get("/teams/{id}/members", teamHandler.Members)
		r.Post("/teams/{id}/join", teamHandler.Join)
		r.Get("/teams/{id}/join-status", teamHandler.JoinStatus)
		r.Get("/teams/{id}/requests", teamHandler.PendingRequests)
		r.Post("/join-requests/{id}/accept", teamHandler.AcceptRequest)
		r.Post("/join-requests/{id}/reject", teamHandler.RejectRequest)

		r.Get("/startups", startupHandler.List)
		r.Get("/startups/{id}", startupHandler.Get)
		r.Post("/startups", startupHandler.Create)
		r.Put("/startups/{id}", startupHandler.Update)
		r.Delete("/startups/{id}", startupHandler.Delete)

		r.Get("/hubs", hubHandler.List)
		r.Get("/hubs/{id}", hubHandler.Get)

		r.Get("/roles", adminHandler.ListRoles)

		r.Post("/chat", chatHandler.Chat)

		// Super admin only routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(models.RoleSuperAdmin))
			r.Get("/admin/users", adminHandler.ListProfiles)
			r.Put("/admin/users/{id}/role", adminHandler.AssignRole)
			r.Delete("/admin/users/{id}", adminHandler.DeleteProfile)
		})
	})

	log.Printf("Server starting on port %s", cfg.ServerPort)
	log.Fatal(http.ListenAndServe(":"+cfg.ServerPort, router))
}
