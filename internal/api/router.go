package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/isandoval/staffdesk-be/internal/api/handlers"
	"github.com/isandoval/staffdesk-be/internal/auth"
	"github.com/isandoval/staffdesk-be/internal/config"
	"github.com/isandoval/staffdesk-be/internal/services"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(cfg *config.Config, tokens *auth.Manager, userService services.UserServiceProvider, employeeService services.EmployeeServiceProvider) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService, tokens)
	employeeHandler := handlers.NewEmployeeHandler(employeeService, cfg.UploadDir)

	// Uploaded profile pictures are served back by stored filename.
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir)))
	r.Get("/uploads/*", fileServer.ServeHTTP)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/user", func(r chi.Router) {
			r.Post("/signup", userHandler.Signup)
			r.Post("/login", userHandler.Login)
		})

		r.Route("/emp", func(r chi.Router) {
			// Optional bearer-token protection across all employee routes.
			r.Use(auth.RequireAuth(tokens, config.ProtectEmployeeRoutes))

			r.Get("/employees", employeeHandler.List)
			r.Post("/employees", employeeHandler.Create)
			r.Delete("/employees", employeeHandler.Delete)
			r.Get("/employees/search", employeeHandler.Search)
			r.Get("/employees/{eid}", employeeHandler.Get)
			r.Put("/employees/{eid}", employeeHandler.Update)
		})
	})

	return r
}
