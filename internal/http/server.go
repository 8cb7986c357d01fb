package httpapi

import (
	"net/http"
	"time"

	"studentportal-backend-go/internal/config"
	"studentportal-backend-go/internal/services"
	"studentportal-backend-go/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

type Server struct {
	Config     config.Config
	Users      *store.UserStore
	Docs       store.Documents
	Materials  *store.MaterialsStore
	Accounts   services.Accounts
	Files      services.CourseFiles
	Chat       services.ChatProxy
	MetricsHub *services.MetricsHub
}

func NewServer(st *store.Store, cfg config.Config, hub *services.MetricsHub) *Server {
	users := store.NewUserStore(st)
	materials := store.NewMaterialsStore(st)
	return &Server{
		Config:    cfg,
		Users:     users,
		Docs:      store.NewDocuments(st),
		Materials: materials,
		Accounts: services.Accounts{
			Users:       users,
			EmailPrefix: cfg.EmailPrefix,
			EmailDomain: cfg.EmailDomain,
		},
		Files: services.CourseFiles{
			Store:     st,
			Materials: materials,
		},
		Chat: services.ChatProxy{
			URL:     cfg.ChatAPIURL,
			Timeout: time.Duration(cfg.ChatTimeoutSeconds) * time.Second,
		},
		MetricsHub: hub,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestLogger)
	if len(s.Config.CorsOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   s.Config.CorsOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	r.Route("/api", func(api chi.Router) {
		api.Post("/auth/signup", s.Signup)
		api.Post("/auth/login", s.Login)
		api.Post("/auth/logout", s.Logout)

		api.Get("/courses/catalog", s.Catalog)
		api.Post("/proxy", s.Proxy)

		api.Group(func(authed chi.Router) {
			authed.Use(WithSession(s.Users))
			authed.Get("/auth/me", s.Me)
			authed.Put("/auth/update", s.UpdateProfile)
			authed.Post("/auth/change-password", s.ChangePassword)
			authed.Get("/metrics/history", s.MetricsHistory)

			authed.Route("/user", func(user chi.Router) {
				user.Get("/courses", s.GetCourses)
				user.Post("/courses", s.SaveCourses)
				user.Get("/gpa", s.GetGpa)
				user.Post("/gpa", s.SaveGpa)
				user.Get("/notes", s.GetNotes)
				user.Post("/notes", s.SaveNotes)
				user.Get("/tasks", s.GetTasks)
				user.Post("/tasks", s.SaveTasks)
				user.Get("/schedule", s.GetSchedule)
				user.Post("/schedule", s.SaveSchedule)

				user.Get("/courses/materials", s.GetMaterials)
				user.Post("/courses/materials", s.SaveMaterials)
				user.Post("/courses/files/upload", s.UploadFile)
				user.Get("/courses/files/download", s.DownloadFile)
			})
		})
	})

	r.Get("/ws/metrics", s.MetricsSocket)

	pages := RouteGuard(http.FileServer(http.Dir(s.Config.StaticDir)))
	r.NotFound(pages.ServeHTTP)
	return r
}
