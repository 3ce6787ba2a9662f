package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/Amitjang/XAlISS-SERVER/docs"
	adminhandlers "github.com/Amitjang/XAlISS-SERVER/internal/handlers/admin"
	authhandlers "github.com/Amitjang/XAlISS-SERVER/internal/handlers/auth"
	collectionhandlers "github.com/Amitjang/XAlISS-SERVER/internal/handlers/collections"
	contracthandlers "github.com/Amitjang/XAlISS-SERVER/internal/handlers/contracts"
	"github.com/Amitjang/XAlISS-SERVER/internal/service"
	"github.com/Amitjang/XAlISS-SERVER/pkg/auth"
	"github.com/Amitjang/XAlISS-SERVER/pkg/metrics"
	"github.com/Amitjang/XAlISS-SERVER/pkg/utils"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
}

type CollectionHandler interface {
	GetToday(w http.ResponseWriter, r *http.Request)
	Collect(w http.ResponseWriter, r *http.Request)
	GetAuthorization(w http.ResponseWriter, r *http.Request)
}

type ContractHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	GetSchedule(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	RunReconciliation(w http.ResponseWriter, r *http.Request)
	GetStats(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler       AuthHandler
	CollectionHandler CollectionHandler
	ContractHandler   ContractHandler
	AdminHandler      AdminHandler

	jwtService  auth.JWTServiceInterface
	internalKey string
}

func New(s *service.Services, jwtService auth.JWTServiceInterface, internalKey string, loc *time.Location) *Handlers {
	return &Handlers{
		AuthHandler:       authhandlers.New(s.AuthService),
		CollectionHandler: collectionhandlers.New(s.CollectionService),
		ContractHandler:   contracthandlers.New(s.ContractService),
		AdminHandler:      adminhandlers.New(s.ReconcileService, s.ContractService, loc),
		jwtService:        jwtService,
		internalKey:       internalKey,
	}
}

func health(w http.ResponseWriter, _ *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "ok", Status: "success"})
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		cors.Handler(cors.Options{
			AllowedOrigins:   []string{"https://*", "http://*"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", auth.InternalAPIKeyHeader},
			ExposedHeaders:   []string{"Authorization"},
			AllowCredentials: true,
			MaxAge:           300,
		}),
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Get("/health", health)
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/agents/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware(h.jwtService))
			r.Route("/collections", func(r chi.Router) {
				r.Get("/today", h.CollectionHandler.GetToday)
				r.Post("/", h.CollectionHandler.Collect)
				r.Get("/{contractID}/authorization", h.CollectionHandler.GetAuthorization)
			})
			r.Route("/contracts", func(r chi.Router) {
				r.Post("/", h.ContractHandler.Create)
				r.Get("/{id}", h.ContractHandler.Get)
				r.Get("/{id}/schedule", h.ContractHandler.GetSchedule)
				r.Post("/{id}/cancel", h.ContractHandler.Cancel)
			})
		})
	})

	r.Route("/internal", func(r chi.Router) {
		r.Use(auth.InternalKeyMiddleware(h.internalKey))
		r.Post("/reconciliation/run", h.AdminHandler.RunReconciliation)
		r.Get("/stats", h.AdminHandler.GetStats)
	})

	return r
}
