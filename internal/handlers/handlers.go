package handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/rewardcore/docs"
	actionshandlers "github.com/GlebRadaev/rewardcore/internal/handlers/actions"
	adminhandlers "github.com/GlebRadaev/rewardcore/internal/handlers/admin"
	authhandlers "github.com/GlebRadaev/rewardcore/internal/handlers/auth"
	wallethandlers "github.com/GlebRadaev/rewardcore/internal/handlers/wallet"
	"github.com/GlebRadaev/rewardcore/internal/service"
	"github.com/GlebRadaev/rewardcore/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetProfile(w http.ResponseWriter, r *http.Request)
	Transfer(w http.ResponseWriter, r *http.Request)
	Purchase(w http.ResponseWriter, r *http.Request)
	LevelUp(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
}

type ActionsHandler interface {
	RecordAction(w http.ResponseWriter, r *http.Request)
	GetAchievements(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	Adjust(w http.ResponseWriter, r *http.Request)
	SetRole(w http.ResponseWriter, r *http.Request)
	SetLevel(w http.ResponseWriter, r *http.Request)
	SetBans(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	WalletHandler  WalletHandler
	ActionsHandler ActionsHandler
	AdminHandler   AdminHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		WalletHandler:  wallethandlers.New(s.TransferService, s.AuthService),
		ActionsHandler: actionshandlers.New(s.StatService, s.AwardService),
		AdminHandler:   adminhandlers.New(s.AdminService, s.TransferService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/user", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(auth.AuthMiddleware)
				r.Get("/profile", h.WalletHandler.GetProfile)
				r.Route("/wallet", func(r chi.Router) {
					r.Post("/transfer", h.WalletHandler.Transfer)
					r.Post("/purchase", h.WalletHandler.Purchase)
					r.Post("/levelup", h.WalletHandler.LevelUp)
					r.Get("/history", h.WalletHandler.GetHistory)
				})
				r.Post("/actions", h.ActionsHandler.RecordAction)
				r.Get("/achievements", h.ActionsHandler.GetAchievements)
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Post("/adjust", h.AdminHandler.Adjust)
			r.Post("/role", h.AdminHandler.SetRole)
			r.Post("/level", h.AdminHandler.SetLevel)
			r.Post("/bans", h.AdminHandler.SetBans)
		})
	})

	return r
}
