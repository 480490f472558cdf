package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"

	apierrors "github.com/pribylovaa/go-news-panel/internal/errors"
	"github.com/pribylovaa/go-news-panel/internal/http/handlers"
	"github.com/pribylovaa/go-news-panel/internal/http/middleware"
	"github.com/pribylovaa/go-news-panel/internal/service"
)

// API: всё, что роутеру нужно от бизнес-слоя: операции хендлеров и проверка токена.
// Реализуется *service.Service.
type API interface {
	handlers.Service
	middleware.TokenVerifier
}

var _ API = (*service.Service)(nil)

// Options: параметры сборки HTTP-роутера.
type Options struct {
	Logger  *slog.Logger
	Timeout time.Duration
	// MaxUpload: предел размера загружаемого файла; <= 0: значение по умолчанию.
	MaxUpload int64
	// Metrics: реестр для HTTP-метрик; nil отключает middleware.Metrics.
	Metrics prometheus.Registerer
	// CORSOrigins: разрешённые origin'ы браузерных клиентов; пусто: "*".
	CORSOrigins []string
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(api API, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),            // безопасно ловим паники
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
		corsHandler(opts.CORSOrigins),   // preflight завершается здесь, до авторизации
	)
	if opts.Metrics != nil {
		root.Use(middleware.Metrics(opts.Metrics))
	}
	root.Use(middleware.AuthBearer())
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	root.NotFound(func(w http.ResponseWriter, r *http.Request) {
		apierrors.WriteError(w, r, service.ErrNotFound)
	})

	h := handlers.New(api, opts.MaxUpload)
	registerRoutes(root, h, middleware.RequireAuth(api))

	return root
}

// corsHandler: CORS для админки и сайта с другого origin.
func corsHandler(origins []string) func(http.Handler) http.Handler {
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", apierrors.HeaderRequestID},
		ExposedHeaders: []string{apierrors.HeaderRequestID},
		MaxAge:         300,
	})
}

// registerRoutes: единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers, auth middleware.Middleware) {
	r.Route("/api", func(r chi.Router) {
		// auth
		r.Post("/auth/signup", h.Signup)
		r.Post("/auth/login", h.Login)
		r.Get("/auth/logindetails", h.LoginDetails)

		r.Group(func(r chi.Router) {
			r.Use(auth)

			// categories
			r.Get("/categories", h.ListCategories)
			r.Post("/categories", h.CreateCategory)
			r.Get("/categories/{id}", h.GetCategory)
			r.Put("/categories/{id}", h.UpdateCategory)
			r.Delete("/categories/{id}", h.DeleteCategory)

			// news
			r.Get("/news", h.ListNews)
			r.Post("/news", h.CreateNews)
			r.Get("/news/{id}", h.GetNews)
			r.Put("/news/{id}", h.UpdateNews)
			r.Delete("/news/{id}", h.DeleteNews)

			// banner
			r.Get("/banner", h.ListBanners)
			r.Post("/banner", h.CreateBanner)
			r.Put("/banner/{id}", h.UpdateBanner)
			r.Delete("/banner/{id}", h.DeleteBanner)

			// logo
			r.Get("/logo", h.GetLogo)
			r.Post("/logo", h.CreateLogo)
			r.Put("/logo", h.SetLogo)
			r.Delete("/logo", h.DeleteLogo)
		})
	})

	r.Route("/public", func(r chi.Router) {
		r.Get("/news", h.PublicNews)
		r.Get("/news/{link}", h.PublicNewsByLink)
		r.Get("/categories", h.PublicCategories)
		r.Get("/banners", h.PublicBanners)
		r.Get("/logo", h.PublicLogos)
	})
}
