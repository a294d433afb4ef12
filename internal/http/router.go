package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/wanderlabs/citypass/internal/service"
	"github.com/wanderlabs/citypass/internal/store"
	"github.com/wanderlabs/citypass/pkg/httpx"
	"github.com/wanderlabs/citypass/pkg/jwtx"
	"github.com/wanderlabs/citypass/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	signer       *jwtx.Signer
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store
	cookieSecure bool

	UserService *service.UserService
	CityService *service.CityService
}

func NewRouter(
	signer *jwtx.Signer,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
	cors httpx.CORSConfig,
	cookieSecure bool,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		signer:       signer,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
		store:        st,
		cookieSecure: cookieSecure,
	}

	// Global middleware chain: logging outermost, then CORS so even error
	// responses carry the headers browsers need.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.CORSMiddleware(cors),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUsers()
	r.registerCities()
	r.registerSystem()
}

// ServeHTTP implements http.Handler and applies the global middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{
		Users:        r.UserService,
		Signer:       r.signer,
		CookieSecure: r.cookieSecure,
	}

	r.Mux.Handle("POST /api/auth/register", http.HandlerFunc(h.HandleRegister))
	r.Mux.Handle("POST /api/auth/login", http.HandlerFunc(h.HandleLogin))
	r.Mux.Handle("POST /api/auth/refresh", http.HandlerFunc(h.HandleRefresh))
}

func (r *Router) registerUsers() {
	h := &UsersHandler{Users: r.UserService}

	r.Mux.Handle("GET /api/users", http.HandlerFunc(h.HandleList))
	r.Mux.Handle("GET /api/users/{id}", http.HandlerFunc(h.HandleGet))
}

func (r *Router) registerCities() {
	public := &CitiesHandler{Cities: r.CityService}
	r.Mux.Handle("GET /api/cities", http.HandlerFunc(public.HandleList))

	// Moderation endpoints require a valid access token; there is no role
	// model, any authenticated user passes.
	admin := &AdminCitiesHandler{Cities: r.CityService}
	r.Mux.Handle("GET /api/admin/cities",
		httpx.Chain(http.HandlerFunc(admin.HandleList),
			httpx.AuthnMiddleware(r.signer),
		),
	)
	r.Mux.Handle("POST /api/admin/cities",
		httpx.Chain(http.HandlerFunc(admin.HandleCreate),
			httpx.AuthnMiddleware(r.signer),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /{$}", RootHandler())
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
