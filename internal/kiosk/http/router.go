package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Yulio1919k/IoT-Biometric-Attendance/internal/kiosk/service"
	"github.com/Yulio1919k/IoT-Biometric-Attendance/pkg/httpx"
	"github.com/Yulio1919k/IoT-Biometric-Attendance/pkg/slogx"

	_ "github.com/Yulio1919k/IoT-Biometric-Attendance/api/kiosk" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	metrics      *Metrics

	// serial is shared by every API route: the kiosk services one
	// request at a time, which is what makes the single enrollment
	// session slot safe.
	serial httpx.Middleware

	staticDir    string
	historyLimit int

	EnrollService     *service.EnrollService
	UserService       *service.UserService
	AttendanceService *service.AttendanceService
	StatusService     *service.StatusService
}

func NewRouter(
	buildVersion string,
	staticDir string,
	historyLimit int,
	enroll *service.EnrollService,
	users *service.UserService,
	attendance *service.AttendanceService,
	status *service.StatusService,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
		metrics:      NewMetrics(),
		serial:       httpx.Serialize(),
		staticDir:    staticDir,
		historyLimit: historyLimit,

		EnrollService:     enroll,
		UserService:       users,
		AttendanceService: attendance,
		StatusService:     status,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		r.metrics.Middleware(),
	}

	return r
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Biometric Attendance Kiosk API
//	@version		0.1.0
//	@description	HTTP surface of the fingerprint attendance kiosk: enrollment capture, user management, attendance check-ins and hardware status. The deployed client polls the sensor endpoints; all state advances one request at a time.
//
//	@host		localhost:8080
//	@BasePath	/
//
//	@schemes	http
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) ApplyRoutes() {
	r.registerEnrollment()
	r.registerUsers()
	r.registerAttendance()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
	r.Mux.Handle("/metrics", r.metrics.Handler())
	r.Mux.Handle("/", StaticHandler(r.staticDir))
}

func (r *Router) registerEnrollment() {
	h := &EnrollHandler{EnrollService: r.EnrollService, Metrics: r.metrics}

	// The capture endpoint is polled continuously while the operator
	// holds the enrollment page open.
	r.Mux.Handle("GET /api/fingerprint/start",
		httpx.Chain(http.HandlerFunc(h.HandleStart),
			r.serial,
			httpx.RateLimitByIP(httpx.PublicLimit),
		))

	r.Mux.Handle("POST /api/register",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			r.serial,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		))
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UserService: r.UserService, Metrics: r.metrics}

	r.Mux.Handle("GET /api/users",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			r.serial,
			httpx.RateLimitByIP(httpx.LenientLimit),
		))

	r.Mux.Handle("POST /api/edit-user",
		httpx.Chain(http.HandlerFunc(h.HandleEdit),
			r.serial,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		))

	r.Mux.Handle("POST /api/delete-user",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			r.serial,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		))

	r.Mux.Handle("GET /api/next-id",
		httpx.Chain(http.HandlerFunc(h.HandleNextID),
			r.serial,
			httpx.RateLimitByIP(httpx.LenientLimit),
		))

	r.Mux.Handle("POST /api/check-name",
		httpx.Chain(http.HandlerFunc(h.HandleCheckName),
			r.serial,
			httpx.RateLimitByIP(httpx.LenientLimit),
		))
}

func (r *Router) registerAttendance() {
	h := &AttendanceHandler{
		AttendanceService: r.AttendanceService,
		HistoryLimit:      r.historyLimit,
		Metrics:           r.metrics,
	}

	r.Mux.Handle("GET /api/attendance",
		httpx.Chain(http.HandlerFunc(h.HandleCheck),
			r.serial,
			httpx.RateLimitByIP(httpx.PublicLimit),
		))

	r.Mux.Handle("GET /api/database",
		httpx.Chain(http.HandlerFunc(h.HandleDatabase),
			r.serial,
			httpx.RateLimitByIP(httpx.LenientLimit),
		))
}

func (r *Router) registerSystem() {
	h := &SystemHandler{StatusService: r.StatusService}

	r.Mux.Handle("GET /api/system-status",
		httpx.Chain(http.HandlerFunc(h.HandleStatus),
			r.serial,
			httpx.RateLimitByIP(httpx.LenientLimit),
		))

	r.Mux.Handle("GET /healthz", HealthzHandler(r.startTime, r.buildVersion))
}
