package service

import (
	"context"
	"log/slog"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/webnest/internal/api/apiconnect"
	"github.com/mmynk/webnest/internal/auth"
	"github.com/mmynk/webnest/internal/metrics"
	"github.com/mmynk/webnest/internal/middleware"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// Routes mounts the project service, /metrics and /healthz on a new mux.
// With a nil jwtManager every procedure is open; otherwise only the catalog
// and estimate procedures are.
func Routes(svc *ProjectService, m *metrics.Metrics, jwtManager *auth.JWTManager) http.Handler {
	interceptors := []connect.Interceptor{middleware.LoggingInterceptor()}
	if m != nil {
		interceptors = append([]connect.Interceptor{middleware.MetricsInterceptor(m)}, interceptors...)
	}
	if jwtManager != nil {
		interceptors = append(interceptors, middleware.RequireAuth(jwtManager,
			apiconnect.ProjectServiceGetCatalogProcedure,
			apiconnect.ProjectServiceEstimateProcedure,
		))
	}

	mux := http.NewServeMux()
	path, handler := apiconnect.NewProjectServiceHandler(svc, connect.WithInterceptors(interceptors...))
	mux.Handle(path, handler)

	if m != nil {
		mux.Handle("/metrics", m.Handler())
	}
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if p, ok := svc.store.(pinger); ok {
			if err := p.Ping(r.Context()); err != nil {
				slog.Error("Health check failed", "error", err)
				http.Error(w, "database unavailable", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})

	return middleware.HTTPLogging(middleware.CORS(mux))
}
