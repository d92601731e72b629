package httpserver

import (
	"net/http"

	"github.com/yndnr/meterd/internal/core/service"
	"github.com/yndnr/meterd/internal/server/httpserver/handler"
	"github.com/yndnr/meterd/internal/telemetry/logger"
	"github.com/yndnr/meterd/internal/telemetry/metric"
)

// RouterConfig holds configuration for the HTTP router.
type RouterConfig struct {
	// Meter is the measurement gate invoked on every scrape.
	Meter *service.MeterService

	// Metrics is the metric set encoded into scrape responses.
	Metrics *metric.Set

	// Logger for request logging.
	Logger logger.Logger
}

// route is one entry in the static dispatch table.
type route struct {
	method  string
	path    string
	handler http.Handler
}

// router dispatches requests against a closed set of (method, path)
// pairs. Matching is exact: no trailing-slash normalization, no
// method fallback. Anything that misses the table is a 404 with an
// empty body, including a non-GET on /metrics.
type router struct {
	routes []route
}

// NewRouter creates and configures the HTTP router with all routes
// and middleware.
func NewRouter(cfg *RouterConfig) http.Handler {
	log := cfg.Logger
	if log == nil {
		log = logger.Default()
	}

	rt := &router{
		routes: []route{
			{http.MethodGet, "/metrics", handler.NewMetrics(cfg.Meter, cfg.Metrics)},
		},
	}

	// Order: Recover -> RequestID -> AccessLog -> dispatch.
	return Chain(rt,
		Recover(log),
		RequestID(),
		AccessLog(log),
	)
}

// ServeHTTP implements http.Handler.
func (rt *router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	for _, rte := range rt.routes {
		if r.Method == rte.method && r.URL.Path == rte.path {
			rte.handler.ServeHTTP(w, r)
			return
		}
	}

	// 404 with an empty body; http.NotFound would write a text body.
	w.WriteHeader(http.StatusNotFound)
}
