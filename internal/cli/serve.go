package cli

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/wqcharts/bizchart/pkg/buildinfo"
	"github.com/wqcharts/bizchart/pkg/cache"
	"github.com/wqcharts/bizchart/pkg/config"
	"github.com/wqcharts/bizchart/pkg/errors"
	"github.com/wqcharts/bizchart/pkg/observability"
)

const (
	defaultAddr     = "127.0.0.1:8080"
	shutdownTimeout = 5 * time.Second

	// headerRenderID identifies a rendered artifact in logs and responses.
	headerRenderID = "X-Render-ID"
	headerCache    = "X-Cache"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr     string // listen address
	redisURL string // share the artifact cache through Redis when set
	noCache  bool   // disable the artifact cache
}

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{addr: defaultAddr}

	cmd := &cobra.Command{
		Use:   "serve [chart.toml]",
		Short: "Serve a chart over HTTP",
		Long: `Serve draws the chart on request. Query parameters select the frame:

  GET /chart.svg?x=0&y=49&w=100&h=50&progress=0.5
  GET /chart.png, /chart.pdf (require rsvg-convert)
  GET /healthz

The chart file is read once at startup.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.redisURL, "redis", "", "Redis URL for a shared artifact cache (redis://host:6379/0)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

func runServe(ctx context.Context, input string, opts serveOpts) error {
	logger := loggerFromContext(ctx)

	raw, err := config.Read(input)
	if err != nil {
		return err
	}
	ch, err := config.Parse(raw)
	if err != nil {
		return err
	}

	store, err := newServeCache(ctx, opts)
	if err != nil {
		return err
	}
	defer store.Close()

	observability.SetHTTPHooks(&logHTTPHooks{logger: logger})
	defer observability.Reset()

	srv := &http.Server{
		Addr:              opts.addr,
		Handler:           newChartServer(ch, cache.Hash(raw), store, logger).routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	printSuccess("Serving %s on %s", input, StyleLink.Render("http://"+opts.addr+"/chart.svg"))

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("Server stopped")
	return nil
}

func newServeCache(ctx context.Context, opts serveOpts) (cache.Cache, error) {
	if opts.redisURL != "" && !opts.noCache {
		store, err := cache.NewRedisCache(ctx, opts.redisURL)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		return store, nil
	}
	return newCache(opts.noCache)
}

// =============================================================================
// Chart Server
// =============================================================================

// chartServer renders one chart file per request. Each request builds its
// own view, so handlers share nothing but the parsed file and the cache.
type chartServer struct {
	chart     *config.Chart
	chartHash string
	cache     cache.Cache
	keyer     cache.Keyer
	logger    *log.Logger
}

func newChartServer(ch *config.Chart, chartHash string, store cache.Cache, logger *log.Logger) *chartServer {
	return &chartServer{
		chart:     ch,
		chartHash: chartHash,
		cache:     store,
		keyer:     cache.NewScopedKeyer(cache.NewDefaultKeyer(), buildinfo.CacheKey()+":"),
		logger:    logger,
	}
}

func (s *chartServer) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(observe)
	r.Use(renderID)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok\n"))
	})
	r.Get("/chart.{format}", s.handleChart)
	return r
}

func (s *chartServer) handleChart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	format := chi.URLParam(r, "format")
	if !validFormats[format] {
		s.writeError(w, r, errors.New(errors.ErrCodeNotFound, "unknown format %q", format))
		return
	}

	frame, err := parseFrameQuery(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	key := s.keyer.ArtifactKey(s.chartHash, frame.keyOpts(s.chart, format))
	data, hit, err := artifact(ctx, s.cache, key, format, s.logger, func() ([]byte, error) {
		return encode(drawSVG(s.chart, s.logger, frame), format)
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", contentType(format))
	w.Header().Set("Server", buildinfo.ServerHeader())
	if hit {
		w.Header().Set(headerCache, "HIT")
	} else {
		w.Header().Set(headerCache, "MISS")
	}
	_, _ = w.Write(data)
}

func (s *chartServer) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := errors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("render failed", "id", w.Header().Get(headerRenderID), "path", r.URL.Path, "err", err)
	}
	http.Error(w, errors.UserMessage(err), status)
}

// parseFrameQuery reads x, y, w, h and progress from the query string.
// Missing parameters keep their defaults; progress is only applied when
// present.
func parseFrameQuery(r *http.Request) (frameOpts, error) {
	q := r.URL.Query()
	var frame frameOpts
	fields := []struct {
		name string
		dst  *float64
	}{
		{"x", &frame.offset.X},
		{"y", &frame.offset.Y},
		{"w", &frame.viewport.Width},
		{"h", &frame.viewport.Height},
	}
	for _, f := range fields {
		v, ok, err := queryFloat(q.Get(f.name), f.name)
		if err != nil {
			return frame, err
		}
		if ok {
			*f.dst = v
		}
	}
	if err := errors.ValidateNonNegative("w", frame.viewport.Width); err != nil {
		return frame, err
	}
	if err := errors.ValidateNonNegative("h", frame.viewport.Height); err != nil {
		return frame, err
	}

	p, ok, err := queryFloat(q.Get("progress"), "progress")
	if err != nil {
		return frame, err
	}
	if ok {
		frame.progress = &p
	}
	return frame, nil
}

func queryFloat(s, name string) (float64, bool, error) {
	if s == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid %s: %q", name, s)
	}
	if err := errors.ValidateFinite(name, v); err != nil {
		return 0, false, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid %s: %q", name, s)
	}
	return v, true, nil
}

// =============================================================================
// Middleware
// =============================================================================

// renderID tags every response with a fresh UUID.
func renderID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(headerRenderID, uuid.NewString())
		next.ServeHTTP(w, r)
	})
}

// observe reports requests and responses to the HTTP hooks.
func observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		hooks := observability.HTTP()
		hooks.OnRequest(r.Context(), r.Method, r.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		hooks.OnResponse(r.Context(), r.Method, r.URL.Path, status, time.Since(start))
	})
}

// logHTTPHooks logs every response at debug level and failures at warn.
type logHTTPHooks struct {
	logger *log.Logger
}

func (h *logHTTPHooks) OnRequest(context.Context, string, string) {}

func (h *logHTTPHooks) OnResponse(_ context.Context, method, path string, status int, d time.Duration) {
	if status >= http.StatusBadRequest {
		h.logger.Warn("request failed", "method", method, "path", path, "status", status, "duration", d)
		return
	}
	h.logger.Debug("request", "method", method, "path", path, "status", status, "duration", d)
}
