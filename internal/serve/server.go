package serve

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/aurochs-dev/aurochs/internal/errors"
	"github.com/aurochs-dev/aurochs/pkg/render"
	"github.com/aurochs-dev/aurochs/pkg/treefile"
)

const (
	pageExt      = ".yaml"
	indexPage    = "index"
	metricsPath  = "/metrics"
	tracerName   = "aurochs"
	metricsSpace = "aurochs"

	shutdownTimeout = 5 * time.Second
)

// unknownPage is the metric label for requests that did not resolve to a
// page.
const unknownPage = "unknown"

var errNotFound = errors.New(errors.CodeNotFound)

// pageName matches the page names the server resolves.
var pageName = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]*$`)

// Options configures the preview server.
type Options struct {
	// Addr is the listen address used by Run.
	Addr string

	// Root is the directory holding tree documents.
	Root string

	// Render configures page rendering.
	Render render.Config

	// Reload enables live reload.
	Reload bool

	// Poll is the change scan interval. Defaults to 500ms.
	Poll time.Duration

	// Registry receives the server metrics and backs /metrics.
	// Defaults to a fresh registry.
	Registry *prometheus.Registry

	// Tracer traces page renders. Defaults to the global provider's
	// "aurochs" tracer.
	Tracer trace.Tracer

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Server renders tree documents over HTTP.
type Server struct {
	opts     Options
	renderer *render.Renderer
	metrics  *metrics
	tracer   trace.Tracer
	reload   *ReloadServer
	logger   *slog.Logger
	router   chi.Router
}

// New creates a preview server.
func New(opts Options) *Server {
	if opts.Poll <= 0 {
		opts.Poll = 500 * time.Millisecond
	}
	if opts.Registry == nil {
		opts.Registry = prometheus.NewRegistry()
	}
	if opts.Tracer == nil {
		opts.Tracer = otel.Tracer(tracerName)
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	s := &Server{
		opts:     opts,
		renderer: render.NewRenderer(opts.Render),
		metrics:  newMetrics(opts.Registry, metricsSpace),
		tracer:   opts.Tracer,
		logger:   opts.Logger,
	}
	if opts.Reload {
		s.reload = NewReloadServer()
		s.reload.onCount = func(n int) { s.metrics.reloadClients.Set(float64(n)) }
	}
	s.router = s.routes()
	return s
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Handle(metricsPath, promhttp.HandlerFor(s.opts.Registry, promhttp.HandlerOpts{}))
	if s.reload != nil {
		r.Get(ReloadPath, s.reload.HandleWebSocket)
	}
	r.Get("/", s.handlePage)
	r.Get("/{page}", s.handlePage)
	return r
}

// logRequests logs each request with its status and duration.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	page := chi.URLParam(r, "page")
	if page == "" {
		page = indexPage
	}
	page = strings.TrimSuffix(page, ".html")

	if !pageName.MatchString(page) {
		s.metrics.rendersTotal.WithLabelValues(unknownPage, statusNotFound).Inc()
		http.NotFound(w, r)
		return
	}

	start := time.Now()
	html, err := s.renderPage(r.Context(), page)
	elapsed := time.Since(start).Seconds()

	switch {
	case err == nil:
		s.metrics.rendersTotal.WithLabelValues(page, statusOK).Inc()
		s.metrics.renderDuration.WithLabelValues(page).Observe(elapsed)
	case stderrors.Is(err, errNotFound):
		s.metrics.rendersTotal.WithLabelValues(unknownPage, statusNotFound).Inc()
		http.NotFound(w, r)
		return
	default:
		s.metrics.rendersTotal.WithLabelValues(page, statusError).Inc()
		s.metrics.renderDuration.WithLabelValues(page).Observe(elapsed)
		s.logger.Warn("render failed", "page", page, "error", compact(err))
		http.Error(w, compact(err), http.StatusInternalServerError)
		return
	}

	if s.reload != nil {
		html = injectScript(html, ReloadScript)
	}
	s.metrics.renderBytes.Observe(float64(len(html)))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	fmt.Fprint(w, html)
}

// renderPage loads and renders one page inside a trace span.
func (s *Server) renderPage(ctx context.Context, page string) (string, error) {
	_, span := s.tracer.Start(ctx, "aurochs.render",
		trace.WithAttributes(attribute.String("aurochs.page", page)),
	)
	defer span.End()

	root, err := treefile.Load(filepath.Join(s.opts.Root, page+pageExt))
	if err == nil {
		var html string
		html, err = s.renderer.RenderToString(root)
		if err == nil {
			span.SetAttributes(attribute.Int("aurochs.bytes", len(html)))
			span.SetStatus(codes.Ok, "")
			return html, nil
		}
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return "", err
}

// compact renders err on one line, with its detail when it has one.
func compact(err error) string {
	var e *errors.Error
	if stderrors.As(err, &e) {
		return e.FormatCompact()
	}
	return err.Error()
}

// injectScript inserts script before the last </body>, or appends it.
func injectScript(html, script string) string {
	if i := strings.LastIndex(html, "</body>"); i >= 0 {
		return html[:i] + script + html[i:]
	}
	return html + script
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.opts.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if s.reload != nil {
		w := NewWatcher(s.opts.Root, s.opts.Poll, s.onChange)
		w.onError = func(err error) { s.logger.Warn("watch failed", "error", err) }
		go w.Run(ctx)
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("serving", "addr", s.opts.Addr, "root", s.opts.Root, "reload", s.reload != nil)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), shutdownTimeout)
	defer stop()
	if s.reload != nil {
		s.logger.Debug("closing reload clients", "clients", s.reload.ClientCount())
		s.reload.Close()
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !stderrors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// onChange broadcasts a reload for changed documents. A document that no
// longer decodes is reported to clients instead.
func (s *Server) onChange(changed []string) {
	for _, rel := range changed {
		path := filepath.Join(s.opts.Root, filepath.FromSlash(rel))
		if _, err := treefile.Load(path); err != nil && !stderrors.Is(err, os.ErrNotExist) {
			s.logger.Warn("page invalid", "page", rel, "error", err)
			s.reload.NotifyError(err.Error())
			return
		}
	}
	s.logger.Info("pages changed", "pages", changed)
	s.metrics.reloadsTotal.Inc()
	s.reload.NotifyReload(strings.TrimSuffix(changed[0], pageExt))
}
