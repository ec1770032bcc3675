package numstats

import (
	"context"
	"errors"
	"net"
	"time"

	fiber "github.com/gofiber/fiber/v3"
	"github.com/goccy/go-json"
	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/numstats/internal/sentinel"
)

// ManagementHTTPOption configures the management HTTP server.
type ManagementHTTPOption func(*ManagementHTTPServer)

// ManagementHTTPServer exposes the monitored series over HTTP with Fiber.
//
// Routes:
//
//	GET    /health                     "ok"
//	GET    /config                     capacity and series count
//	GET    /series                     sorted series names
//	GET    /series/:name/summary       JSON Report (NaN as null)
//	GET    /series/:name/summary/text  five-line text rendering
//	POST   /series/:name/samples       JSON array of samples (null is a missing measurement)
//	DELETE /series/:name               removes the series
type ManagementHTTPServer struct {
	addr         string
	app          *fiber.App
	readTimeout  time.Duration
	writeTimeout time.Duration
	authFunc     func(fiber.Ctx) error
	ln           net.Listener
	started      bool
}

// WithMgmtAuth sets an auth function (return error to block).
func WithMgmtAuth(fn func(fiber.Ctx) error) ManagementHTTPOption {
	return func(s *ManagementHTTPServer) { s.authFunc = fn }
}

// WithMgmtReadTimeout sets read timeout.
func WithMgmtReadTimeout(d time.Duration) ManagementHTTPOption {
	return func(s *ManagementHTTPServer) { s.readTimeout = d }
}

// WithMgmtWriteTimeout sets write timeout.
func WithMgmtWriteTimeout(d time.Duration) ManagementHTTPOption {
	return func(s *ManagementHTTPServer) { s.writeTimeout = d }
}

const (
	defaultReadTimeout  = 5 * time.Second
	defaultWriteTimeout = 5 * time.Second
)

// NewManagementHTTPServer builds an HTTP server holder (lazy start).
func NewManagementHTTPServer(addr string, opts ...ManagementHTTPOption) *ManagementHTTPServer {
	srv := &ManagementHTTPServer{
		addr:         addr,
		readTimeout:  defaultReadTimeout,
		writeTimeout: defaultWriteTimeout,
	}
	for _, opt := range opts {
		opt(srv)
	}

	srv.app = fiber.New(fiber.Config{
		ReadTimeout:  srv.readTimeout,
		WriteTimeout: srv.writeTimeout,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
	})

	return srv
}

// managementMonitor is the part of the Monitor the HTTP handlers use.
type managementMonitor interface {
	List(ctx context.Context) ([]string, error)
	Count(ctx context.Context) int
	Capacity() int
	Remove(ctx context.Context, series ...string) error
	report(ctx context.Context, series string) (Report, string, error)
	recordJSON(ctx context.Context, series string, body []byte) (int, error)
}

// Start launches the listener (idempotent).
func (s *ManagementHTTPServer) Start(ctx context.Context, mon managementMonitor) error {
	if s.started {
		return nil
	}

	s.mountRoutes(mon)

	lc := net.ListenConfig{}

	ln, err := lc.Listen(ctx, "tcp", s.addr)
	if err != nil {
		return ewrap.Wrap(err, "mgmt listen")
	}

	s.ln = ln

	go func() {
		// Listener returns once Shutdown closes it.
		_ = s.app.Listener(ln)
	}()

	s.started = true

	return nil
}

// Address returns the bound address (useful when passing ":0" for ephemeral port). Empty if not started yet.
func (s *ManagementHTTPServer) Address() string {
	if s.ln == nil {
		return ""
	}

	return s.ln.Addr().String()
}

// Shutdown stops the server.
func (s *ManagementHTTPServer) Shutdown(ctx context.Context) error {
	if !s.started {
		return nil
	}

	ch := make(chan error, 1)

	go func() {
		ch <- s.app.Shutdown()
	}()

	select {
	case <-ctx.Done():
		return sentinel.ErrMgmtHTTPShutdownTimeout
	case err := <-ch:
		s.started = false

		return err
	}
}

// mountRoutes registers every route. Handlers run with the context of their own
// request, never with the context the server was started with.
func (s *ManagementHTTPServer) mountRoutes(mon managementMonitor) {
	useAuth := s.wrapAuth
	s.registerBasic(useAuth, mon)
	s.registerSeries(useAuth, mon)
}

// wrapAuth returns an auth-wrapped handler if authFunc provided.
func (s *ManagementHTTPServer) wrapAuth(handler fiber.Handler) fiber.Handler {
	if s.authFunc == nil {
		return handler
	}

	return func(fiberCtx fiber.Ctx) error {
		authErr := s.authFunc(fiberCtx)
		if authErr != nil {
			return authErr
		}

		return handler(fiberCtx)
	}
}

func (s *ManagementHTTPServer) registerBasic(useAuth func(fiber.Handler) fiber.Handler, mon managementMonitor) {
	s.app.Get("/health", useAuth(func(fiberCtx fiber.Ctx) error { return fiberCtx.SendString("ok") }))
	s.app.Get("/config", useAuth(func(fiberCtx fiber.Ctx) error {
		return fiberCtx.JSON(fiber.Map{
			"capacity": mon.Capacity(),
			"series":   mon.Count(fiberCtx.Context()),
		})
	}))
}

func (s *ManagementHTTPServer) registerSeries(useAuth func(fiber.Handler) fiber.Handler, mon managementMonitor) {
	s.app.Get("/series", useAuth(func(fiberCtx fiber.Ctx) error {
		names, err := mon.List(fiberCtx.Context())
		if err != nil {
			return errorResponse(fiberCtx, err)
		}

		return fiberCtx.JSON(fiber.Map{"series": names})
	}))
	s.app.Get("/series/:name/summary", useAuth(func(fiberCtx fiber.Ctx) error {
		report, _, err := mon.report(fiberCtx.Context(), fiberCtx.Params("name"))
		if err != nil {
			return errorResponse(fiberCtx, err)
		}

		return fiberCtx.JSON(report)
	}))
	s.app.Get("/series/:name/summary/text", useAuth(func(fiberCtx fiber.Ctx) error {
		_, text, err := mon.report(fiberCtx.Context(), fiberCtx.Params("name"))
		if err != nil {
			return errorResponse(fiberCtx, err)
		}

		return fiberCtx.SendString(text)
	}))
	s.app.Post("/series/:name/samples", useAuth(func(fiberCtx fiber.Ctx) error {
		n, err := mon.recordJSON(fiberCtx.Context(), fiberCtx.Params("name"), fiberCtx.Body())
		if err != nil {
			return errorResponse(fiberCtx, err)
		}

		return fiberCtx.Status(fiber.StatusAccepted).JSON(fiber.Map{"recorded": n})
	}))
	s.app.Delete("/series/:name", useAuth(func(fiberCtx fiber.Ctx) error {
		err := mon.Remove(fiberCtx.Context(), fiberCtx.Params("name"))
		if err != nil {
			return errorResponse(fiberCtx, err)
		}

		return fiberCtx.SendStatus(fiber.StatusOK)
	}))
}

// errorResponse maps sentinel errors to HTTP status codes.
func errorResponse(fiberCtx fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError

	switch {
	case errors.Is(err, sentinel.ErrSeriesNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, sentinel.ErrInvalidSeries), errors.Is(err, sentinel.ErrInvalidSamples):
		status = fiber.StatusBadRequest
	}

	return fiberCtx.Status(status).JSON(fiber.Map{"error": err.Error()})
}
