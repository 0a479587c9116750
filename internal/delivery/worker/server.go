package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"locator/config"
	"locator/internal/delivery"
	apimiddleware "locator/internal/delivery/api/middleware"
	"locator/internal/delivery/api/response"
	"locator/internal/delivery/middleware"
	"locator/internal/delivery/worker/handler"
	"locator/internal/domain/lifecycle"
	"locator/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// pushPath must match the push endpoint configured on the subscription
// (pubsub.localEndpoint when running locally).
const pushPath = "/push"

type workerServer struct {
	port   int
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for the notifier's push server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewServer creates the Pub/Sub push receiver
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomiddleware.Recover())

	// Request ID before the logger so access logs carry it
	requestIDMiddleware := middleware.NewRequestIDMiddleware(params.Logger)
	e.Use(requestIDMiddleware.Process)

	loggerMiddleware := middleware.NewLoggerMiddleware(params.Logger, params.Cfg)
	e.Use(loggerMiddleware.Handle)

	port := params.Cfg.HTTP.Port
	if params.Cfg.Worker != nil {
		port = params.Cfg.Worker.Port
		e.Use(echomiddleware.BodyLimit(params.Cfg.Worker.MaxRequestBodySize))
	}

	errorMiddleware := apimiddleware.NewErrorMiddleware(params.Logger)
	e.HTTPErrorHandler = errorMiddleware.HandleHTTPError

	e.GET("/health", func(c echo.Context) error {
		return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
	})
	e.POST(pushPath, params.PushHandler.HandlePush)

	srv := &workerServer{
		port:   port,
		logger: params.Logger,
		server: e,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// Serve blocks until the server is shut down
func (s *workerServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.port))
	s.logger.Info("Starting push worker", slog.String("host_port", hostPort), slog.String("path", pushPath))
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *workerServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down push worker")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
