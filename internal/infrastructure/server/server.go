package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	api "github.com/versten1uk/new-arch-spike/internal/api/http"
	"github.com/versten1uk/new-arch-spike/internal/api/middleware"
	"github.com/versten1uk/new-arch-spike/internal/bridge"
	"github.com/versten1uk/new-arch-spike/internal/capability"
	"github.com/versten1uk/new-arch-spike/internal/infrastructure/config"
	"github.com/versten1uk/new-arch-spike/internal/infrastructure/logging"
	"github.com/versten1uk/new-arch-spike/internal/infrastructure/monitoring"
	"github.com/versten1uk/new-arch-spike/internal/infrastructure/tracing"
	"github.com/versten1uk/new-arch-spike/internal/interop"
	"github.com/versten1uk/new-arch-spike/internal/modules/calculator"
	"github.com/versten1uk/new-arch-spike/internal/modules/deviceinfo"
	"github.com/versten1uk/new-arch-spike/internal/modules/logger"
	"github.com/versten1uk/new-arch-spike/internal/modules/storage"
	"github.com/versten1uk/new-arch-spike/internal/modules/webview"
)

const shutdownTimeout = 10 * time.Second

// Modules holds the constructed capability implementations
type Modules struct {
	Logger       *logger.Core
	Storage      *storage.Core
	DeviceInfo   *deviceinfo.Core
	Calculator   *calculator.Core
	Integrations *webview.Integrations
}

// Server wraps the HTTP server and dependencies
type Server struct {
	router       *gin.Engine
	http         *http.Server
	capabilities *interop.Registry
	bridges      *bridge.Registry
	modules      *Modules
	logger       *logging.Logger
	tracer       *tracing.Tracer
	config       *config.Config
	metrics      *monitoring.Metrics
}

// Option configures NewServer
type Option func(*options)

type options struct {
	registry *interop.Registry
	logger   *logging.Logger
	source   deviceinfo.PropertySource
}

// WithRegistry binds capabilities into r instead of the process registry
func WithRegistry(r *interop.Registry) Option {
	return func(o *options) { o.registry = r }
}

// WithLogger overrides the logger built from config
func WithLogger(l *logging.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithDeviceSource overrides the host device property source
func WithDeviceSource(src deviceinfo.PropertySource) Option {
	return func(o *options) { o.source = src }
}

// NewServer builds every module, binds it, validates the registry and wires the router
func NewServer(cfg *config.Config, opts ...Option) (*Server, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	log := o.logger
	if log == nil {
		var err error
		log, err = logging.New(logging.Config{
			Level:       cfg.Logging.Level,
			Development: cfg.Logging.Development,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to build logger: %w", err)
		}
	}

	log.Info("Initializing capability host",
		zap.String("port", cfg.Server.Port),
		zap.Bool("strict", cfg.Interop.Strict),
		zap.String("storage_path", cfg.Storage.Path),
	)

	metrics := monitoring.NewMetrics()
	tracer := tracing.New("new-arch-spike", log.Logger)

	registry := o.registry
	if registry == nil {
		registry = interop.Default()
	}
	registry.Configure(
		interop.WithStrict(cfg.Interop.Strict),
		interop.WithLogger(log.Named("interop")),
		interop.WithObserver(metrics),
	)

	modules, err := buildModules(cfg, log.Logger, registry, o.source)
	if err != nil {
		tracer.Close()
		return nil, err
	}

	if err := bindModules(registry, modules); err != nil {
		tracer.Close()
		return nil, err
	}
	metrics.SetRegistered(registry.Len())

	if err := registry.Validate(capability.All()...); err != nil {
		tracer.Close()
		return nil, fmt.Errorf("capability registry incomplete: %w", err)
	}
	log.Info("Capabilities bound", zap.Strings("capabilities", registry.Names()))

	bridges := bridge.NewRegistry(metrics)
	if err := registerBridges(bridges, registry, modules); err != nil {
		tracer.Close()
		return nil, err
	}

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.Recovery(log.Logger))
	router.Use(tracing.HTTPMiddleware(tracer))
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.RequestLogger(log.Named("http")))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if cfg.RateLimit.Enabled {
		log.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
			zap.Bool("global", cfg.RateLimit.Global),
		)
		rl := middleware.DefaultRateLimitConfig()
		rl.RequestsPerSecond = cfg.RateLimit.RequestsPerSecond
		rl.Burst = cfg.RateLimit.Burst
		if cfg.RateLimit.Global {
			router.Use(middleware.GlobalRateLimit(rl))
		} else {
			router.Use(middleware.RateLimit(rl))
		}
	}

	api.NewHandlers(bridges, registry, metrics).Register(router)

	log.Info("Server initialized successfully")

	return &Server{
		router:       router,
		capabilities: registry,
		bridges:      bridges,
		modules:      modules,
		logger:       log,
		tracer:       tracer,
		config:       cfg,
		metrics:      metrics,
	}, nil
}

func buildModules(cfg *config.Config, log *zap.Logger, registry *interop.Registry, source deviceinfo.PropertySource) (*Modules, error) {
	store := storage.NewCore()
	if cfg.Storage.Path != "" {
		persistent, err := storage.NewPersistentCore(storage.NewFileBackend(cfg.Storage.Path))
		if err != nil {
			return nil, fmt.Errorf("failed to open storage: %w", err)
		}
		store = persistent
		log.Info("Storage persistence enabled",
			zap.String("path", cfg.Storage.Path),
			zap.Int("keys", store.Len()),
		)
	}

	if source == nil {
		bundleID := cfg.Device.BundleID
		if cfg.Device.ManifestPath != "" {
			manifest, err := deviceinfo.LoadManifest(cfg.Device.ManifestPath)
			if err != nil {
				return nil, fmt.Errorf("failed to load app manifest: %w", err)
			}
			bundleID = manifest.BundleID
			log.Info("App manifest loaded",
				zap.String("name", manifest.Name),
				zap.String("version", manifest.Version),
				zap.String("bundle_id", manifest.BundleID),
			)
		}
		source = deviceinfo.NewHostSource(bundleID, cfg.Device.OSReleasePath)
	}

	return &Modules{
		Logger:       logger.NewCore(log),
		Storage:      store,
		DeviceInfo:   deviceinfo.NewCore(source, log),
		Calculator:   calculator.NewCore(),
		Integrations: webview.New(registry),
	}, nil
}

func bindModules(r *interop.Registry, m *Modules) error {
	return errors.Join(
		interop.Provide(r, capability.LoggerKey, capability.Logger(m.Logger)),
		interop.Provide(r, capability.StorageKey, capability.Storage(m.Storage)),
		interop.Provide(r, capability.DeviceInfoKey, capability.DeviceInfo(m.DeviceInfo)),
		interop.Provide(r, capability.CalculatorKey, capability.Calculator(m.Calculator)),
		interop.Provide(r, capability.IntegrationsKey, capability.Integrations(m.Integrations)),
	)
}

func registerBridges(b *bridge.Registry, r *interop.Registry, m *Modules) error {
	return errors.Join(
		b.Register(bridge.NewLoggerModule(m.Logger)),
		b.Register(bridge.NewStorageModule(m.Storage, r)),
		b.Register(bridge.NewDeviceInfoModule(m.DeviceInfo)),
		b.Register(bridge.NewCalculatorModule(m.Calculator, r)),
		b.Register(bridge.NewIntegrationsModule(m.Integrations)),
	)
}

// Router returns the HTTP handler
func (s *Server) Router() http.Handler {
	return s.router
}

// Capabilities returns the registry the modules are bound in
func (s *Server) Capabilities() *interop.Registry {
	return s.capabilities
}

// Bridges returns the bridge module registry
func (s *Server) Bridges() *bridge.Registry {
	return s.bridges
}

// Modules returns the constructed capability implementations
func (s *Server) Modules() *Modules {
	return s.modules
}

// Addr returns the configured listen address
func (s *Server) Addr() string {
	return net.JoinHostPort(s.config.Server.Host, s.config.Server.Port)
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	s.http = &http.Server{
		Addr:              s.Addr(),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting HTTP server", zap.String("addr", s.http.Addr))
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down gracefully")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}

// Close flushes the tracer and the logger
func (s *Server) Close() error {
	s.tracer.Close()
	s.logger.Close()
	return nil
}
