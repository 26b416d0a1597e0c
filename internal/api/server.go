package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Ruselmi/mine-and-cheet/internal/config"
	"github.com/Ruselmi/mine-and-cheet/internal/logging"
	"github.com/Ruselmi/mine-and-cheet/internal/metrics"
	"github.com/Ruselmi/mine-and-cheet/internal/middleware"
	"github.com/Ruselmi/mine-and-cheet/internal/world/block"
)

// Version - версия хоста в /api/status
const Version = "v0.1.0"

// Options - зависимости сервера, которые удобно подменять в тестах
type Options struct {
	Registerer prometheus.Registerer // Куда регистрировать метрики
	Gatherer   prometheus.Gatherer   // Откуда /metrics берёт метрики
}

// Server - HTTP хост песочницы: служебные маршруты и WebSocket-мост
type Server struct {
	router     *gin.Engine
	httpServer *http.Server
	bridge     *Bridge
	stats      *metrics.ProcessStats
	cfg        *config.Config
}

// NewServer создаёт сервер. Отмена ctx закрывает все WebSocket-сессии.
func NewServer(ctx context.Context, cfg *config.Config, opts Options) *Server {
	if opts.Registerer == nil {
		opts.Registerer = prometheus.DefaultRegisterer
	}
	if opts.Gatherer == nil {
		opts.Gatherer = prometheus.DefaultGatherer
	}

	gin.SetMode(gin.ReleaseMode)

	router := gin.New()        // без стандартного logger/recovery
	router.Use(gin.Recovery()) // добавим только recovery

	// === Observability middleware ===
	router.Use(otelgin.Middleware(cfg.Telemetry.ServiceName))
	router.Use(middleware.NewRequestLogger("/health", "/metrics").Handler())

	promMw := middleware.NewPrometheusMiddleware("sandbox_api", opts.Registerer)
	router.Use(promMw.Handler())
	promMw.RegisterMetricsEndpoint(router, opts.Gatherer)

	s := &Server{
		router: router,
		bridge: NewBridge(ctx, cfg, metrics.New(opts.Registerer)),
		stats:  metrics.NewProcessStats(),
		cfg:    cfg,
	}
	s.setupRoutes()

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.GetHTTPPort()),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// setupRoutes настраивает маршруты
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)
	s.router.GET("/ws", s.bridge.HandleWebSocket)

	api := s.router.Group("/api")
	{
		api.GET("/blocks", s.handleBlocks)
		api.GET("/status", s.handleStatus)
	}
}

// BlockInfo описывает тип блока для рендерера
type BlockInfo struct {
	ID    uint16      `json:"id"`
	Key   string      `json:"key"`
	Name  string      `json:"name"`
	Faces block.Faces `json:"faces"`
}

// handleBlocks отдаёт реестр блоков с текстурами граней
func (s *Server) handleBlocks(c *gin.Context) {
	all := block.All()
	out := make([]BlockInfo, 0, len(all))
	for _, b := range all {
		out = append(out, BlockInfo{
			ID:    uint16(b.ID()),
			Key:   b.ID().String(),
			Name:  b.Name(),
			Faces: b.Faces(),
		})
	}
	c.JSON(http.StatusOK, out)
}

// handleStatus отдаёт показатели процесса, число сессий и параметры мира
func (s *Server) handleStatus(c *gin.Context) {
	info := s.stats.Snapshot()
	info["version"] = Version
	info["world_size"] = s.cfg.World.Size
	info["tick_rate"] = s.cfg.Session.TickRate
	info["place_block"] = s.cfg.Interaction.PlaceBlock.String()
	info["active_sessions"] = s.bridge.ActiveSessions()
	c.JSON(http.StatusOK, info)
}

// handleHealth - проверка живости
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().Unix(),
	})
}

// Handler возвращает http.Handler сервера
func (s *Server) Handler() http.Handler {
	return s.router
}

// Addr возвращает адрес прослушивания
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Start блокирует до остановки сервера
func (s *Server) Start() error {
	logging.Info("🌐 HTTP хост слушает %s (/ws, /health, /metrics, /api/blocks)", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("ошибка HTTP сервера: %w", err)
	}
	return nil
}

// Shutdown плавно останавливает приём запросов
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
