// Package server exposes the audit over a small JSON HTTP API.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/audiper-dev/audiper/internal/buildinfo"
	"github.com/audiper-dev/audiper/internal/demo"
	"github.com/audiper-dev/audiper/internal/metrics"
	"github.com/audiper-dev/audiper/internal/report"
	"github.com/audiper-dev/audiper/internal/runner"
)

const loggerKey = "logger"

// Server handles audit requests.
type Server struct {
	runner    *runner.Runner
	metrics   *metrics.Collector
	logger    *slog.Logger
	maxUpload int64
	limiter   *limiter.Limiter
}

// New creates a Server. The runner's Metrics collector, when set, also
// records HTTP traffic and is served on /metrics.
func New(r *runner.Runner, maxUploadBytes int64, logger *slog.Logger) *Server {
	return &Server{
		runner:    r,
		metrics:   r.Metrics,
		logger:    logger,
		maxUpload: maxUploadBytes,
	}
}

// LimitAudits caps audit uploads per client IP. rate uses the limiter's
// formatted notation, e.g. "60-M" for sixty per minute.
func (s *Server) LimitAudits(rate string) error {
	r, err := limiter.NewRateFromFormatted(rate)
	if err != nil {
		return fmt.Errorf("parsing audit rate %q: %w", rate, err)
	}
	s.limiter = limiter.New(memory.NewStore(), r)
	return nil
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(s.requestLogger(), gin.Recovery())

	r.GET("/healthz", s.health)
	if s.metrics != nil {
		r.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	}

	api := r.Group("/api/v1")
	{
		api.GET("/demo", s.getDemo)
		api.POST("/audit", s.rateLimit(), s.postAudit)
	}
	return r
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", slog.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down: %w", err)
		}
		return nil
	}
}

// requestLogger injects a request-scoped logger and records request metrics.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()

		log := s.logger.With(
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
		)
		c.Header("X-Request-ID", requestID)
		c.Set(loggerKey, log)

		c.Next()

		took := time.Since(start)
		log.Info("request completed",
			slog.Int("status", c.Writer.Status()),
			slog.Duration("latency", took),
		)
		if s.metrics != nil {
			route := c.FullPath()
			if route == "" {
				route = "unmatched"
			}
			s.metrics.ObserveRequest(route, c.Writer.Status(), took)
		}
	}
}

// rateLimit rejects requests over the audit rate. Without LimitAudits it
// passes everything through.
func (s *Server) rateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.limiter == nil {
			c.Next()
			return
		}

		ip := c.ClientIP()
		lc, err := s.limiter.Get(c.Request.Context(), ip)
		if err != nil {
			loggerFrom(c).Error("rate limit check failed", slog.String("ip", ip), slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "erro interno"})
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(lc.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(lc.Remaining, 10))
		if lc.Reached {
			loggerFrom(c).Warn("rate limit exceeded", slog.String("ip", ip), slog.Int64("limit", lc.Limit))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "muitas requisições, tente novamente mais tarde"})
			return
		}
		c.Next()
	}
}

func loggerFrom(c *gin.Context) *slog.Logger {
	if v, ok := c.Get(loggerKey); ok {
		if l, ok := v.(*slog.Logger); ok {
			return l
		}
	}
	return slog.Default()
}

func withBalances(c *gin.Context) bool {
	return c.Query("balancete") == "true" || c.Query("balancete") == "1"
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "version": buildinfo.Version})
}

func (s *Server) getDemo(c *gin.Context) {
	header, _, balances := demo.Generate()
	rep := s.runner.RunBalances("demo", &header, balances)
	c.JSON(http.StatusOK, report.NewDocument(rep, withBalances(c)))
}

// postAudit audits a raw ISO-8859-1 SPED ECD body.
func (s *Server) postAudit(c *gin.Context) {
	log := loggerFrom(c)
	source := c.DefaultQuery("arquivo", "upload")

	body := http.MaxBytesReader(c.Writer, c.Request.Body, s.maxUpload)
	out, err := s.runner.Run(source, body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "arquivo excede o limite de upload"})
			return
		}
		log.Error("failed to read upload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "falha ao ler o arquivo"})
		return
	}

	if !out.OK() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status":      out.Parse.Status,
			"descartados": out.Parse.Dropped,
		})
		return
	}
	c.JSON(http.StatusOK, report.NewDocument(out.Report, withBalances(c)))
}
