package server

import (
	"context"
	"net/http"
	"time"

	"taskbridge/config"
	"taskbridge/internal/conversation"
	"taskbridge/internal/job"
	"taskbridge/internal/proposal"
	"taskbridge/internal/review"
	"taskbridge/internal/user"
	"taskbridge/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Usecases are the operations the HTTP layer fronts.
type Usecases struct {
	Users         user.UserUsecase
	Conversations conversation.ConversationUsecase
	Proposals     proposal.ProposalUsecase
	Jobs          job.JobUsecase
	Reviews       review.ReviewUsecase
}

type Server struct {
	cfg     *config.Config
	uc      Usecases
	logger  logger.Logger
	limiter *limiterPool
	engine  *gin.Engine
}

func New(cfg *config.Config, uc Usecases, logger logger.Logger) *Server {
	if cfg.Server.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	s := &Server{
		cfg:     cfg,
		uc:      uc,
		logger:  logger,
		limiter: newLimiterPool(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst),
		engine:  gin.New(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	r := s.engine
	r.Use(gin.Recovery(), s.requestLogger())

	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	public := r.Group("/api/v1")
	public.Use(s.rateLimit())
	public.POST("/users", s.register)
	public.GET("/users/:id/profile", s.getUserProfile)

	authed := r.Group("/api/v1")
	authed.Use(s.authenticate(), s.rateLimit())

	authed.PATCH("/me", s.updateDisplayName)

	authed.GET("/conversations", s.listConversations)
	authed.POST("/conversations", s.openConversation)
	authed.GET("/conversations/:id", s.getConversation)
	authed.POST("/conversations/:id/read", s.markRead)
	authed.GET("/conversations/:id/messages", s.listMessages)
	authed.POST("/conversations/:id/messages", s.sendMessage)
	authed.GET("/conversations/:id/proposals", s.listProposals)
	authed.POST("/conversations/:id/proposals", s.sendProposal)

	authed.GET("/proposals/:id", s.getProposal)
	authed.POST("/proposals/:id/accept", s.acceptProposal)
	authed.POST("/proposals/:id/decline", s.declineProposal)
	authed.POST("/proposals/:id/counter", s.counterProposal)

	authed.GET("/jobs/:id", s.getJob)
	authed.POST("/jobs/:id/start", s.startJob)
	authed.POST("/jobs/:id/complete", s.completeJob)
	authed.POST("/jobs/:id/cancel", s.cancelJob)
	authed.GET("/jobs/:id/reviews", s.listJobReviews)
	authed.POST("/jobs/:id/reviews", s.submitReview)
}

// Handler exposes the router, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              ":" + s.cfg.Server.Port,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrap(err, "server.ListenAndServe")
	case <-ctx.Done():
	}

	timeout := s.cfg.Server.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	s.logger.Info("http server shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "server.Shutdown")
	}
	return nil
}
