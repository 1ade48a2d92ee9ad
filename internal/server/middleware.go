package server

import (
	"net/http"
	"strings"
	"time"

	"taskbridge/internal/user"
	"taskbridge/pkg/errors"
	"taskbridge/pkg/utils"

	"github.com/gin-gonic/gin"
)

const callerKey = "caller"

// authenticate resolves the bearer token into a Caller once per request.
func (s *Server) authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "missing token"})
			return
		}

		userID, err := utils.ParseJWTToken(strings.TrimPrefix(h, "Bearer "), s.cfg.JWT.Secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
			return
		}

		caller, err := s.uc.Users.ResolveCaller(c.Request.Context(), userID)
		if err != nil {
			s.abortWithError(c, err)
			return
		}
		c.Set(callerKey, caller)
		c.Next()
	}
}

func callerFrom(c *gin.Context) *user.Caller {
	v, ok := c.Get(callerKey)
	if !ok {
		return nil
	}
	caller, _ := v.(*user.Caller)
	return caller
}

// rateLimit keys on the caller when known and on the client IP otherwise.
func (s *Server) rateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if caller := callerFrom(c); caller.Resolved() {
			key = caller.ID.String()
		}
		if !s.limiter.Allow(key) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"message": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debug("http request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

var statusByCode = map[errors.Code]int{
	errors.CodeInvalidArgument:    http.StatusBadRequest,
	errors.CodeUnauthenticated:    http.StatusUnauthorized,
	errors.CodePermissionDenied:   http.StatusForbidden,
	errors.CodeNotFound:           http.StatusNotFound,
	errors.CodeAlreadyExists:      http.StatusConflict,
	errors.CodeFailedPrecondition: http.StatusConflict,
	errors.CodeDeadlineExceeded:   http.StatusGatewayTimeout,
}

// StatusOf maps an error to the HTTP status it is reported with.
func StatusOf(err error) int {
	if status, ok := statusByCode[errors.CodeOf(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func (s *Server) abortWithError(c *gin.Context, err error) {
	status := StatusOf(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "path", c.FullPath(), "err", err)
		c.AbortWithStatusJSON(status, gin.H{"message": "internal error", "kind": errors.KindInternal})
		return
	}
	var msg string
	if appErr, ok := err.(*errors.AppError); ok {
		msg = appErr.Message
	} else {
		msg = err.Error()
	}
	c.AbortWithStatusJSON(status, gin.H{
		"message": msg,
		"code":    errors.CodeOf(err),
		"kind":    errors.KindOf(err),
	})
}
