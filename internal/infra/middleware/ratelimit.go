package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guih-henriqueee/agendamentos-api/internal/infra/metrics"
	"github.com/guih-henriqueee/agendamentos-api/pkg/ratelimit"
	"go.uber.org/zap"
)

// RateLimitMiddleware gerencia rate limiting
type RateLimitMiddleware struct {
	limiter *ratelimit.RedisLimiter
	logger  *zap.Logger
	metrics *metrics.APIMetrics
	limit   int
	period  time.Duration
}

// NewRateLimitMiddleware cria um novo middleware de rate limiting.
// limiter pode ser nil quando não há Redis configurado; nesse caso o
// middleware vira um no-op.
func NewRateLimitMiddleware(limiter *ratelimit.RedisLimiter, metrics *metrics.APIMetrics, logger *zap.Logger, limit int, period time.Duration) *RateLimitMiddleware {
	if limit <= 0 {
		limit = 100
	}
	if period <= 0 {
		period = time.Minute
	}

	return &RateLimitMiddleware{
		limiter: limiter,
		logger:  logger,
		metrics: metrics,
		limit:   limit,
		period:  period,
	}
}

// IPRateLimit limita requisições por IP
func (m *RateLimitMiddleware) IPRateLimit() gin.HandlerFunc {
	if m.limiter == nil {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		clientIP := c.ClientIP()

		config := ratelimit.LimitConfig{
			Key:         clientIP,
			Limit:       m.limit,
			Period:      m.period,
			BurstFactor: 1.5, // permite até 50% mais em picos
		}

		blockKey := fmt.Sprintf("ratelimit:blocked:%s", clientIP)
		blocked, _ := m.limiter.RedisClient.Get(c, blockKey).Bool()
		if blocked {
			c.Header("Retry-After", "600") // 10 minutos
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "IP temporariamente bloqueado devido a excesso de requisições",
				"retry_after": 600,
			})
			return
		}

		allowed, limit, remaining, resetAfter, err := m.limiter.Allow(c.Request.Context(), config)
		if err != nil {
			m.logger.Error("erro ao verificar rate limit", zap.Error(err))
			c.Next() // Em caso de erro, permite a requisição
			return
		}

		if !allowed && remaining < -limit {
			// Volume muito acima do limite: bloquear o IP por 10 minutos
			if m.metrics != nil {
				path := c.FullPath()
				if path == "" {
					path = c.Request.URL.Path
				}
				m.metrics.RateLimitExceeded(path, c.Request.Method, "ip_block")
			}
			m.logger.Warn("alto volume de requisições de um mesmo IP",
				zap.String("ip", clientIP),
				zap.Int("requests", limit-remaining))

			m.limiter.RedisClient.Set(c, blockKey, true, 10*time.Minute)

			c.Header("Retry-After", "600")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "Limite de requisições excedido significativamente",
				"retry_after": 600,
			})
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(resetAfter).Unix(), 10))

		if !allowed {
			if m.metrics != nil {
				path := c.FullPath()
				if path == "" {
					path = c.Request.URL.Path
				}
				m.metrics.RateLimitExceeded(path, c.Request.Method, "ip_limit")
			}

			c.Header("Retry-After", strconv.Itoa(int(resetAfter.Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "taxa de requisições excedida",
				"retry_after": int(resetAfter.Seconds()),
			})
			return
		}

		c.Next()
	}
}

// APIRateLimit limita requisições para um recurso específico
func (m *RateLimitMiddleware) APIRateLimit(limit int, period time.Duration) gin.HandlerFunc {
	if m.limiter == nil {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		config := ratelimit.LimitConfig{
			Key:         "api:" + path,
			Limit:       limit,
			Period:      period,
			BurstFactor: 1.2, // permite até 20% mais em picos
		}

		allowed, limit, remaining, resetAfter, err := m.limiter.Allow(c.Request.Context(), config)
		if err != nil {
			m.logger.Error("erro ao verificar rate limit do recurso", zap.Error(err))
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(resetAfter).Unix(), 10))

		if !allowed {
			if m.metrics != nil {
				m.metrics.RateLimitExceeded(path, c.Request.Method, "api_limit")
			}

			c.Header("Retry-After", strconv.Itoa(int(resetAfter.Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "taxa de requisições para este recurso excedida",
				"retry_after": int(resetAfter.Seconds()),
			})
			return
		}

		c.Next()
	}
}
