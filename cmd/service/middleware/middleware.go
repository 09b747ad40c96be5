package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/breeew/hairlog-api/internal/core"
	v1 "github.com/breeew/hairlog-api/internal/logic/v1"
	"github.com/breeew/hairlog-api/internal/response"
	"github.com/breeew/hairlog-api/pkg/errors"
	"github.com/breeew/hairlog-api/pkg/i18n"
)

// I18n 目前服务端支持 en: English, zh-CN: 简体中文
func I18n(core *core.Core) gin.HandlerFunc {
	return response.ProvideResponseLocalizer(core.Localizer())
}

const (
	AUTH_TOKEN_HEADER_KEY = "X-Authorization"
	AUTH_TOKEN_COOKIE_KEY = "hairlog_token"
)

func tokenFromRequest(c *gin.Context) string {
	if v := c.GetHeader(AUTH_TOKEN_HEADER_KEY); v != "" {
		return v
	}
	if v := c.GetHeader("Authorization"); strings.HasPrefix(v, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(v, "Bearer "))
	}
	if v, err := c.Cookie(AUTH_TOKEN_COOKIE_KEY); err == nil {
		return v
	}
	return ""
}

// TryAuthorization attaches the session claims when the request carries a
// valid token. Anonymous requests pass through untouched.
func TryAuthorization(core *core.Core) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenValue := tokenFromRequest(c)
		if tokenValue == "" {
			return
		}

		claims, err := v1.NewAuthLogic(c, core).ParseSessionToken(tokenValue)
		if err != nil {
			slog.Debug("ignore session token", slog.String("error", err.Error()))
			return
		}
		c.Set(v1.TOKEN_CONTEXT_KEY, *claims)
	}
}

func Authorization(core *core.Core) gin.HandlerFunc {
	tracePrefix := "middleware.Authorization"
	return func(c *gin.Context) {
		tokenValue := tokenFromRequest(c)
		if tokenValue == "" {
			response.APIError(c, errors.New(tracePrefix, i18n.ERROR_UNAUTHORIZED, nil).Code(http.StatusUnauthorized))
			return
		}

		claims, err := v1.NewAuthLogic(c, core).ParseSessionToken(tokenValue)
		if err != nil {
			response.APIError(c, errors.Trace(tracePrefix, err))
			return
		}
		c.Set(v1.TOKEN_CONTEXT_KEY, *claims)
	}
}

func Cors(c *gin.Context) {
	method := c.Request.Method
	origin := c.Request.Header.Get("Origin")
	if origin != "" {
		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, X-Requested-With, Content-Type, Accept, Authorization, X-Authorization, HX-Request, HX-Current-URL, HX-Target")
		c.Header("Access-Control-Expose-Headers", "Content-Length, Access-Control-Allow-Origin, Access-Control-Allow-Headers, Cache-Control, Content-Language, Content-Type, X-Request-Id")
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Vary", "Origin")
	}
	if method == http.MethodOptions {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}
	c.Next()
}

func UseLimit(core *core.Core, operation string, genKeyFunc func(c *gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !core.UseLimiter(genKeyFunc(c), operation, core.Cfg().Site.RateLimit).Allow() {
			response.APIError(c, errors.New("middleware.limiter", i18n.ERROR_TOO_MANY_REQUESTS, nil).Code(http.StatusTooManyRequests))
		}
	}
}

// RequestLogger writes one log line per request and feeds the http metrics.
func RequestLogger(core *core.Core) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		latency := time.Since(start)

		core.Metrics().HttpRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(status)).Inc()
		core.Metrics().HttpDuration.WithLabelValues(c.Request.Method, route).Observe(latency.Seconds())

		slog.Info("http request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", status),
			slog.Duration("latency", latency),
			slog.String("request_id", response.RequestID(c)))
	}
}

func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		slog.Error("panic recovered", slog.Any("panic", recovered), slog.String("path", c.Request.URL.Path))
		c.AbortWithStatus(http.StatusInternalServerError)
	})
}
