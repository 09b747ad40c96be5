package service

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/breeew/hairlog-api/cmd/service/handler"
	"github.com/breeew/hairlog-api/cmd/service/middleware"
	"github.com/breeew/hairlog-api/internal/core"
	v1 "github.com/breeew/hairlog-api/internal/logic/v1"
	"github.com/breeew/hairlog-api/internal/response"
	"github.com/breeew/hairlog-api/internal/widget"
)

func serve(core *core.Core) error {
	httpSrv := NewHttpSrv(core)
	setupHttpRouter(httpSrv)

	srv := &http.Server{
		Addr:              core.Cfg().Addr,
		Handler:           core.HttpEngine(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown http server", slog.String("error", err.Error()))
		}
	}()

	slog.Info("http server listening", slog.String("addr", srv.Addr), slog.String("mode", core.Name()))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func NewHttpSrv(core *core.Core) *handler.HttpSrv {
	return &handler.HttpSrv{
		Core:     core,
		Engine:   core.HttpEngine(),
		Renderer: widget.NewRenderer(),
	}
}

func GetIPLimitBuilder(core *core.Core) func(key string) gin.HandlerFunc {
	return func(key string) gin.HandlerFunc {
		return middleware.UseLimit(core, key, func(c *gin.Context) string {
			return key + ":" + c.ClientIP()
		})
	}
}

func GetUserLimitBuilder(core *core.Core) func(key string) gin.HandlerFunc {
	return func(key string) gin.HandlerFunc {
		return middleware.UseLimit(core, key, func(c *gin.Context) string {
			token, _ := v1.InjectTokenClaim(c)
			if token.User == "" {
				return key + ":" + c.ClientIP()
			}
			return key + ":" + token.User
		})
	}
}

func setupHttpRouter(s *handler.HttpSrv) {
	ipLimit := GetIPLimitBuilder(s.Core)
	userLimit := GetUserLimitBuilder(s.Core)

	s.Engine.Use(middleware.Recovery(), response.NewResponse(), middleware.RequestLogger(s.Core))
	s.Engine.Use(middleware.I18n(s.Core), middleware.Cors)

	s.Engine.GET("/healthz", func(c *gin.Context) {
		response.APISuccess(c, gin.H{"status": "ok", "mode": s.Core.Name()})
	})
	s.Engine.GET("/metrics", gin.WrapH(s.Core.Metrics().Handler()))

	widgets := s.Engine.Group("/widgets")
	{
		widgets.Use(middleware.TryAuthorization(s.Core), userLimit("widget"))
		widgets.GET("/profile", s.ProfileWidget)
		widgets.GET("/profile/:userid", s.ProfileWidget)
		widgets.GET("/activity", s.ActivityWidget)
		widgets.GET("/activity/:userid", s.ActivityWidget)
		widgets.GET("/health", s.HealthWidget)
		widgets.GET("/health/:userid", s.HealthWidget)
		widgets.GET("/recommendations", s.RecommendationsWidget)
		widgets.GET("/recommendations/:userid", s.RecommendationsWidget)
	}

	apiV1 := s.Engine.Group("/api/v1")
	{
		apiV1.GET("/mode", func(c *gin.Context) {
			response.APISuccess(c, s.Core.Name())
		})

		sample := apiV1.Group("/sample")
		{
			sample.Use(ipLimit("sample"))
			sample.GET("/goals", s.ListSampleGoals)
			sample.GET("/goals/active", s.ListActiveSampleGoals)
			sample.GET("/goals/:id", s.GetSampleGoal)
			sample.GET("/entries", s.ListSampleEntries)
			sample.GET("/events/today", s.ListTodaySampleEvents)
		}

		authed := apiV1.Group("")
		authed.Use(middleware.Authorization(s.Core))
		{
			authed.GET("/profile", userLimit("profile"), s.GetProfile)
		}
	}
}
