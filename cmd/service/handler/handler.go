package handler

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/breeew/hairlog-api/internal/core"
	"github.com/breeew/hairlog-api/internal/response"
	"github.com/breeew/hairlog-api/internal/widget"
)

type HttpSrv struct {
	Core     *core.Core
	Engine   *gin.Engine
	Renderer *widget.Renderer
}

const (
	outcomeOK      = "ok"
	outcomeMessage = "message"
	outcomeError   = "error"
)

func (s *HttpSrv) fragment(c *gin.Context, name string, raw []byte, err error) {
	if err != nil {
		s.Core.Metrics().WidgetRender.WithLabelValues(name, outcomeError).Inc()
		response.APIError(c, err)
		return
	}
	s.Core.Metrics().WidgetRender.WithLabelValues(name, outcomeOK).Inc()
	response.Fragment(c, raw)
}

// message answers with an inline notice instead of the widget body.
func (s *HttpSrv) message(c *gin.Context, name, kind string) {
	raw, err := s.Renderer.Message(response.Locale(c), kind)
	if err != nil {
		s.fragment(c, name, nil, err)
		return
	}
	s.Core.Metrics().WidgetRender.WithLabelValues(name, outcomeMessage).Inc()
	response.Fragment(c, raw)
}

func (s *HttpSrv) retryLater(c *gin.Context, name string, err error) {
	slog.Error("widget failed", slog.String("widget", name), slog.String("request_id", response.RequestID(c)), slog.String("error", err.Error()))
	s.message(c, name, widget.MessageRetryLater)
}
