package response

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/breeew/hairlog-api/pkg/errors"
	"github.com/breeew/hairlog-api/pkg/i18n"
	"github.com/breeew/hairlog-api/pkg/utils"
)

const (
	REQUEST_ID_KEY    = "__hairlog.request_id"
	REQUEST_ID_HEADER = "X-Request-Id"
)

type Meta struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

type Body struct {
	Meta Meta `json:"meta"`
	Data any  `json:"data,omitempty"`
}

// NewResponse tags every request with an id echoed back in the envelope.
func NewResponse() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(REQUEST_ID_HEADER)
		if id == "" {
			id = utils.RandomStr(16)
		}
		c.Set(REQUEST_ID_KEY, id)
		c.Header(REQUEST_ID_HEADER, id)
	}
}

func RequestID(c *gin.Context) string {
	return c.GetString(REQUEST_ID_KEY)
}

func APISuccess(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Body{
		Meta: Meta{
			Code:      http.StatusOK,
			Message:   "success",
			RequestID: RequestID(c),
		},
		Data: data,
	})
}

func APIError(c *gin.Context, err error) {
	code := http.StatusInternalServerError
	msg := i18n.ERROR_INTERNAL

	var ce *errors.CustomizedError
	if errors.As(err, &ce) {
		code = ce.HttpCode()
		msg = ce.Message()
	}

	if code >= http.StatusInternalServerError {
		slog.Error("request failed", slog.String("request_id", RequestID(c)), slog.String("path", c.FullPath()), slog.String("error", err.Error()))
	} else {
		slog.Debug("request rejected", slog.String("request_id", RequestID(c)), slog.String("path", c.FullPath()), slog.String("error", err.Error()))
	}

	c.AbortWithStatusJSON(code, Body{
		Meta: Meta{
			Code:      code,
			Message:   Localize(c, msg),
			RequestID: RequestID(c),
		},
	})
}

// Fragment writes a rendered HTML fragment.
func Fragment(c *gin.Context, body []byte) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", body)
}
