package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/breeew/hairlog-api/internal/response"
	"github.com/breeew/hairlog-api/internal/sampledata"
	"github.com/breeew/hairlog-api/pkg/errors"
	"github.com/breeew/hairlog-api/pkg/i18n"
	"github.com/breeew/hairlog-api/pkg/utils"
)

func (s *HttpSrv) ListSampleGoals(c *gin.Context) {
	response.APISuccess(c, sampledata.Get().Goals)
}

func (s *HttpSrv) ListActiveSampleGoals(c *gin.Context) {
	response.APISuccess(c, sampledata.GetActiveGoals())
}

func (s *HttpSrv) GetSampleGoal(c *gin.Context) {
	goal, ok := sampledata.GetGoalByID(c.Param("id"))
	if !ok {
		response.APIError(c, errors.New("HttpSrv.GetSampleGoal.GetGoalByID", i18n.ERROR_NOTFOUND, nil).Code(http.StatusNotFound))
		return
	}
	response.APISuccess(c, goal)
}

type ListSampleEntriesRequest struct {
	Start string `form:"start" binding:"required"`
	End   string `form:"end" binding:"required"`
}

func (s *HttpSrv) ListSampleEntries(c *gin.Context) {
	var req ListSampleEntriesRequest
	if err := utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	loc := s.Core.Cfg().Site.Location()
	start, err := time.ParseInLocation(sampledata.DateLayout, req.Start, loc)
	if err != nil {
		response.APIError(c, errors.New("HttpSrv.ListSampleEntries.ParseStart", i18n.ERROR_INVALIDARGUMENT, err).Code(http.StatusBadRequest))
		return
	}
	end, err := time.ParseInLocation(sampledata.DateLayout, req.End, loc)
	if err != nil {
		response.APIError(c, errors.New("HttpSrv.ListSampleEntries.ParseEnd", i18n.ERROR_INVALIDARGUMENT, err).Code(http.StatusBadRequest))
		return
	}

	response.APISuccess(c, sampledata.GetEntriesByDateRange(start, end))
}

func (s *HttpSrv) ListTodaySampleEvents(c *gin.Context) {
	response.APISuccess(c, sampledata.GetTodayEvents(time.Now().In(s.Core.Cfg().Site.Location())))
}
