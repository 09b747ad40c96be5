package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	v1 "github.com/breeew/hairlog-api/internal/logic/v1"
	"github.com/breeew/hairlog-api/internal/response"
	"github.com/breeew/hairlog-api/internal/widget"
)

const (
	WIDGET_PROFILE         = "profile"
	WIDGET_ACTIVITY        = "activity"
	WIDGET_HEALTH          = "health"
	WIDGET_RECOMMENDATIONS = "recommendations"

	maxActivityLimit = 50
)

func (s *HttpSrv) ProfileWidget(c *gin.Context) {
	logic := v1.NewProfileLogic(c, s.Core)
	if !logic.IsAuthenticated() {
		s.message(c, WIDGET_PROFILE, widget.MessageNotAuthenticated)
		return
	}

	userID := logic.ResolveUserID(c.Param("userid"))
	user, err := logic.GetUser(userID)
	if err != nil {
		s.retryLater(c, WIDGET_PROFILE, err)
		return
	}
	if user == nil {
		s.message(c, WIDGET_PROFILE, widget.MessageNotFound)
		return
	}

	profile, err := logic.GetProfile(userID)
	if err != nil {
		s.retryLater(c, WIDGET_PROFILE, err)
		return
	}
	if profile == nil {
		if logic.GetUserInfo().User != userID {
			s.message(c, WIDGET_PROFILE, widget.MessageNotFound)
			return
		}
		if profile, err = logic.EnsureProfile(userID); err != nil {
			s.retryLater(c, WIDGET_PROFILE, err)
			return
		}
	}

	raw, err := s.Renderer.Profile(widget.ProfileView{
		Locale:    response.Locale(c),
		User:      user,
		Profile:   *profile,
		Snapshots: logic.Snapshots(profile),
	})
	s.fragment(c, WIDGET_PROFILE, raw, err)
}

func (s *HttpSrv) ActivityWidget(c *gin.Context) {
	logic := v1.NewActivityLogic(c, s.Core)
	userID := v1.NewProfileLogic(c, s.Core).ResolveUserID(c.Param("userid"))
	if userID == "" {
		s.message(c, WIDGET_ACTIVITY, widget.MessageNotAuthenticated)
		return
	}

	limit, _ := strconv.Atoi(c.Query("limit"))
	if limit > maxActivityLimit {
		limit = maxActivityLimit
	}

	items, err := logic.RecentActivity(userID, limit)
	if err != nil {
		s.retryLater(c, WIDGET_ACTIVITY, err)
		return
	}

	raw, err := s.Renderer.Activity(widget.ActivityView{
		Locale: response.Locale(c),
		Items:  items,
	})
	s.fragment(c, WIDGET_ACTIVITY, raw, err)
}

func (s *HttpSrv) HealthWidget(c *gin.Context) {
	userID := v1.NewProfileLogic(c, s.Core).ResolveUserID(c.Param("userid"))
	if userID == "" {
		s.message(c, WIDGET_HEALTH, widget.MessageNotAuthenticated)
		return
	}

	summary, err := v1.NewActivityLogic(c, s.Core).HealthSummary(userID, 0)
	if err != nil {
		s.retryLater(c, WIDGET_HEALTH, err)
		return
	}

	raw, err := s.Renderer.Health(widget.HealthView{
		Locale:  response.Locale(c),
		Summary: summary,
	})
	s.fragment(c, WIDGET_HEALTH, raw, err)
}

func (s *HttpSrv) RecommendationsWidget(c *gin.Context) {
	userID := v1.NewProfileLogic(c, s.Core).ResolveUserID(c.Param("userid"))
	if userID == "" {
		s.message(c, WIDGET_RECOMMENDATIONS, widget.MessageNotAuthenticated)
		return
	}

	site := s.Core.Cfg().Site
	products, err := v1.NewRecommendLogic(c, s.Core).ComputeTopProducts(userID, site.RecentEntryLimit, site.ResultLimit)
	if err != nil {
		s.retryLater(c, WIDGET_RECOMMENDATIONS, err)
		return
	}

	raw, err := s.Renderer.Recommendations(widget.RecommendationsView{
		Locale:   response.Locale(c),
		Products: products,
	})
	s.fragment(c, WIDGET_RECOMMENDATIONS, raw, err)
}
