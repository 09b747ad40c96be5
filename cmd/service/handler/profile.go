package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/breeew/hairlog-api/internal/logic/v1"
	"github.com/breeew/hairlog-api/internal/response"
	"github.com/breeew/hairlog-api/pkg/types"
)

type GetProfileResponse struct {
	types.Profile
	Snapshots []types.AnalysisSnapshot `json:"snapshots"`
}

func (s *HttpSrv) GetProfile(c *gin.Context) {
	logic := v1.NewProfileLogic(c, s.Core)
	profile, err := logic.EnsureProfile(logic.GetUserInfo().User)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, GetProfileResponse{
		Profile:   *profile,
		Snapshots: logic.Snapshots(profile),
	})
}
