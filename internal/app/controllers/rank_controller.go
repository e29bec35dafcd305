package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/takeo/dojomaster/internal/app/models"
	"github.com/takeo/dojomaster/internal/app/models/dto"
	"github.com/takeo/dojomaster/internal/app/services"
	"github.com/takeo/dojomaster/internal/middleware"
)

// RankController handles the promotion ladder endpoints.
type RankController struct {
	rankService services.RankService
}

// NewRankController creates a new RankController.
func NewRankController(rankService services.RankService) *RankController {
	return &RankController{rankService: rankService}
}

// ListRanks returns the ladder sorted ascending by order.
func (c *RankController) ListRanks(ctx *gin.Context) {
	ranks, err := c.rankService.GetLadder(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(ranks))
}

// UpdateRank replaces the rank definition with the given id.
func (c *RankController) UpdateRank(ctx *gin.Context) {
	var req dto.UpdateRankRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid rank data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	rank, err := c.rankService.UpdateRank(ctx, models.RankDefinition{
		ID:           ctx.Param("id"),
		Name:         req.Name,
		Order:        req.Order,
		Requirements: req.Requirements,
		Color:        req.Color,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(rank))
}
