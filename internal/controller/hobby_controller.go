package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/starthobby/backend/internal/dto"
	"github.com/starthobby/backend/internal/service"
)

type HobbyEntryController struct {
	hobbyService service.HobbyEntryService
}

func NewHobbyEntryController(hobbyService service.HobbyEntryService) *HobbyEntryController {
	return &HobbyEntryController{hobbyService: hobbyService}
}

// SubmitHobbyEntry godoc
// @Summary Submit a free-text hobby
// @Description Normalizes the hobby (trim + lowercase) and atomically increments its tally.
// @Tags Hobby Entries
// @Accept json
// @Produce json
// @Param entry body dto.HobbyEntryRequest true "The hobby text"
// @Success 200 {object} dto.HobbyEntryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /hobby-entries [post]
func (c *HobbyEntryController) SubmitHobbyEntry(ctx *gin.Context) {
	var req dto.HobbyEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Success: false, Error: "invalid request body"})
		return
	}

	entry, err := c.hobbyService.Submit(req.Hobby)
	if err != nil {
		var vErr *service.ValidationError
		if errors.As(err, &vErr) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Success: false, Error: vErr.Message})
			return
		}
		log.Error().Err(err).Msg("SubmitHobbyEntry: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Success: false, Error: "failed to record hobby"})
		return
	}
	ctx.JSON(http.StatusOK, entry)
}

// GetTopHobbyEntries godoc
// @Summary List the most submitted hobbies
// @Description Top 50 hobby tallies, highest count first, most recently bumped breaking ties.
// @Tags Hobby Entries
// @Produce json
// @Success 200 {array} dto.HobbyEntryResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /hobby-entries [get]
func (c *HobbyEntryController) GetTopHobbyEntries(ctx *gin.Context) {
	entries, err := c.hobbyService.TopEntries()
	if err != nil {
		log.Error().Err(err).Msg("GetTopHobbyEntries: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Success: false, Error: "failed to retrieve hobby entries"})
		return
	}
	ctx.JSON(http.StatusOK, entries)
}
