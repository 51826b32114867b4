package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/starthobby/backend/internal/dto"
	"github.com/starthobby/backend/internal/service"
	"gorm.io/gorm"
)

type ResultsController struct {
	resultService service.ResultService
}

func NewResultsController(resultService service.ResultService) *ResultsController {
	return &ResultsController{resultService: resultService}
}

// statusForError maps the service error taxonomy to HTTP codes. Everything
// outside the taxonomy collapses to 500.
func statusForError(err error) int {
	var vErr *service.ValidationError
	if errors.As(err, &vErr) {
		return http.StatusBadRequest
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// Finalize godoc
// @Summary Finalize a quiz adventure and generate a personality profile
// @Description Persists the three games' raw answers, asks the chat-completion upstream for a personality profile and returns it. The submission row is recorded even when profile generation later fails.
// @Tags Results
// @Accept json
// @Produce json
// @Param submission body dto.FinalizeRequest true "Email plus the optional per-game answer sets"
// @Success 200 {object} dto.FinalizeResponse
// @Failure 400 {object} dto.ErrorResponse "Missing email or unreadable body"
// @Failure 500 {object} dto.ErrorResponse "Upstream, parse or persistence failure"
// @Router /results/finalize [post]
func (c *ResultsController) Finalize(ctx *gin.Context) {
	var req dto.FinalizeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Finalize: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Success: false, Error: "invalid request body"})
		return
	}

	analysis, err := c.resultService.Finalize(ctx.Request.Context(), req)
	if err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("Finalize: pipeline failed")
		ctx.JSON(statusForError(err), dto.ErrorResponse{Success: false, Error: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, dto.FinalizeResponse{Success: true, Analysis: analysis})
}

// GetAllResults godoc
// @Summary List all quiz submissions
// @Description All submission rows joined with the owning username, newest first.
// @Tags Results
// @Produce json
// @Success 200 {array} dto.SubmissionResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /results/all [get]
func (c *ResultsController) GetAllResults(ctx *gin.Context) {
	results, err := c.resultService.GetAllResults()
	if err != nil {
		log.Error().Err(err).Msg("GetAllResults: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Success: false, Error: "failed to retrieve results"})
		return
	}
	ctx.JSON(http.StatusOK, results)
}

// GetAIProfile godoc
// @Summary Get the most recent generated profile for an email
// @Tags Results
// @Produce json
// @Param email path string true "Email the profile was generated for"
// @Success 200 {object} dto.AIProfileResponse
// @Failure 404 {object} dto.ErrorResponse "No profile stored for this email"
// @Failure 500 {object} dto.ErrorResponse
// @Router /results/ai-profile/{email} [get]
func (c *ResultsController) GetAIProfile(ctx *gin.Context) {
	email := ctx.Param("email")
	profile, err := c.resultService.GetLatestProfile(email)
	if err != nil {
		status := statusForError(err)
		if status == http.StatusNotFound {
			ctx.JSON(status, dto.ErrorResponse{Success: false, Error: "no profile found for this email"})
			return
		}
		log.Error().Err(err).Str("email", email).Msg("GetAIProfile: service error")
		ctx.JSON(status, dto.ErrorResponse{Success: false, Error: "failed to retrieve profile"})
		return
	}
	ctx.JSON(http.StatusOK, profile)
}

// SaveProfile godoc
// @Summary Persist a personality profile explicitly
// @Description Separate from finalize's implicit best-effort path. Multiple rows per email are allowed; reads take the most recent.
// @Tags Results
// @Accept json
// @Produce json
// @Param profile body dto.SaveProfileRequest true "Profile to store"
// @Success 201 {object} dto.FinalizeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /ai-profile/save [post]
func (c *ResultsController) SaveProfile(ctx *gin.Context) {
	var req dto.SaveProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SaveProfile: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Success: false, Error: "email and personalitySummary are required"})
		return
	}

	if err := c.resultService.SaveProfile(req); err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("SaveProfile: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Success: false, Error: "failed to save profile"})
		return
	}
	ctx.JSON(http.StatusCreated, dto.FinalizeResponse{Success: true})
}
