package challenge

import (
	"net/http"

	"github.com/DhavalSuthar-24/ladder/pkg/responses"
	"github.com/gin-gonic/gin"
)

type ChallengeController struct {
	service *ChallengeService
}

func NewChallengeController(service *ChallengeService) *ChallengeController {
	return &ChallengeController{service: service}
}

// CreateChallenge godoc
// @Summary Challenge other players
// @Description The challenger must be listed among the players and be registered in a category.
// @Tags challenges
// @Accept json
// @Produce json
// @Param challenge body CreateChallengeRequest true "Challenge"
// @Success 201 {object} responses.SuccessResponse
// @Failure 400 {object} responses.ErrorResponse
// @Router /challenges [post]
func (cc *ChallengeController) CreateChallenge(c *gin.Context) {
	var req CreateChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationError(c, err)
		return
	}

	created, err := cc.service.Create(c.Request.Context(), req)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Challenge created", created)
}

// GetChallenges godoc
// @Summary List challenges
// @Tags challenges
// @Produce json
// @Param status query string false "Filter by status" Enums(PENDING, ACCEPTED, DENIED, DONE, CANCELED)
// @Success 200 {object} responses.SuccessResponse
// @Failure 400 {object} responses.ErrorResponse
// @Router /challenges [get]
func (cc *ChallengeController) GetChallenges(c *gin.Context) {
	status := ChallengeStatus(c.Query("status"))
	challenges, err := cc.service.List(c.Request.Context(), status)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Challenges retrieved", challenges)
}

// GetChallengeByID godoc
// @Summary Get a challenge
// @Tags challenges
// @Produce json
// @Param id path string true "Challenge ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /challenges/{id} [get]
func (cc *ChallengeController) GetChallengeByID(c *gin.Context) {
	found, err := cc.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Challenge retrieved", found)
}

// GetPlayerChallenges godoc
// @Summary List the challenges a player takes part in
// @Tags challenges
// @Produce json
// @Param id path string true "Player ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /players/{id}/challenges [get]
func (cc *ChallengeController) GetPlayerChallenges(c *gin.Context) {
	challenges, err := cc.service.ListByPlayer(c.Request.Context(), c.Param("id"))
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Challenges retrieved", challenges)
}

// UpdateChallenge godoc
// @Summary Answer or reschedule a challenge
// @Tags challenges
// @Accept json
// @Param id path string true "Challenge ID"
// @Param update body UpdateChallengeRequest true "Fields to change"
// @Success 204
// @Failure 404 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Router /challenges/{id} [put]
func (cc *ChallengeController) UpdateChallenge(c *gin.Context) {
	var req UpdateChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationError(c, err)
		return
	}

	if err := cc.service.Update(c.Request.Context(), c.Param("id"), req); err != nil {
		responses.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RecordResult godoc
// @Summary Record the match result and close the challenge
// @Tags challenges
// @Accept json
// @Param id path string true "Challenge ID"
// @Param result body RecordResultRequest true "Result"
// @Success 204
// @Failure 400 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Router /challenges/{id}/match [post]
func (cc *ChallengeController) RecordResult(c *gin.Context) {
	var req RecordResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationError(c, err)
		return
	}

	if _, err := cc.service.RecordResult(c.Request.Context(), c.Param("id"), req); err != nil {
		responses.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CancelChallenge godoc
// @Summary Cancel a challenge
// @Tags challenges
// @Param id path string true "Challenge ID"
// @Success 204
// @Failure 404 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Router /challenges/{id} [delete]
func (cc *ChallengeController) CancelChallenge(c *gin.Context) {
	if err := cc.service.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		responses.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
