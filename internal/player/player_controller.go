package player

import (
	"net/http"

	"github.com/DhavalSuthar-24/ladder/pkg/responses"
	"github.com/gin-gonic/gin"
)

// PlayerController handles player-related HTTP requests
type PlayerController struct {
	service *PlayerService
}

func NewPlayerController(service *PlayerService) *PlayerController {
	return &PlayerController{service: service}
}

// SavePlayer godoc
// @Summary Create or update a player by email
// @Tags players
// @Accept json
// @Produce json
// @Param player body SavePlayerRequest true "Player"
// @Success 200 {object} responses.SuccessResponse
// @Failure 400 {object} responses.ErrorResponse
// @Router /players [post]
func (pc *PlayerController) SavePlayer(c *gin.Context) {
	var req SavePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationError(c, err)
		return
	}

	p, err := pc.service.Save(c.Request.Context(), req)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Player saved", p)
}

// GetPlayers godoc
// @Summary List players
// @Tags players
// @Produce json
// @Success 200 {object} responses.SuccessResponse
// @Router /players [get]
func (pc *PlayerController) GetPlayers(c *gin.Context) {
	players, err := pc.service.ListAll(c.Request.Context())
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Players retrieved", players)
}

// GetPlayerByID godoc
// @Summary Get a player
// @Tags players
// @Produce json
// @Param id path string true "Player ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /players/{id} [get]
func (pc *PlayerController) GetPlayerByID(c *gin.Context) {
	p, err := pc.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Player retrieved", p)
}

// DeletePlayer godoc
// @Summary Delete a player
// @Tags players
// @Param id path string true "Player ID"
// @Success 204
// @Failure 404 {object} responses.ErrorResponse
// @Router /players/{id} [delete]
func (pc *PlayerController) DeletePlayer(c *gin.Context) {
	if err := pc.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		responses.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
