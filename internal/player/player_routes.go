package player

import (
	"github.com/gin-gonic/gin"
)

// RegisterPlayerRoutes mounts the player directory under /players.
func RegisterPlayerRoutes(router *gin.RouterGroup, service *PlayerService) {
	playerController := NewPlayerController(service)

	players := router.Group("/players")
	{
		players.POST("", playerController.SavePlayer)
		players.GET("", playerController.GetPlayers)
		players.GET("/:id", playerController.GetPlayerByID)
		players.DELETE("/:id", playerController.DeletePlayer)
	}
}
