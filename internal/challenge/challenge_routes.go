package challenge

import (
	"github.com/gin-gonic/gin"
)

func RegisterChallengeRoutes(router *gin.RouterGroup, service *ChallengeService) {
	challengeController := NewChallengeController(service)

	challenges := router.Group("/challenges")
	{
		challenges.POST("", challengeController.CreateChallenge)
		challenges.GET("", challengeController.GetChallenges)
		challenges.GET("/:id", challengeController.GetChallengeByID)
		challenges.PUT("/:id", challengeController.UpdateChallenge)
		challenges.POST("/:id/match", challengeController.RecordResult)
		challenges.DELETE("/:id", challengeController.CancelChallenge)
	}

	router.GET("/players/:id/challenges", challengeController.GetPlayerChallenges)
}
