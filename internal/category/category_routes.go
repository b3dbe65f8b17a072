package category

import (
	"github.com/gin-gonic/gin"
)

func RegisterCategoryRoutes(router *gin.RouterGroup, service *CategoryService) {
	categoryController := NewCategoryController(service)

	categories := router.Group("/categories")
	{
		categories.POST("", categoryController.CreateCategory)
		categories.GET("", categoryController.GetCategories)
		categories.GET("/:id", categoryController.GetCategoryByID)
		categories.POST("/:id/players/:playerId", categoryController.AssignPlayer)
	}
}
