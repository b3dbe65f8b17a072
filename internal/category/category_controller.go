package category

import (
	"net/http"

	"github.com/DhavalSuthar-24/ladder/pkg/responses"
	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	service *CategoryService
}

func NewCategoryController(service *CategoryService) *CategoryController {
	return &CategoryController{service: service}
}

// CreateCategory godoc
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Param category body CreateCategoryRequest true "Category"
// @Success 201 {object} responses.SuccessResponse
// @Failure 409 {object} responses.ErrorResponse
// @Router /categories [post]
func (cc *CategoryController) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationError(c, err)
		return
	}
	created, err := cc.service.Create(c.Request.Context(), req)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Category created", created)
}

// GetCategories godoc
// @Summary List categories with their players
// @Tags categories
// @Produce json
// @Success 200 {object} responses.SuccessResponse
// @Router /categories [get]
func (cc *CategoryController) GetCategories(c *gin.Context) {
	categories, err := cc.service.List(c.Request.Context())
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Categories retrieved", categories)
}

// GetCategoryByID godoc
// @Summary Get a category
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /categories/{id} [get]
func (cc *CategoryController) GetCategoryByID(c *gin.Context) {
	found, err := cc.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Category retrieved", found)
}

// AssignPlayer godoc
// @Summary Register a player in a category
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Param playerId path string true "Player ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /categories/{id}/players/{playerId} [post]
func (cc *CategoryController) AssignPlayer(c *gin.Context) {
	updated, err := cc.service.AssignPlayer(c.Request.Context(), c.Param("id"), c.Param("playerId"))
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Player assigned to category", updated)
}
