package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"streamgearhub/cmd/api/dto"
	"streamgearhub/cmd/api/services"
)

// ListReviewsHandler godoc
// @Summary      List gear reviews
// @Tags         reviews
// @Param        page  query  int  false  "Page number (1-based)"
// @Produce      json
// @Success      200  {array}  dto.ReviewDTO
// @Router       /reviews [get]
func ListReviewsHandler(svc *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		if page < 1 {
			page = 1
		}
		c.JSON(http.StatusOK, svc.List(c.Request.Context(), page))
	}
}

// GetReviewHandler godoc
// @Summary      Get review by slug
// @Tags         reviews
// @Param        slug  path  string  true  "Review slug"
// @Produce      json
// @Success      200  {object}  dto.ReviewDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /reviews/{slug} [get]
func GetReviewHandler(svc *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		review, err := svc.GetBySlug(c.Request.Context(), c.Param("slug"))
		if err != nil {
			c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "not found"})
			return
		}
		c.JSON(http.StatusOK, review)
	}
}
