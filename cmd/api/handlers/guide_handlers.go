package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"streamgearhub/cmd/api/dto"
	"streamgearhub/cmd/api/services"
)

// ListGuidesHandler godoc
// @Summary      List guides
// @Tags         guides
// @Param        page  query  int  false  "Page number (1-based)"
// @Produce      json
// @Success      200  {array}  dto.GuideDTO
// @Router       /guides [get]
func ListGuidesHandler(svc *services.GuideService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		if page < 1 {
			page = 1
		}
		c.JSON(http.StatusOK, svc.List(c.Request.Context(), page))
	}
}

// GetGuideHandler godoc
// @Summary      Get guide by slug
// @Tags         guides
// @Param        slug  path  string  true  "Guide slug"
// @Produce      json
// @Success      200  {object}  dto.GuideDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /guides/{slug} [get]
func GetGuideHandler(svc *services.GuideService) gin.HandlerFunc {
	return func(c *gin.Context) {
		guide, err := svc.GetBySlug(c.Request.Context(), c.Param("slug"))
		if err != nil {
			c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "not found"})
			return
		}
		c.JSON(http.StatusOK, guide)
	}
}
