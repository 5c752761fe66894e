package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"streamgearhub/cmd/api/dto"
	"streamgearhub/cmd/api/services"
)

// ListStreamersHandler godoc
// @Summary      List streamer setups
// @Tags         streamers
// @Param        page  query  int  false  "Page number (1-based)"
// @Produce      json
// @Success      200  {array}  dto.StreamerDTO
// @Router       /streamers [get]
func ListStreamersHandler(svc *services.StreamerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		if page < 1 {
			page = 1
		}
		c.JSON(http.StatusOK, svc.List(c.Request.Context(), page))
	}
}

// GetStreamerHandler godoc
// @Summary      Get streamer setup by slug
// @Tags         streamers
// @Param        slug  path  string  true  "Streamer slug"
// @Produce      json
// @Success      200  {object}  dto.StreamerDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /streamers/{slug} [get]
func GetStreamerHandler(svc *services.StreamerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		streamer, err := svc.GetBySlug(c.Request.Context(), c.Param("slug"))
		if err != nil {
			c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "not found"})
			return
		}
		c.JSON(http.StatusOK, streamer)
	}
}
