package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"streamgearhub/cmd/api/dto"
	"streamgearhub/cmd/api/services"
	"streamgearhub/cmd/internal/logger"
)

// ListGearHandler godoc
// @Summary      Curated gear feed
// @Description  Recommended products with defaults applied and affiliate links stamped
// @Tags         gear
// @Produce      json
// @Success      200  {array}  dto.ProductDTO
// @Router       /gear [get]
func ListGearHandler(svc *services.GearService) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.Products(c.Request.Context())
		if err != nil {
			logger.WarnWithFields("gear feed fetch failed, serving empty collection", logger.Fields{"error": err.Error()})
			products = []dto.ProductDTO{}
		}
		c.JSON(http.StatusOK, products)
	}
}

// HomeHandler godoc
// @Summary      Homepage composition
// @Description  Recent posts, featured products and the hero image in one payload
// @Tags         home
// @Produce      json
// @Success      200  {object}  dto.HomeDTO
// @Router       /home [get]
func HomeHandler(svc *services.HomeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.Home(c.Request.Context()))
	}
}
