package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"streamgearhub/cmd/api/dto"
	"streamgearhub/cmd/api/services"
)

// ListPostsHandler godoc
// @Summary      List blog posts
// @Description  One page of post summaries, newest first
// @Tags         posts
// @Param        page  query  int  false  "Page number (1-based)"
// @Produce      json
// @Success      200  {array}  dto.PostSummaryDTO
// @Router       /posts [get]
func ListPostsHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		if page < 1 {
			page = 1
		}
		c.JSON(http.StatusOK, svc.List(c.Request.Context(), page))
	}
}

// GetPostHandler godoc
// @Summary      Get post by slug
// @Description  Full post with recommendations and related posts
// @Tags         posts
// @Param        slug  path  string  true  "Post slug"
// @Produce      json
// @Success      200  {object}  dto.PostDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /posts/{slug} [get]
func GetPostHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		post, err := svc.GetBySlug(c.Request.Context(), c.Param("slug"))
		if err != nil {
			c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "not found"})
			return
		}
		c.JSON(http.StatusOK, post)
	}
}

// ListPostsByTagHandler godoc
// @Summary      List posts by tag
// @Description  Posts carrying the given tag slug; unknown tags yield an empty list
// @Tags         posts
// @Param        tag  path  string  true  "Tag slug"
// @Produce      json
// @Success      200  {array}  dto.PostSummaryDTO
// @Router       /posts/tag/{tag} [get]
func ListPostsByTagHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.ListByTag(c.Request.Context(), c.Param("tag")))
	}
}
