package public

import (
	"errors"
	"time"

	"github.com/blogicum-next/internal/constants"
	"github.com/blogicum-next/internal/http/response"
	"github.com/blogicum-next/internal/service"

	"github.com/gin-gonic/gin"
)

// GetCategories 已发布分类列表
func (h *Handler) GetCategories(c *gin.Context) {
	categories, err := h.CategoryService.ListPublished()
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load categories", err)
		return
	}
	response.Success(c, categories)
}

// GetCategoryPosts 分类下的公开文章列表
// 未发布分类与不存在的分类同样返回 404。
func (h *Handler) GetCategoryPosts(c *gin.Context) {
	slug := c.Param("slug")
	page := parsePageQuery(c)

	category, posts, total, err := h.PostService.ListCategory(slug, time.Now(), page)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "category not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to load category posts", err)
		return
	}

	response.SuccessWithPage(c, gin.H{
		"category": category,
		"posts":    posts,
	}, response.NewPagination(page, constants.PublicPostPageSize, total))
}
