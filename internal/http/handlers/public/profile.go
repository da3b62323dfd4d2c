package public

import (
	"errors"
	"time"

	"github.com/blogicum-next/internal/constants"
	"github.com/blogicum-next/internal/http/response"
	"github.com/blogicum-next/internal/service"

	"github.com/gin-gonic/gin"
)

// GetProfile 用户主页：用户信息与其文章列表
// 本人可见全部文章，其他访客仅见公开可见的文章。
func (h *Handler) GetProfile(c *gin.Context) {
	username := c.Param("username")
	page := parsePageQuery(c)

	user, posts, total, err := h.PostService.ListProfile(username, getViewerID(c), time.Now(), page)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "user not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to load profile", err)
		return
	}

	response.SuccessWithPage(c, gin.H{
		"profile": gin.H{
			"id":         user.ID,
			"username":   user.Username,
			"first_name": user.FirstName,
			"last_name":  user.LastName,
		},
		"posts": posts,
	}, response.NewPagination(page, constants.PublicPostPageSize, total))
}
