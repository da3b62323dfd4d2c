package public

import (
	"errors"
	"strconv"
	"time"

	"github.com/blogicum-next/internal/constants"
	handlershared "github.com/blogicum-next/internal/http/handlers/shared"
	"github.com/blogicum-next/internal/http/response"
	"github.com/blogicum-next/internal/service"

	"github.com/gin-gonic/gin"
)

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "invalid id", nil)
		return 0, false
	}
	return uint(id), true
}

func parsePageQuery(c *gin.Context) int {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	return handlershared.NormalizePage(page)
}

// GetPosts 首页文章列表
func (h *Handler) GetPosts(c *gin.Context) {
	page := parsePageQuery(c)
	posts, total, err := h.PostService.ListPublic(time.Now(), page)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load posts", err)
		return
	}
	response.SuccessWithPage(c, posts, response.NewPagination(page, constants.PublicPostPageSize, total))
}

// GetPost 文章详情，含全部评论
func (h *Handler) GetPost(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	post, err := h.PostService.GetDetail(id, getViewerID(c), time.Now())
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "post not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to load post", err)
		return
	}

	comments, err := h.CommentService.ListByPost(post.ID)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load comments", err)
		return
	}

	response.Success(c, gin.H{
		"post":     post,
		"comments": comments,
	})
}

// PostRequest 文章创建/编辑请求
type PostRequest struct {
	Title       string     `json:"title" binding:"required"`
	Text        string     `json:"text" binding:"required"`
	Image       string     `json:"image"`
	PubDate     *time.Time `json:"pub_date"`
	IsPublished *bool      `json:"is_published"`
	CategoryID  *uint      `json:"category_id"`
	LocationID  *uint      `json:"location_id"`
}

func (r PostRequest) toInput() service.PostInput {
	return service.PostInput{
		Title:       r.Title,
		Text:        r.Text,
		Image:       r.Image,
		PubDate:     r.PubDate,
		IsPublished: r.IsPublished,
		CategoryID:  r.CategoryID,
		LocationID:  r.LocationID,
	}
}

// CreatePost 创建文章
func (h *Handler) CreatePost(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	post, err := h.PostService.Create(userID, req.toInput(), time.Now())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeBadRequest, "category or location not found", nil)
		default:
			respondError(c, response.CodeInternal, "failed to create post", err)
		}
		return
	}

	response.Success(c, gin.H{
		"post":     post,
		"redirect": "/profile/" + profileRedirectName(h, userID),
	})
}

// UpdatePost 编辑文章
// 非作者的编辑请求不报错，降级为返回文章详情。
func (h *Handler) UpdatePost(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	post, err := h.PostService.Update(id, userID, req.toInput())
	if err != nil {
		h.respondPostMutationError(c, id, userID, err)
		return
	}

	response.Success(c, gin.H{"post": post})
}

// DeletePost 删除文章
// 非作者的删除请求同样降级为返回文章详情。
func (h *Handler) DeletePost(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	post, err := h.PostService.Delete(id, userID)
	if err != nil {
		h.respondPostMutationError(c, id, userID, err)
		return
	}

	response.Success(c, gin.H{
		"deleted": true,
		"post":    post,
	})
}

func (h *Handler) respondPostMutationError(c *gin.Context, id, userID uint, err error) {
	switch {
	case errors.Is(err, service.ErrNotOwner):
		post, detailErr := h.PostService.GetDetail(id, userID, time.Now())
		if detailErr != nil {
			if errors.Is(detailErr, service.ErrNotFound) {
				respondError(c, response.CodeNotFound, "post not found", nil)
				return
			}
			respondError(c, response.CodeInternal, "failed to load post", detailErr)
			return
		}
		response.Success(c, gin.H{
			"post":       post,
			"redirected": true,
		})
	case errors.Is(err, service.ErrNotFound):
		respondError(c, response.CodeNotFound, "post not found", nil)
	default:
		respondError(c, response.CodeInternal, "failed to update post", err)
	}
}

func profileRedirectName(h *Handler, userID uint) string {
	user, err := h.UserAuthService.GetUserByID(userID)
	if err != nil || user == nil {
		return ""
	}
	return user.Username
}
