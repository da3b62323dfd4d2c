package public

import (
	"errors"

	"github.com/blogicum-next/internal/http/response"
	"github.com/blogicum-next/internal/service"

	"github.com/gin-gonic/gin"
)

// CommentRequest 评论请求
type CommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// AddComment 发表评论
func (h *Handler) AddComment(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	postID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	comment, err := h.CommentService.Add(postID, userID, req.Text)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "post not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to add comment", err)
		return
	}

	response.Success(c, comment)
}

// UpdateComment 编辑自己的评论
// 他人评论与不存在的评论同样返回 404。
func (h *Handler) UpdateComment(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	postID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	commentID, ok := parseIDParam(c, "comment_id")
	if !ok {
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	comment, err := h.CommentService.Update(postID, commentID, userID, req.Text)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "comment not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to update comment", err)
		return
	}

	response.Success(c, comment)
}

// DeleteComment 删除自己的评论
func (h *Handler) DeleteComment(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	postID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	commentID, ok := parseIDParam(c, "comment_id")
	if !ok {
		return
	}

	if err := h.CommentService.Delete(postID, commentID, userID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "comment not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to delete comment", err)
		return
	}

	response.Success(c, gin.H{"deleted": true})
}
