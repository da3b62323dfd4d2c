package service

import (
	"strings"

	"github.com/blogicum-next/internal/logger"
	"github.com/blogicum-next/internal/models"
	"github.com/blogicum-next/internal/queue"
	"github.com/blogicum-next/internal/repository"
)

// CommentService 评论业务服务
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	queueClient *queue.Client
}

// NewCommentService 创建评论服务
func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository, queueClient *queue.Client) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		queueClient: queueClient,
	}
}

// ListByPost 某文章下的评论列表，按创建时间升序
func (s *CommentService) ListByPost(postID uint) ([]models.Comment, error) {
	return s.commentRepo.ListByPost(postID)
}

// Add 发表评论
// 仅按 ID 解析目标文章，不复查可见性：知道文章 ID 即可评论。
func (s *CommentService) Add(postID, authorID uint, text string) (*models.Comment, error) {
	post, err := s.postRepo.GetByID(postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}

	comment := models.Comment{
		Text:        strings.TrimSpace(text),
		IsPublished: true,
		AuthorID:    authorID,
		PostID:      post.ID,
	}
	if err := s.commentRepo.Create(&comment); err != nil {
		return nil, err
	}

	// 作者给自己评论不推通知
	if authorID != post.AuthorID {
		if err := s.queueClient.EnqueueCommentNotification(queue.CommentNotificationPayload{CommentID: comment.ID}); err != nil {
			logger.Warnw("comment_notification_enqueue_failed", "comment_id", comment.ID, "error", err)
		}
	}
	return &comment, nil
}

// Update 更新评论
// 评论按 (文章, 评论, 作者) 定位，非本人与不存在均为 ErrNotFound。
func (s *CommentService) Update(postID, commentID, viewerID uint, text string) (*models.Comment, error) {
	comment, err := s.commentRepo.GetOwned(postID, commentID, viewerID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, ErrNotFound
	}

	comment.Text = strings.TrimSpace(text)
	comment.Author = nil
	comment.Post = nil
	if err := s.commentRepo.Update(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Delete 删除评论
func (s *CommentService) Delete(postID, commentID, viewerID uint) error {
	comment, err := s.commentRepo.GetOwned(postID, commentID, viewerID)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrNotFound
	}
	return s.commentRepo.Delete(comment.ID)
}
