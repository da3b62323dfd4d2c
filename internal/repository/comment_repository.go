package repository

import (
	"errors"

	"github.com/blogicum-next/internal/models"

	"gorm.io/gorm"
)

// CommentRepository 评论数据访问接口
type CommentRepository interface {
	ListByPost(postID uint) ([]models.Comment, error)
	GetByID(id uint) (*models.Comment, error)
	GetOwned(postID, commentID, authorID uint) (*models.Comment, error)
	Create(comment *models.Comment) error
	Update(comment *models.Comment) error
	Delete(id uint) error
	CountByPost(postID uint) (int64, error)
}

// GormCommentRepository GORM 实现
type GormCommentRepository struct {
	db *gorm.DB
}

// NewCommentRepository 创建评论仓库
func NewCommentRepository(db *gorm.DB) *GormCommentRepository {
	return &GormCommentRepository{db: db}
}

// ListByPost 某文章下的评论，按创建时间升序，带作者信息
func (r *GormCommentRepository) ListByPost(postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.db.Where("post_id = ?", postID).
		Order("created_at ASC").
		Preload("Author").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// GetByID 根据 ID 获取评论
func (r *GormCommentRepository) GetByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.Preload("Author").First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

// GetOwned 按 (文章, 评论, 作者) 三元组定位评论
// 非本人的评论与不存在的评论同样返回 nil，调用方无法区分。
func (r *GormCommentRepository) GetOwned(postID, commentID, authorID uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.Where("post_id = ? AND author_id = ?", postID, authorID).
		First(&comment, commentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

// Create 创建评论
func (r *GormCommentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// Update 更新评论
func (r *GormCommentRepository) Update(comment *models.Comment) error {
	return r.db.Save(comment).Error
}

// Delete 删除评论
func (r *GormCommentRepository) Delete(id uint) error {
	return r.db.Delete(&models.Comment{}, id).Error
}

// CountByPost 统计某文章下的评论数
func (r *GormCommentRepository) CountByPost(postID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Comment{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
