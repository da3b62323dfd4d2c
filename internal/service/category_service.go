package service

import (
	"strings"

	"github.com/blogicum-next/internal/models"
	"github.com/blogicum-next/internal/repository"
)

// CategoryService 分类业务服务
type CategoryService struct {
	repo repository.CategoryRepository
}

// NewCategoryService 创建分类服务
func NewCategoryService(repo repository.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// CategoryInput 创建分类输入
type CategoryInput struct {
	Title       string
	Description string
	Slug        string
	IsPublished *bool
}

// ListPublished 已发布分类列表
func (s *CategoryService) ListPublished() ([]models.Category, error) {
	return s.repo.ListPublished()
}

// Create 创建分类
func (s *CategoryService) Create(input CategoryInput) (*models.Category, error) {
	slug := strings.TrimSpace(input.Slug)
	count, err := s.repo.CountBySlug(slug, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugExists
	}

	category := models.Category{
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Slug:        slug,
		IsPublished: true,
	}
	if input.IsPublished != nil {
		category.IsPublished = *input.IsPublished
	}
	if err := s.repo.Create(&category); err != nil {
		return nil, err
	}
	return &category, nil
}

// Delete 删除分类，关联文章的分类引用置空
func (s *CategoryService) Delete(id uint) error {
	category, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}
