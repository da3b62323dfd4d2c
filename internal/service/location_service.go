package service

import (
	"strings"

	"github.com/blogicum-next/internal/models"
	"github.com/blogicum-next/internal/repository"
)

// LocationService 地点业务服务
type LocationService struct {
	repo repository.LocationRepository
}

// NewLocationService 创建地点服务
func NewLocationService(repo repository.LocationRepository) *LocationService {
	return &LocationService{repo: repo}
}

// ListPublished 已发布地点列表
func (s *LocationService) ListPublished() ([]models.Location, error) {
	return s.repo.ListPublished()
}

// Create 创建地点
func (s *LocationService) Create(name string) (*models.Location, error) {
	location := models.Location{
		Name:        strings.TrimSpace(name),
		IsPublished: true,
	}
	if err := s.repo.Create(&location); err != nil {
		return nil, err
	}
	return &location, nil
}

// Delete 删除地点，关联文章的地点引用置空
func (s *LocationService) Delete(id uint) error {
	location, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if location == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}
