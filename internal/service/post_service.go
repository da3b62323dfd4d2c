package service

import (
	"strings"
	"time"

	"github.com/blogicum-next/internal/constants"
	"github.com/blogicum-next/internal/models"
	"github.com/blogicum-next/internal/repository"
)

// PostService 文章业务服务
type PostService struct {
	postRepo     repository.PostRepository
	categoryRepo repository.CategoryRepository
	locationRepo repository.LocationRepository
	userRepo     repository.UserRepository
}

// NewPostService 创建文章服务
func NewPostService(postRepo repository.PostRepository, categoryRepo repository.CategoryRepository, locationRepo repository.LocationRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
		locationRepo: locationRepo,
		userRepo:     userRepo,
	}
}

// PostInput 创建/更新文章输入
type PostInput struct {
	Title       string
	Text        string
	Image       string
	PubDate     *time.Time
	IsPublished *bool
	CategoryID  *uint
	LocationID  *uint
}

// ListPublic 公开文章列表，按发布时间倒序，固定每页 10 条
func (s *PostService) ListPublic(now time.Time, page int) ([]models.Post, int64, error) {
	filter := repository.PostListFilter{
		Page:             page,
		PageSize:         constants.PublicPostPageSize,
		VisibleAt:        &now,
		WithCommentCount: true,
	}
	return s.postRepo.List(filter)
}

// ListCategory 某分类下的公开文章列表
// 分类不存在或未发布均返回 ErrNotFound。
func (s *PostService) ListCategory(slug string, now time.Time, page int) (*models.Category, []models.Post, int64, error) {
	category, err := s.categoryRepo.GetBySlug(strings.TrimSpace(slug), true)
	if err != nil {
		return nil, nil, 0, err
	}
	if category == nil {
		return nil, nil, 0, ErrNotFound
	}

	filter := repository.PostListFilter{
		Page:             page,
		PageSize:         constants.PublicPostPageSize,
		CategoryID:       category.ID,
		VisibleAt:        &now,
		WithCommentCount: true,
	}
	posts, total, err := s.postRepo.List(filter)
	if err != nil {
		return nil, nil, 0, err
	}
	return category, posts, total, nil
}

// ListProfile 个人主页文章列表
// 本人可见全部文章（含未发布与未来发布），其他访问者仅可见该作者的公开文章。
func (s *PostService) ListProfile(username string, viewerID uint, now time.Time, page int) (*models.User, []models.Post, int64, error) {
	user, err := s.userRepo.GetByUsername(strings.TrimSpace(username))
	if err != nil {
		return nil, nil, 0, err
	}
	if user == nil {
		return nil, nil, 0, ErrNotFound
	}

	filter := repository.PostListFilter{
		Page:             page,
		PageSize:         constants.PublicPostPageSize,
		AuthorID:         user.ID,
		WithCommentCount: true,
	}
	if viewerID != user.ID {
		filter.VisibleAt = &now
	}
	posts, total, err := s.postRepo.List(filter)
	if err != nil {
		return nil, nil, 0, err
	}
	return user, posts, total, nil
}

// GetDetail 文章详情
// 不存在或对访问者不可见均返回 ErrNotFound。
func (s *PostService) GetDetail(id uint, viewerID uint, now time.Time) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil || !CanViewPost(viewerID, post, now) {
		return nil, ErrNotFound
	}
	return post, nil
}

// Create 创建文章
// 发布时间强制取创建时刻，忽略客户端提交的值；定时发布仅能通过编辑设置。
func (s *PostService) Create(authorID uint, input PostInput, now time.Time) (*models.Post, error) {
	if err := s.checkRefs(input); err != nil {
		return nil, err
	}

	post := models.Post{
		Title:       strings.TrimSpace(input.Title),
		Text:        input.Text,
		Image:       strings.TrimSpace(input.Image),
		PubDate:     now,
		IsPublished: true,
		AuthorID:    authorID,
		CategoryID:  input.CategoryID,
		LocationID:  input.LocationID,
	}
	if input.IsPublished != nil {
		post.IsPublished = *input.IsPublished
	}

	if err := s.postRepo.Create(&post); err != nil {
		return nil, err
	}
	return &post, nil
}

// Update 更新文章
// 非作者返回 ErrNotOwner，由 handler 降级为文章详情视图。
func (s *PostService) Update(id uint, viewerID uint, input PostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	if !CanMutate(viewerID, post.AuthorID) {
		return nil, ErrNotOwner
	}
	if err := s.checkRefs(input); err != nil {
		return nil, err
	}

	post.Title = strings.TrimSpace(input.Title)
	post.Text = input.Text
	post.Image = strings.TrimSpace(input.Image)
	post.CategoryID = input.CategoryID
	post.LocationID = input.LocationID
	if input.PubDate != nil {
		post.PubDate = *input.PubDate
	}
	if input.IsPublished != nil {
		post.IsPublished = *input.IsPublished
	}

	// Save 会连带写关联对象，清掉预加载引用避免误更新
	post.Author = nil
	post.Category = nil
	post.Location = nil

	if err := s.postRepo.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete 删除文章
func (s *PostService) Delete(id uint, viewerID uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	if !CanMutate(viewerID, post.AuthorID) {
		return nil, ErrNotOwner
	}
	if err := s.postRepo.Delete(id); err != nil {
		return nil, err
	}
	return post, nil
}

// checkRefs 校验分类/地点外键指向存在的记录
func (s *PostService) checkRefs(input PostInput) error {
	if input.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(*input.CategoryID)
		if err != nil {
			return err
		}
		if category == nil {
			return ErrNotFound
		}
	}
	if input.LocationID != nil {
		location, err := s.locationRepo.GetByID(*input.LocationID)
		if err != nil {
			return err
		}
		if location == nil {
			return ErrNotFound
		}
	}
	return nil
}
