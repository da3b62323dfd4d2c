package service

import (
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/blogicum-next/internal/models"
	"github.com/blogicum-next/internal/repository"
)

func setupPostServiceTest(t *testing.T) (*PostService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Category{}, &models.Location{}, &models.Post{}, &models.Comment{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	svc := NewPostService(
		repository.NewPostRepository(db),
		repository.NewCategoryRepository(db),
		repository.NewLocationRepository(db),
		repository.NewUserRepository(db),
	)
	return svc, db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
		Status:       "active",
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	return &user
}

func createTestCategory(t *testing.T, db *gorm.DB, slug string, published bool) *models.Category {
	t.Helper()
	category := models.Category{
		Title:       slug,
		Slug:        slug,
		IsPublished: published,
	}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	return &category
}

func createTestPost(t *testing.T, db *gorm.DB, authorID uint, published bool, pubDate time.Time, categoryID *uint) *models.Post {
	t.Helper()
	post := models.Post{
		Title:       "title",
		Text:        "text",
		PubDate:     pubDate,
		IsPublished: published,
		AuthorID:    authorID,
		CategoryID:  categoryID,
	}
	if err := db.Create(&post).Error; err != nil {
		t.Fatalf("create post failed: %v", err)
	}
	return &post
}

func TestPostServiceCreateForcesPubDate(t *testing.T) {
	svc, db := setupPostServiceTest(t)
	author := createTestUser(t, db, "author")

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	future := now.Add(72 * time.Hour)

	post, err := svc.Create(author.ID, PostInput{
		Title:   "scheduled",
		Text:    "body",
		PubDate: &future,
	}, now)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !post.PubDate.Equal(now) {
		t.Fatalf("pub date want %v got %v", now, post.PubDate)
	}
}

func TestPostServiceCreateUnknownCategory(t *testing.T) {
	svc, db := setupPostServiceTest(t)
	author := createTestUser(t, db, "author")

	missing := uint(999)
	_, err := svc.Create(author.ID, PostInput{Title: "t", Text: "x", CategoryID: &missing}, time.Now())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown category want ErrNotFound got %v", err)
	}
}

func TestPostServiceGetDetailVisibility(t *testing.T) {
	svc, db := setupPostServiceTest(t)
	author := createTestUser(t, db, "author")
	stranger := createTestUser(t, db, "stranger")

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	post := createTestPost(t, db, author.ID, true, now.Add(24*time.Hour), nil)

	if _, err := svc.GetDetail(post.ID, 0, now); !errors.Is(err, ErrNotFound) {
		t.Fatalf("anonymous on scheduled post want ErrNotFound got %v", err)
	}
	if _, err := svc.GetDetail(post.ID, stranger.ID, now); !errors.Is(err, ErrNotFound) {
		t.Fatalf("stranger on scheduled post want ErrNotFound got %v", err)
	}

	got, err := svc.GetDetail(post.ID, author.ID, now)
	if err != nil {
		t.Fatalf("author on own scheduled post failed: %v", err)
	}
	if got.ID != post.ID {
		t.Fatalf("post id want %d got %d", post.ID, got.ID)
	}

	if _, err := svc.GetDetail(post.ID, 0, now.Add(48*time.Hour)); err != nil {
		t.Fatalf("anonymous after pub date failed: %v", err)
	}
}

func TestPostServiceGetDetailHiddenCategory(t *testing.T) {
	svc, db := setupPostServiceTest(t)
	author := createTestUser(t, db, "author")

	now := time.Now()
	hidden := createTestCategory(t, db, "hidden", false)
	post := createTestPost(t, db, author.ID, true, now.Add(-time.Hour), &hidden.ID)

	if _, err := svc.GetDetail(post.ID, 0, now); !errors.Is(err, ErrNotFound) {
		t.Fatalf("post in hidden category want ErrNotFound got %v", err)
	}
	if _, err := svc.GetDetail(post.ID, author.ID, now); err != nil {
		t.Fatalf("author on post in hidden category failed: %v", err)
	}
}

func TestPostServiceListPublicFilters(t *testing.T) {
	svc, db := setupPostServiceTest(t)
	author := createTestUser(t, db, "author")

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	hidden := createTestCategory(t, db, "hidden", false)
	open := createTestCategory(t, db, "open", true)

	visible := createTestPost(t, db, author.ID, true, now.Add(-time.Hour), &open.ID)
	noCategory := createTestPost(t, db, author.ID, true, now.Add(-2*time.Hour), nil)
	createTestPost(t, db, author.ID, false, now.Add(-time.Hour), nil)
	createTestPost(t, db, author.ID, true, now.Add(time.Hour), nil)
	createTestPost(t, db, author.ID, true, now.Add(-time.Hour), &hidden.ID)

	posts, total, err := svc.ListPublic(now, 1)
	if err != nil {
		t.Fatalf("list public failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("total want 2 got %d", total)
	}
	if len(posts) != 2 {
		t.Fatalf("len want 2 got %d", len(posts))
	}
	// pub_date 倒序
	if posts[0].ID != visible.ID || posts[1].ID != noCategory.ID {
		t.Fatalf("order want %d,%d got %d,%d", visible.ID, noCategory.ID, posts[0].ID, posts[1].ID)
	}
}

func TestPostServiceListProfile(t *testing.T) {
	svc, db := setupPostServiceTest(t)
	author := createTestUser(t, db, "author")
	stranger := createTestUser(t, db, "stranger")

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	createTestPost(t, db, author.ID, true, now.Add(-time.Hour), nil)
	createTestPost(t, db, author.ID, false, now.Add(-time.Hour), nil)
	createTestPost(t, db, author.ID, true, now.Add(time.Hour), nil)

	_, posts, total, err := svc.ListProfile("author", author.ID, now, 1)
	if err != nil {
		t.Fatalf("owner list failed: %v", err)
	}
	if total != 3 || len(posts) != 3 {
		t.Fatalf("owner should see all posts, total=%d len=%d", total, len(posts))
	}

	_, posts, total, err = svc.ListProfile("author", stranger.ID, now, 1)
	if err != nil {
		t.Fatalf("stranger list failed: %v", err)
	}
	if total != 1 || len(posts) != 1 {
		t.Fatalf("stranger should see published posts only, total=%d len=%d", total, len(posts))
	}

	if _, _, _, err := svc.ListProfile("nobody", 0, now, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown user want ErrNotFound got %v", err)
	}
}

func TestPostServiceListCategory(t *testing.T) {
	svc, db := setupPostServiceTest(t)
	author := createTestUser(t, db, "author")

	now := time.Now()
	open := createTestCategory(t, db, "open", true)
	hidden := createTestCategory(t, db, "hidden", false)
	createTestPost(t, db, author.ID, true, now.Add(-time.Hour), &open.ID)

	category, posts, total, err := svc.ListCategory("open", now, 1)
	if err != nil {
		t.Fatalf("list category failed: %v", err)
	}
	if category.Slug != "open" || total != 1 || len(posts) != 1 {
		t.Fatalf("category list mismatch, total=%d len=%d", total, len(posts))
	}

	if _, _, _, err := svc.ListCategory(hidden.Slug, now, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("hidden category want ErrNotFound got %v", err)
	}
	if _, _, _, err := svc.ListCategory("missing", now, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing category want ErrNotFound got %v", err)
	}
}

func TestPostServiceUpdateByNonOwner(t *testing.T) {
	svc, db := setupPostServiceTest(t)
	author := createTestUser(t, db, "author")
	stranger := createTestUser(t, db, "stranger")

	post := createTestPost(t, db, author.ID, true, time.Now().Add(-time.Hour), nil)

	_, err := svc.Update(post.ID, stranger.ID, PostInput{Title: "hijacked", Text: "x"})
	if !errors.Is(err, ErrNotOwner) {
		t.Fatalf("non-owner update want ErrNotOwner got %v", err)
	}

	var stored models.Post
	if err := db.First(&stored, post.ID).Error; err != nil {
		t.Fatalf("reload post failed: %v", err)
	}
	if stored.Title != "title" {
		t.Fatalf("non-owner update must not persist, got title %q", stored.Title)
	}
}

func TestPostServiceUpdateSchedules(t *testing.T) {
	svc, db := setupPostServiceTest(t)
	author := createTestUser(t, db, "author")

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	post := createTestPost(t, db, author.ID, true, now, nil)

	future := now.Add(96 * time.Hour)
	updated, err := svc.Update(post.ID, author.ID, PostInput{Title: "later", Text: "x", PubDate: &future})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if !updated.PubDate.Equal(future) {
		t.Fatalf("pub date want %v got %v", future, updated.PubDate)
	}
}

func TestPostServiceDelete(t *testing.T) {
	svc, db := setupPostServiceTest(t)
	author := createTestUser(t, db, "author")
	stranger := createTestUser(t, db, "stranger")

	post := createTestPost(t, db, author.ID, true, time.Now().Add(-time.Hour), nil)

	if _, err := svc.Delete(post.ID, stranger.ID); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("non-owner delete want ErrNotOwner got %v", err)
	}

	deleted, err := svc.Delete(post.ID, author.ID)
	if err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if deleted.ID != post.ID {
		t.Fatalf("deleted post id want %d got %d", post.ID, deleted.ID)
	}

	var count int64
	db.Model(&models.Post{}).Where("id = ?", post.ID).Count(&count)
	if count != 0 {
		t.Fatalf("post still present after delete")
	}

	if _, err := svc.Delete(post.ID, author.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete want ErrNotFound got %v", err)
	}
}
