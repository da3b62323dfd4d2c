package repository

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/blogicum-next/internal/models"
)

func setupPostRepositoryTest(t *testing.T) (*GormPostRepository, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Category{}, &models.Location{}, &models.Post{}, &models.Comment{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return NewPostRepository(db), db
}

func createRepoUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := models.User{Username: username, Email: username + "@example.com", PasswordHash: "x", Status: "active"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	return &user
}

func createRepoPost(t *testing.T, db *gorm.DB, authorID uint, published bool, pubDate time.Time, categoryID *uint) *models.Post {
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

func TestPostListVisibleAtFilter(t *testing.T) {
	repo, db := setupPostRepositoryTest(t)
	author := createRepoUser(t, db, "author")

	hidden := models.Category{Title: "hidden", Slug: "hidden", IsPublished: false}
	if err := db.Create(&hidden).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	visible := createRepoPost(t, db, author.ID, true, now.Add(-time.Hour), nil)
	createRepoPost(t, db, author.ID, false, now.Add(-time.Hour), nil)
	createRepoPost(t, db, author.ID, true, now.Add(time.Hour), nil)
	createRepoPost(t, db, author.ID, true, now.Add(-time.Hour), &hidden.ID)

	posts, total, err := repo.List(PostListFilter{Page: 1, PageSize: 10, VisibleAt: &now})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 || len(posts) != 1 {
		t.Fatalf("want single visible post, total=%d len=%d", total, len(posts))
	}
	if posts[0].ID != visible.ID {
		t.Fatalf("post id want %d got %d", visible.ID, posts[0].ID)
	}
}

func TestPostListCommentCount(t *testing.T) {
	repo, db := setupPostRepositoryTest(t)
	author := createRepoUser(t, db, "author")

	now := time.Now()
	withComments := createRepoPost(t, db, author.ID, true, now.Add(-time.Hour), nil)
	without := createRepoPost(t, db, author.ID, true, now.Add(-2*time.Hour), nil)

	for i := 0; i < 3; i++ {
		comment := models.Comment{Text: "c", IsPublished: true, AuthorID: author.ID, PostID: withComments.ID}
		if err := db.Create(&comment).Error; err != nil {
			t.Fatalf("create comment failed: %v", err)
		}
	}

	posts, _, err := repo.List(PostListFilter{Page: 1, PageSize: 10, WithCommentCount: true})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	counts := map[uint]int64{}
	for _, p := range posts {
		counts[p.ID] = p.CommentCount
	}
	if counts[withComments.ID] != 3 {
		t.Fatalf("comment count want 3 got %d", counts[withComments.ID])
	}
	if counts[without.ID] != 0 {
		t.Fatalf("comment count want 0 got %d", counts[without.ID])
	}
}

func TestPostListPagination(t *testing.T) {
	repo, db := setupPostRepositoryTest(t)
	author := createRepoUser(t, db, "author")

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		createRepoPost(t, db, author.ID, true, base.Add(-time.Duration(i)*time.Hour), nil)
	}

	posts, total, err := repo.List(PostListFilter{Page: 2, PageSize: 10})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 12 {
		t.Fatalf("total want 12 got %d", total)
	}
	if len(posts) != 2 {
		t.Fatalf("second page len want 2 got %d", len(posts))
	}
}

func TestPostDeleteRemovesComments(t *testing.T) {
	repo, db := setupPostRepositoryTest(t)
	author := createRepoUser(t, db, "author")
	post := createRepoPost(t, db, author.ID, true, time.Now().Add(-time.Hour), nil)

	comment := models.Comment{Text: "c", IsPublished: true, AuthorID: author.ID, PostID: post.ID}
	if err := db.Create(&comment).Error; err != nil {
		t.Fatalf("create comment failed: %v", err)
	}

	if err := repo.Delete(post.ID); err != nil {
		t.Fatalf("delete post failed: %v", err)
	}

	var comments int64
	db.Model(&models.Comment{}).Where("post_id = ?", post.ID).Count(&comments)
	if comments != 0 {
		t.Fatalf("comments should be removed with post, got %d", comments)
	}
}

func TestCategoryDeleteNullifiesPosts(t *testing.T) {
	_, db := setupPostRepositoryTest(t)
	categoryRepo := NewCategoryRepository(db)
	author := createRepoUser(t, db, "author")

	category := models.Category{Title: "travel", Slug: "travel", IsPublished: true}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	post := createRepoPost(t, db, author.ID, true, time.Now().Add(-time.Hour), &category.ID)

	if err := categoryRepo.Delete(category.ID); err != nil {
		t.Fatalf("delete category failed: %v", err)
	}

	var stored models.Post
	if err := db.First(&stored, post.ID).Error; err != nil {
		t.Fatalf("reload post failed: %v", err)
	}
	if stored.CategoryID != nil {
		t.Fatalf("category_id should be nullified, got %v", *stored.CategoryID)
	}
}
