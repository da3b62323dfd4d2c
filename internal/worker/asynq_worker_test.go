package worker

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/blogicum-next/internal/config"
	"github.com/blogicum-next/internal/models"
	"github.com/blogicum-next/internal/provider"
	"github.com/blogicum-next/internal/queue"
	"github.com/blogicum-next/internal/repository"
	"github.com/blogicum-next/internal/service"
)

func setupConsumerTest(t *testing.T) (*Consumer, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Category{}, &models.Location{}, &models.Post{}, &models.Comment{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	container := &provider.Container{
		UserRepo:     repository.NewUserRepository(db),
		PostRepo:     repository.NewPostRepository(db),
		CommentRepo:  repository.NewCommentRepository(db),
		EmailService: service.NewEmailService(&config.EmailConfig{Enabled: false}),
	}
	return NewConsumer(container), db
}

func createWorkerUser(t *testing.T, db *gorm.DB, username, email string) *models.User {
	t.Helper()
	user := models.User{Username: username, Email: email, PasswordHash: "x", Status: "active"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	return &user
}

func TestHandleCommentNotificationInvalidPayload(t *testing.T) {
	consumer, _ := setupConsumerTest(t)

	task, err := queue.NewCommentNotificationTask(queue.CommentNotificationPayload{CommentID: 0})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}
	if err := consumer.handleCommentNotification(context.Background(), task); err != nil {
		t.Fatalf("zero comment id should be skipped, got %v", err)
	}
}

func TestHandleCommentNotificationMissingComment(t *testing.T) {
	consumer, _ := setupConsumerTest(t)

	task, err := queue.NewCommentNotificationTask(queue.CommentNotificationPayload{CommentID: 999})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}
	if err := consumer.handleCommentNotification(context.Background(), task); err != nil {
		t.Fatalf("missing comment should be skipped, got %v", err)
	}
}

func TestHandleCommentNotificationSelfComment(t *testing.T) {
	consumer, db := setupConsumerTest(t)
	author := createWorkerUser(t, db, "author", "author@example.com")

	post := models.Post{Title: "t", Text: "x", PubDate: time.Now(), IsPublished: true, AuthorID: author.ID}
	if err := db.Create(&post).Error; err != nil {
		t.Fatalf("create post failed: %v", err)
	}
	comment := models.Comment{Text: "self", IsPublished: true, AuthorID: author.ID, PostID: post.ID}
	if err := db.Create(&comment).Error; err != nil {
		t.Fatalf("create comment failed: %v", err)
	}

	task, err := queue.NewCommentNotificationTask(queue.CommentNotificationPayload{CommentID: comment.ID})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}
	if err := consumer.handleCommentNotification(context.Background(), task); err != nil {
		t.Fatalf("self comment should not notify, got %v", err)
	}
}

func TestHandleCommentNotificationEmailDisabled(t *testing.T) {
	consumer, db := setupConsumerTest(t)
	author := createWorkerUser(t, db, "author", "author@example.com")
	commenter := createWorkerUser(t, db, "commenter", "commenter@example.com")

	post := models.Post{Title: "t", Text: "x", PubDate: time.Now(), IsPublished: true, AuthorID: author.ID}
	if err := db.Create(&post).Error; err != nil {
		t.Fatalf("create post failed: %v", err)
	}
	comment := models.Comment{Text: "hi", IsPublished: true, AuthorID: commenter.ID, PostID: post.ID}
	if err := db.Create(&comment).Error; err != nil {
		t.Fatalf("create comment failed: %v", err)
	}

	task, err := queue.NewCommentNotificationTask(queue.CommentNotificationPayload{CommentID: comment.ID})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}
	// 邮件服务未启用时任务完成而不是重试
	if err := consumer.handleCommentNotification(context.Background(), task); err != nil {
		t.Fatalf("disabled email service should complete task, got %v", err)
	}
}
