package main

import (
	"time"

	"github.com/blogicum-next/internal/config"
	"github.com/blogicum-next/internal/constants"
	"github.com/blogicum-next/internal/logger"
	"github.com/blogicum-next/internal/models"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 添加分类
	categories := []models.Category{
		{Title: "旅行", Description: "旅途中的见闻与记录", Slug: "travel", IsPublished: true},
		{Title: "美食", Description: "吃过的、做过的", Slug: "food", IsPublished: true},
		{Title: "随笔", Description: "日常杂感", Slug: "notes", IsPublished: true},
	}
	for _, cat := range categories {
		var existing models.Category
		if err := models.DB.Where("slug = ?", cat.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&cat).Error; err != nil {
				stdLog.Printf("Failed to create category %s: %v", cat.Slug, err)
			} else {
				stdLog.Printf("Created category: %s", cat.Slug)
			}
		} else {
			stdLog.Printf("Category already exists: %s", cat.Slug)
		}
	}

	// 添加地点
	locations := []models.Location{
		{Name: "北京", IsPublished: true},
		{Name: "上海", IsPublished: true},
		{Name: "杭州", IsPublished: true},
	}
	for _, loc := range locations {
		var existing models.Location
		if err := models.DB.Where("name = ?", loc.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&loc).Error; err != nil {
				stdLog.Printf("Failed to create location %s: %v", loc.Name, err)
			} else {
				stdLog.Printf("Created location: %s", loc.Name)
			}
		} else {
			stdLog.Printf("Location already exists: %s", loc.Name)
		}
	}

	// 添加演示用户
	var author models.User
	if err := models.DB.Where("username = ?", "demo").First(&author).Error; err != nil {
		hash, hashErr := bcrypt.GenerateFromPassword([]byte("demo-password-1"), bcrypt.DefaultCost)
		if hashErr != nil {
			stdLog.Fatalf("Failed to hash password: %v", hashErr)
		}
		author = models.User{
			Username:     "demo",
			Email:        "demo@example.com",
			PasswordHash: string(hash),
			FirstName:    "Demo",
			Status:       constants.UserStatusActive,
		}
		if err := models.DB.Create(&author).Error; err != nil {
			stdLog.Fatalf("Failed to create demo user: %v", err)
		}
		stdLog.Printf("Created user: demo")
	} else {
		stdLog.Printf("User already exists: demo")
	}

	// 添加演示文章
	var travel models.Category
	if err := models.DB.Where("slug = ?", "travel").First(&travel).Error; err != nil {
		stdLog.Fatalf("Failed to load category: %v", err)
	}
	var hangzhou models.Location
	if err := models.DB.Where("name = ?", "杭州").First(&hangzhou).Error; err != nil {
		stdLog.Fatalf("Failed to load location: %v", err)
	}

	now := time.Now()
	posts := []models.Post{
		{
			Title:       "西湖一日",
			Text:        "从断桥走到苏堤，春天的柳树刚发芽。",
			PubDate:     now.Add(-48 * time.Hour),
			IsPublished: true,
			AuthorID:    author.ID,
			CategoryID:  &travel.ID,
			LocationID:  &hangzhou.ID,
		},
		{
			Title:       "还没写完的游记",
			Text:        "草稿，先存着。",
			PubDate:     now.Add(-24 * time.Hour),
			IsPublished: false,
			AuthorID:    author.ID,
			CategoryID:  &travel.ID,
		},
		{
			Title:       "下周的计划",
			Text:        "定时发布的示例文章。",
			PubDate:     now.Add(7 * 24 * time.Hour),
			IsPublished: true,
			AuthorID:    author.ID,
		},
	}
	for _, post := range posts {
		var existing models.Post
		if err := models.DB.Where("title = ? AND author_id = ?", post.Title, post.AuthorID).First(&existing).Error; err != nil {
			if err := models.DB.Create(&post).Error; err != nil {
				stdLog.Printf("Failed to create post %s: %v", post.Title, err)
			} else {
				stdLog.Printf("Created post: %s", post.Title)
			}
		} else {
			stdLog.Printf("Post already exists: %s", post.Title)
		}
	}

	stdLog.Printf("Seed completed")
}
