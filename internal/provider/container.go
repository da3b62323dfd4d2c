package provider

import (
	"github.com/blogicum-next/internal/cache"
	"github.com/blogicum-next/internal/config"
	"github.com/blogicum-next/internal/logger"
	"github.com/blogicum-next/internal/models"
	"github.com/blogicum-next/internal/queue"
	"github.com/blogicum-next/internal/repository"
	"github.com/blogicum-next/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	UserRepo     repository.UserRepository
	CategoryRepo repository.CategoryRepository
	LocationRepo repository.LocationRepository
	PostRepo     repository.PostRepository
	CommentRepo  repository.CommentRepository

	// Services
	UserAuthService *service.UserAuthService
	EmailService    *service.EmailService
	CaptchaService  *service.CaptchaService
	PostService     *service.PostService
	CategoryService *service.CategoryService
	LocationService *service.LocationService
	CommentService  *service.CommentService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.UserRepo = repository.NewUserRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.LocationRepo = repository.NewLocationRepository(db)
	c.PostRepo = repository.NewPostRepository(db)
	c.CommentRepo = repository.NewCommentRepository(db)
}

func (c *Container) initServices() {
	c.EmailService = service.NewEmailService(&c.Config.Email)
	c.CaptchaService = service.NewCaptchaService(c.Config.Captcha)
	c.UserAuthService = service.NewUserAuthService(c.Config, c.UserRepo)
	c.PostService = service.NewPostService(c.PostRepo, c.CategoryRepo, c.LocationRepo, c.UserRepo)
	c.CategoryService = service.NewCategoryService(c.CategoryRepo)
	c.LocationService = service.NewLocationService(c.LocationRepo)
	c.CommentService = service.NewCommentService(c.CommentRepo, c.PostRepo, c.QueueClient)
}
