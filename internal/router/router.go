package router

import (
	"fmt"
	"strings"

	"github.com/blogicum-next/internal/cache"
	"github.com/blogicum-next/internal/config"
	publichandlers "github.com/blogicum-next/internal/http/handlers/public"
	"github.com/blogicum-next/internal/logger"
	"github.com/blogicum-next/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "blg"
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// 上传的文章配图
	r.Static("/uploads", "./uploads")

	apiV1 := r.Group("/api/v1")
	{
		// 公开接口，可选登录态：登录后可见范围随身份变化
		public := apiV1.Group("")
		public.Use(OptionalUserJWTAuthMiddleware(cfg.UserJWT.SecretKey, c.UserRepo))
		{
			public.GET("/posts", publicHandler.GetPosts)
			public.GET("/posts/:id", publicHandler.GetPost)
			public.GET("/categories", publicHandler.GetCategories)
			public.GET("/categories/:slug/posts", publicHandler.GetCategoryPosts)
			public.GET("/locations", publicHandler.GetLocations)
			public.GET("/profiles/:username", publicHandler.GetProfile)
			public.GET("/captcha/image", publicHandler.GetImageCaptcha)
		}

		// 用户认证接口
		auth := apiV1.Group("/auth")
		{
			auth.POST("/register", publicHandler.UserRegister)
			auth.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("username")), publicHandler.UserLogin)
		}

		// 用户接口（需鉴权）
		user := apiV1.Group("")
		user.Use(UserJWTAuthMiddleware(cfg.UserJWT.SecretKey, c.UserRepo))
		{
			user.GET("/me", publicHandler.GetCurrentUser)
			user.PUT("/me/profile", publicHandler.UpdateUserProfile)
			user.PUT("/me/password", publicHandler.ChangeUserPassword)
			user.POST("/user/posts", publicHandler.CreatePost)
			user.PUT("/user/posts/:id", publicHandler.UpdatePost)
			user.DELETE("/user/posts/:id", publicHandler.DeletePost)
			user.POST("/user/posts/:id/comments", publicHandler.AddComment)
			user.PUT("/user/posts/:id/comments/:comment_id", publicHandler.UpdateComment)
			user.DELETE("/user/posts/:id/comments/:comment_id", publicHandler.DeleteComment)
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
