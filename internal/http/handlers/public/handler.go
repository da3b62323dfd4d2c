package public

import "github.com/blogicum-next/internal/provider"

// Handler 公开接口处理器入口
// 说明：匿名访客与登录用户共用该处理器，可见性裁决在 service 层完成。
type Handler struct {
	*provider.Container
}

// New 创建处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
