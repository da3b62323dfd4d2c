package service

import (
	"time"

	"github.com/blogicum-next/internal/models"
)

// 可见性策略：纯函数，不访问存储。
// viewerID 为 0 表示匿名访问者。

// IsPubliclyVisible 判断文章对公众是否可见
// 规则：已发布 且 发布时间不晚于 now 且（无分类 或 分类已发布）。
// 调用方需预加载 post.Category，否则有分类的文章按不可见处理。
func IsPubliclyVisible(post *models.Post, now time.Time) bool {
	if post == nil {
		return false
	}
	if !post.IsPublished {
		return false
	}
	if post.PubDate.After(now) {
		return false
	}
	if post.CategoryID == nil {
		return true
	}
	return post.Category != nil && post.Category.IsPublished
}

// CanViewPost 判断访问者能否查看文章
// 作者永远可见自己的文章，不受发布状态与发布时间限制。
func CanViewPost(viewerID uint, post *models.Post, now time.Time) bool {
	if post == nil {
		return false
	}
	if viewerID != 0 && viewerID == post.AuthorID {
		return true
	}
	return IsPubliclyVisible(post, now)
}

// CanMutate 判断访问者能否修改/删除某实体
func CanMutate(viewerID, authorID uint) bool {
	return viewerID != 0 && viewerID == authorID
}
