package repository

import "time"

// PostListFilter 查询文章列表的过滤条件
// VisibleAt 非空时应用公开可见性过滤（已发布、发布时间已到、分类未隐藏）。
type PostListFilter struct {
	Page             int
	PageSize         int
	AuthorID         uint
	CategoryID       uint
	VisibleAt        *time.Time
	WithCommentCount bool
	OrderBy          string
}
