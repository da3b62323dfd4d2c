package models

import "time"

// Post 文章表
// 删除分类/地点时外键置空，删除作者时级联删除文章。
type Post struct {
	ID          uint      `gorm:"primarykey" json:"id"`                   // 主键
	Title       string    `gorm:"size:100;not null" json:"title"`         // 标题
	Text        string    `gorm:"type:text;not null" json:"text"`         // 正文
	Image       string    `gorm:"size:500" json:"image"`                  // 配图路径（可空）
	PubDate     time.Time `gorm:"index;not null" json:"pub_date"`         // 发布时间（可设为未来实现定时发布）
	IsPublished bool      `gorm:"default:true;index" json:"is_published"` // 是否发布
	AuthorID    uint      `gorm:"not null;index" json:"author_id"`        // 作者
	Author      *User     `gorm:"constraint:OnDelete:CASCADE" json:"author,omitempty"`
	LocationID  *uint     `gorm:"index" json:"location_id"` // 地点（可空）
	Location    *Location `gorm:"constraint:OnDelete:SET NULL" json:"location,omitempty"`
	CategoryID  *uint     `gorm:"index" json:"category_id"` // 分类（可空）
	Category    *Category `gorm:"constraint:OnDelete:SET NULL" json:"category,omitempty"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"` // 创建时间

	// CommentCount 评论数，列表查询时由子查询注入，不建表
	CommentCount int64 `gorm:"->;-:migration" json:"comment_count"`
}

// TableName 指定表名
func (Post) TableName() string {
	return "posts"
}
