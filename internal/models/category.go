package models

import "time"

// Category 分类表
type Category struct {
	ID          uint      `gorm:"primarykey" json:"id"`                   // 主键
	Title       string    `gorm:"size:100" json:"title"`                  // 标题
	Description string    `gorm:"type:text" json:"description"`           // 描述
	Slug        string    `gorm:"uniqueIndex;not null" json:"slug"`       // 唯一标识
	IsPublished bool      `gorm:"default:true;index" json:"is_published"` // 是否发布
	CreatedAt   time.Time `gorm:"index" json:"created_at"`                // 创建时间
}

// TableName 指定表名
func (Category) TableName() string {
	return "categories"
}
