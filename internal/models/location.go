package models

import "time"

// Location 地点表
type Location struct {
	ID          uint      `gorm:"primarykey" json:"id"`                   // 主键
	Name        string    `gorm:"size:100;not null" json:"name"`          // 地点名称
	IsPublished bool      `gorm:"default:true;index" json:"is_published"` // 是否发布
	CreatedAt   time.Time `gorm:"index" json:"created_at"`                // 创建时间
}

// TableName 指定表名
func (Location) TableName() string {
	return "locations"
}
