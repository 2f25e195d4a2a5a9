package models

import (
	"time"

	"gorm.io/gorm"
)

// Home 家庭：数据隔离边界，成员和账目都归属于某个家庭
type Home struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"size:255;not null"`
	Description string         `json:"description" gorm:"size:1000"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Home) TableName() string {
	return "homes"
}
