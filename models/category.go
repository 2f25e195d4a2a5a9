package models

import (
	"time"

	"gorm.io/gorm"
)

// NoCategoryLabel 未分类账目在统计中的归并名称
const NoCategoryLabel = "No category"

// Category 账目类别（全局，不区分家庭）
type Category struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"size:50;not null;uniqueIndex"`
	Sort      int            `json:"sort" gorm:"default:0;index"`
	Color     string         `json:"color" gorm:"size:20;default:#64748b"` // 颜色代码，如 #ef4444
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Category) TableName() string {
	return "categories"
}

// 默认类别
const (
	CategoryFood      = "餐饮"
	CategoryTransport = "交通"
	CategoryHousing   = "住房"
	CategoryUtilities = "水电燃气"
	CategoryMedical   = "医疗"
	CategoryEducation = "教育"
	CategorySalary    = "工资"
	CategoryOther     = "其他"
)

// GetCategories 获取默认类别名称
func GetCategories() []string {
	return []string{
		CategoryFood,
		CategoryTransport,
		CategoryHousing,
		CategoryUtilities,
		CategoryMedical,
		CategoryEducation,
		CategorySalary,
		CategoryOther,
	}
}
