package repository

import (
	"context"
	"errors"
	"strings"

	"homeledger/models"

	"gorm.io/gorm"
)

// ErrDuplicateName 类别名称已存在
var ErrDuplicateName = errors.New("category name already exists")

// CategoryDirectory 全局类别目录
type CategoryDirectory struct {
	db *gorm.DB
}

// NewCategoryDirectory 创建类别目录
func NewCategoryDirectory(db *gorm.DB) *CategoryDirectory {
	return &CategoryDirectory{db: db}
}

// List 全部类别，按排序值、ID 升序
func (d *CategoryDirectory) List(ctx context.Context) ([]models.Category, error) {
	var list []models.Category
	err := d.db.WithContext(ctx).Order("sort ASC, id ASC").Find(&list).Error
	return list, err
}

// Exists 类别是否存在
func (d *CategoryDirectory) Exists(ctx context.Context, id uint) (bool, error) {
	var n int64
	err := d.db.WithContext(ctx).Model(&models.Category{}).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}

// Create 新建类别，名称唯一
func (d *CategoryDirectory) Create(ctx context.Context, name, color string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	var n int64
	if err := d.db.WithContext(ctx).Model(&models.Category{}).Where("name = ?", name).Count(&n).Error; err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, ErrDuplicateName
	}

	var maxSort int
	if err := d.db.WithContext(ctx).Model(&models.Category{}).Select("COALESCE(MAX(sort), 0)").Scan(&maxSort).Error; err != nil {
		return nil, err
	}

	cat := models.Category{Name: name, Sort: maxSort + 10, Color: color}
	if cat.Color == "" {
		cat.Color = "#64748b"
	}
	if err := d.db.WithContext(ctx).Create(&cat).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}
