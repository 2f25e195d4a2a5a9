package repository

import (
	"context"
	"errors"

	"homeledger/models"

	"gorm.io/gorm"
)

// ErrUsernameTaken 用户名已被注册
var ErrUsernameTaken = errors.New("用户名已存在")

// UserStore 用户账号存储
type UserStore struct {
	db *gorm.DB
}

// NewUserStore 创建用户存储
func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// ByID 按 ID 查找，不存在时返回 gorm.ErrRecordNotFound
func (s *UserStore) ByID(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// ByUsername 按用户名查找
func (s *UserStore) ByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// ByLogin 登录名可以是用户名或邮箱
func (s *UserStore) ByLogin(ctx context.Context, login string) (*models.User, error) {
	var u models.User
	err := s.db.WithContext(ctx).
		Where("username = ? OR email = ?", login, login).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create 新建用户，用户名重复时返回 ErrUsernameTaken
func (s *UserStore) Create(ctx context.Context, u *models.User) error {
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Where("username = ?", u.Username).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return ErrUsernameTaken
	}
	return s.db.WithContext(ctx).Create(u).Error
}

// SetPassword 写入新的密码哈希
func (s *UserStore) SetPassword(ctx context.Context, id uint, hash string) error {
	res := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Update("password", hash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
