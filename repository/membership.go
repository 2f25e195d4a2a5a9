package repository

import (
	"context"
	"errors"
	"fmt"

	"homeledger/models"

	"gorm.io/gorm"
)

// MembershipChecker 判断用户是否为家庭成员，租户范围校验依赖此接口
type MembershipChecker interface {
	MemberOf(ctx context.Context, userID, homeID uint) (*models.Member, error)
}

// MembershipStore 家庭与成员存储
type MembershipStore struct {
	db *gorm.DB
}

// NewMembershipStore 创建成员存储
func NewMembershipStore(db *gorm.DB) *MembershipStore {
	return &MembershipStore{db: db}
}

// MemberOf 返回用户在家庭中的成员记录，不是成员时返回 gorm.ErrRecordNotFound
func (s *MembershipStore) MemberOf(ctx context.Context, userID, homeID uint) (*models.Member, error) {
	var m models.Member
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND home_id = ?", userID, homeID).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// IsMember 用户是否属于家庭
func (s *MembershipStore) IsMember(ctx context.Context, userID, homeID uint) (bool, error) {
	_, err := s.MemberOf(ctx, userID, homeID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return err == nil, err
}

// HomesOf 用户所属的全部家庭
func (s *MembershipStore) HomesOf(ctx context.Context, userID uint) ([]models.Home, error) {
	var homes []models.Home
	err := s.db.WithContext(ctx).
		Where("id IN (?)", s.db.Model(&models.Member{}).Select("home_id").Where("user_id = ?", userID)).
		Order("id ASC").
		Find(&homes).Error
	return homes, err
}

// MembersOf 家庭内的全部成员（含用户信息）
func (s *MembershipStore) MembersOf(ctx context.Context, homeID uint) ([]models.Member, error) {
	var members []models.Member
	err := s.db.WithContext(ctx).
		Preload("User").
		Where("home_id = ?", homeID).
		Order("id ASC").
		Find(&members).Error
	return members, err
}

// CreateHome 创建家庭，并将创建者加入为管理员
func (s *MembershipStore) CreateHome(ctx context.Context, userID uint, name, description string) (*models.Home, error) {
	home := models.Home{Name: name, Description: description}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&home).Error; err != nil {
			return fmt.Errorf("创建家庭失败: %w", err)
		}
		member := models.Member{UserID: userID, HomeID: home.ID, Role: models.MemberRoleAdmin}
		if err := tx.Create(&member).Error; err != nil {
			return fmt.Errorf("创建成员失败: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &home, nil
}

// AddMember 将用户加入家庭；已是成员时返回现有记录
func (s *MembershipStore) AddMember(ctx context.Context, userID, homeID uint, role string) (*models.Member, error) {
	if m, err := s.MemberOf(ctx, userID, homeID); err == nil {
		return m, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	m := models.Member{UserID: userID, HomeID: homeID, Role: role}
	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// RemoveMember 软删除成员，其账目随之不再计入家庭统计
func (s *MembershipStore) RemoveMember(ctx context.Context, homeID, memberID uint) error {
	res := s.db.WithContext(ctx).Where("home_id = ?", homeID).Delete(&models.Member{}, memberID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
