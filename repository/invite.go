package repository

import (
	"context"
	"errors"
	"fmt"

	"homeledger/models"

	"gorm.io/gorm"
)

var (
	// ErrAlreadyMember 用户已经是家庭成员
	ErrAlreadyMember = errors.New("用户已是家庭成员")
	// ErrAlreadyInvited 用户已有待处理的邀请
	ErrAlreadyInvited = errors.New("用户已被邀请")
)

// Invite 邀请用户加入家庭，已是成员或已有邀请时拒绝
func (s *MembershipStore) Invite(ctx context.Context, homeID, userID, invitedBy uint, role string) (*models.Invite, error) {
	ok, err := s.IsMember(ctx, userID, homeID)
	if err != nil {
		return nil, err
	}
	if ok {
		return nil, ErrAlreadyMember
	}

	var n int64
	err = s.db.WithContext(ctx).Model(&models.Invite{}).
		Where("home_id = ? AND user_id = ?", homeID, userID).
		Count(&n).Error
	if err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, ErrAlreadyInvited
	}

	inv := models.Invite{HomeID: homeID, UserID: userID, InvitedBy: invitedBy, Role: role}
	if err := s.db.WithContext(ctx).Create(&inv).Error; err != nil {
		return nil, err
	}
	return &inv, nil
}

// InvitesOf 用户收到的待处理邀请（含家庭信息）
func (s *MembershipStore) InvitesOf(ctx context.Context, userID uint) ([]models.Invite, error) {
	var invites []models.Invite
	err := s.db.WithContext(ctx).
		Preload("Home").
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&invites).Error
	return invites, err
}

// AcceptInvite 接受邀请：加入家庭并删除邀请
// 邀请不属于该用户时返回 gorm.ErrRecordNotFound
func (s *MembershipStore) AcceptInvite(ctx context.Context, userID, inviteID uint) (*models.Member, error) {
	var member models.Member
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var inv models.Invite
		if err := tx.Where("id = ? AND user_id = ?", inviteID, userID).First(&inv).Error; err != nil {
			return err
		}

		err := tx.Where("user_id = ? AND home_id = ?", userID, inv.HomeID).First(&member).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			member = models.Member{UserID: userID, HomeID: inv.HomeID, Role: inv.Role}
			if member.Role == "" {
				member.Role = models.MemberRoleMember
			}
			if err := tx.Create(&member).Error; err != nil {
				return fmt.Errorf("创建成员失败: %w", err)
			}
		case err != nil:
			return err
		}

		return tx.Delete(&inv).Error
	})
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// DeclineInvite 拒绝邀请
func (s *MembershipStore) DeclineInvite(ctx context.Context, userID, inviteID uint) error {
	res := s.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.Invite{}, inviteID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
