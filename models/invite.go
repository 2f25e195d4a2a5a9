package models

import (
	"time"

	"gorm.io/gorm"
)

// Invite 家庭邀请：被邀请用户接受后才成为成员
type Invite struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	HomeID    uint           `json:"home_id" gorm:"index;not null"`
	UserID    uint           `json:"user_id" gorm:"index;not null"`
	InvitedBy uint           `json:"invited_by"`
	Role      string         `json:"role" gorm:"size:20;default:member"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
	Home      *Home          `json:"home,omitempty" gorm:"foreignKey:HomeID"`
	User      *User          `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// TableName 设置表名
func (Invite) TableName() string {
	return "invites"
}
