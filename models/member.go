package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	MemberRoleAdmin  = "admin"
	MemberRoleMember = "member"
)

// Member 家庭成员：用户在某个家庭中的身份，账目通过成员归属到家庭
type Member struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	UserID    uint           `json:"user_id" gorm:"index;not null"`
	HomeID    uint           `json:"home_id" gorm:"index;not null"`
	Role      string         `json:"role" gorm:"size:20;default:member"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
	User      *User          `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Home      *Home          `json:"-" gorm:"foreignKey:HomeID"`
}

// TableName 设置表名
func (Member) TableName() string {
	return "members"
}
