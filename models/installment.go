package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Installment 分期：账目的一个付款单元，创建时批量生成
// PayDate 仅在 Status 为 paid 时有值
type Installment struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	TransactionID uint            `json:"transaction_id" gorm:"index;not null"`
	Value         decimal.Decimal `json:"value" gorm:"type:decimal(10,2);not null"`
	Number        int             `json:"number" gorm:"not null"` // 从 1 开始
	Type          TransactionType `json:"type" gorm:"size:20;not null;default:expense"`
	Status        PaymentStatus   `json:"status" gorm:"size:20;not null;default:open;index"`
	DueDate       time.Time       `json:"due_date" gorm:"type:date;not null"`
	PayDate       *time.Time      `json:"pay_date" gorm:"type:date"`
	CategoryID    *uint           `json:"category_id" gorm:"index"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `json:"-" gorm:"index"`
}

func (Installment) TableName() string {
	return "installments"
}
