package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionType 账目类型
type TransactionType string

const (
	// TransactionTypeRevenue 收入
	TransactionTypeRevenue TransactionType = "revenue"
	// TransactionTypeExpense 支出
	TransactionTypeExpense TransactionType = "expense"
)

// Valid 是否为合法的账目类型
func (t TransactionType) Valid() bool {
	return t == TransactionTypeRevenue || t == TransactionTypeExpense
}

// PaymentStatus 支付状态（账目和分期共用）
type PaymentStatus string

const (
	StatusOpen PaymentStatus = "open"
	StatusPaid PaymentStatus = "paid"
)

// Valid 是否为合法的支付状态
func (s PaymentStatus) Valid() bool {
	return s == StatusOpen || s == StatusPaid
}

// Transaction 账目记录（收入或支出），可拆分为多期
// installments_paid 始终等于状态为 paid 的分期数量，由对账逻辑维护
type Transaction struct {
	ID                uint            `json:"id" gorm:"primaryKey"`
	Description       string          `json:"description" gorm:"size:255"`
	Value             decimal.Decimal `json:"value" gorm:"type:decimal(10,2);not null"`
	Type              TransactionType `json:"type" gorm:"size:20;not null;index"`
	TotalInstallments int             `json:"total_installments" gorm:"not null;default:1"`
	InstallmentsPaid  int             `json:"installments_paid" gorm:"not null;default:0"`
	Status            PaymentStatus   `json:"status" gorm:"size:20;not null;default:open;index"`
	IsPublic          bool            `json:"is_public" gorm:"default:false"`
	MemberID          uint            `json:"member_id" gorm:"index;not null"`
	CategoryID        *uint           `json:"category_id" gorm:"index"`
	Date              time.Time       `json:"date" gorm:"type:date;not null;index"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
	DeletedAt         gorm.DeletedAt  `json:"-" gorm:"index"`
	Member            *Member         `json:"member,omitempty" gorm:"foreignKey:MemberID"`
	Category          *Category       `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Installments      []Installment   `json:"installments,omitempty" gorm:"foreignKey:TransactionID;constraint:OnDelete:CASCADE"`
}

// TableName 设置表名
func (Transaction) TableName() string {
	return "transactions"
}
