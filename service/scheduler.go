package service

import (
	"time"

	"homeledger/models"

	"github.com/shopspring/decimal"
)

// moneyPlaces 金额列精度 decimal(10,2)
const moneyPlaces = 2

// ScheduleInput 生成分期计划的输入
type ScheduleInput struct {
	Value             decimal.Decimal
	TotalInstallments int // 0 视为 1
	FirstDate         time.Time
	Status            models.PaymentStatus
	Type              models.TransactionType
	CategoryID        *uint
}

// Scheduler 分期计划生成器
type Scheduler struct {
	MaxInstallments int
}

// NewScheduler 创建分期计划生成器，maxInstallments <= 0 表示不限
func NewScheduler(maxInstallments int) *Scheduler {
	return &Scheduler{MaxInstallments: maxInstallments}
}

// Schedule 生成账目的分期计划（未持久化）
//
// 每期金额 = value / n，按金额列精度取整，不做尾差分摊，
// 因此 value 不能被 n 整除时各期之和与 value 相差几分。
// 第 i 期到期日 = firstDate 加 i 个月（按 time.AddDate 规则，1 月 31 日加一个月为 3 月初）。
// 初始状态为 paid 时，每一期都以 firstDate 作为支付日期标记为已付。
func (s *Scheduler) Schedule(in ScheduleInput) ([]models.Installment, error) {
	n := in.TotalInstallments
	if n == 0 {
		n = 1
	}
	// 按金额列精度取整后再校验，0.004 这类金额取整为 0，视为非法
	in.Value = in.Value.Round(moneyPlaces)
	if err := s.validate(in, n); err != nil {
		return nil, err
	}

	first := models.DateOf(in.FirstDate)
	per := in.Value.DivRound(decimal.NewFromInt(int64(n)), moneyPlaces)

	installments := make([]models.Installment, n)
	for i := 0; i < n; i++ {
		inst := models.Installment{
			Value:      per,
			Number:     i + 1,
			Type:       in.Type,
			Status:     models.StatusOpen,
			DueDate:    first.AddDate(0, i, 0),
			CategoryID: in.CategoryID,
		}
		if in.Status == models.StatusPaid {
			payDate := first
			inst.Status = models.StatusPaid
			inst.PayDate = &payDate
		}
		installments[i] = inst
	}
	return installments, nil
}

func (s *Scheduler) validate(in ScheduleInput, n int) error {
	if !in.Value.IsPositive() {
		return invalid("value", "金额必须大于 0")
	}
	if n < 1 {
		return invalid("total_installments", "分期数必须大于等于 1")
	}
	if s.MaxInstallments > 0 && n > s.MaxInstallments {
		return invalid("total_installments", "分期数不能超过 %d", s.MaxInstallments)
	}
	if !in.Type.Valid() {
		return invalid("type", "类型必须为 revenue 或 expense")
	}
	if !in.Status.Valid() {
		return invalid("status", "状态必须为 open 或 paid")
	}
	if in.FirstDate.IsZero() {
		return invalid("date", "日期不能为空")
	}
	return nil
}
