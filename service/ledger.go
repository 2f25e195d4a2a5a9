package service

import (
	"context"
	"strings"
	"time"

	"homeledger/logger"
	"homeledger/models"
	"homeledger/repository"

	"github.com/shopspring/decimal"
)

// CategoryChecker 类别目录，用于校验类别 ID
type CategoryChecker interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

// LedgerService 账目的创建、修改、删除和查询
type LedgerService struct {
	store      *repository.LedgerStore
	categories CategoryChecker
	scheduler  *Scheduler
	locks      *keyedMutex
	log        *logger.Logger
	now        func() time.Time
}

// NewLedgerService 创建账目服务，与 reconciler 共用按账目的锁
func NewLedgerService(store *repository.LedgerStore, categories CategoryChecker, scheduler *Scheduler, reconciler *Reconciler, log *logger.Logger) *LedgerService {
	return &LedgerService{
		store:      store,
		categories: categories,
		scheduler:  scheduler,
		locks:      reconciler.locks,
		log:        log,
		now:        time.Now,
	}
}

// CreateTransactionInput 创建账目参数
type CreateTransactionInput struct {
	Description       string
	Value             decimal.Decimal
	TotalInstallments int
	Type              models.TransactionType
	Status            models.PaymentStatus
	IsPublic          bool
	MemberID          uint
	CategoryID        *uint
	Date              time.Time
}

// Create 创建账目并生成分期，账目和分期在同一事务中写入
func (s *LedgerService) Create(ctx context.Context, homeID uint, in CreateTransactionInput) (*models.Transaction, error) {
	in.Description = strings.TrimSpace(in.Description)
	if len([]rune(in.Description)) > 255 {
		return nil, invalid("description", "描述不能超过 255 个字符")
	}
	if in.Status == "" {
		in.Status = models.StatusOpen
	}
	in.Value = in.Value.Round(moneyPlaces)
	if err := s.checkCategory(ctx, in.CategoryID); err != nil {
		return nil, err
	}

	installments, err := s.scheduler.Schedule(ScheduleInput{
		Value:             in.Value,
		TotalInstallments: in.TotalInstallments,
		FirstDate:         in.Date,
		Status:            in.Status,
		Type:              in.Type,
		CategoryID:        in.CategoryID,
	})
	if err != nil {
		return nil, err
	}

	txn := &models.Transaction{
		Description:       in.Description,
		Value:             in.Value,
		Type:              in.Type,
		TotalInstallments: len(installments),
		Status:            in.Status,
		IsPublic:          in.IsPublic,
		MemberID:          in.MemberID,
		CategoryID:        in.CategoryID,
		Date:              models.DateOf(in.Date),
	}
	if in.Status == models.StatusPaid {
		txn.InstallmentsPaid = len(installments)
	}

	err = s.store.InTx(ctx, homeID, func(l *repository.ScopedLedger) error {
		return lookupError(l.CreateTransaction(txn, installments), "member", in.MemberID)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("账目已创建",
		"home_id", homeID,
		"transaction_id", txn.ID,
		"type", txn.Type,
		"value", txn.Value.StringFixed(moneyPlaces),
		"installments", txn.TotalInstallments,
	)
	return txn, nil
}

// UpdateTransactionInput 修改账目参数，nil 字段不修改
type UpdateTransactionInput struct {
	Description *string
	Value       *decimal.Decimal
	Status      *models.PaymentStatus
	IsPublic    *bool
	CategoryID  *uint
	Date        *time.Time
	// PayDate 状态改为 paid 时，批量标记未付分期所用的支付日期，默认今天
	PayDate *time.Time
}

// Update 修改账目字段；分期不变，除非状态改为 paid，此时所有未付分期一并标记为已付
func (s *LedgerService) Update(ctx context.Context, homeID, id uint, in UpdateTransactionInput) (*models.Transaction, error) {
	updates := make(map[string]interface{})
	if in.Description != nil {
		desc := strings.TrimSpace(*in.Description)
		if len([]rune(desc)) > 255 {
			return nil, invalid("description", "描述不能超过 255 个字符")
		}
		updates["description"] = desc
	}
	if in.Value != nil {
		value := in.Value.Round(moneyPlaces)
		if !value.IsPositive() {
			return nil, invalid("value", "金额必须大于 0")
		}
		updates["value"] = value
	}
	if in.Status != nil {
		if !in.Status.Valid() {
			return nil, invalid("status", "状态必须为 open 或 paid")
		}
		updates["status"] = *in.Status
	}
	if in.IsPublic != nil {
		updates["is_public"] = *in.IsPublic
	}
	if in.CategoryID != nil {
		if err := s.checkCategory(ctx, in.CategoryID); err != nil {
			return nil, err
		}
		updates["category_id"] = *in.CategoryID
	}
	if in.Date != nil {
		updates["date"] = models.DateOf(*in.Date)
	}

	today := models.DateOf(s.now())
	payDate := today
	if in.PayDate != nil {
		payDate = models.DateOf(*in.PayDate)
		if payDate.After(today) {
			return nil, invalid("pay_date", "支付日期不能晚于今天")
		}
	}
	markPaid := in.Status != nil && *in.Status == models.StatusPaid

	unlock := s.locks.Lock(id)
	defer unlock()

	var txn *models.Transaction
	err := s.store.InTx(ctx, homeID, func(l *repository.ScopedLedger) error {
		current, err := l.LockTransaction(id)
		if err != nil {
			return lookupError(err, "transaction", id)
		}

		if markPaid {
			if _, err := l.MarkOpenInstallmentsPaid(id, payDate); err != nil {
				return err
			}
			paid, err := l.CountInstallments(id, models.StatusPaid)
			if err != nil {
				return err
			}
			updates["installments_paid"] = int(paid)
		}

		if len(updates) > 0 {
			if err := l.UpdateTransaction(current.ID, updates); err != nil {
				return err
			}
		}

		txn, err = l.Transaction(id)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("账目已更新", "home_id", homeID, "transaction_id", id, "fields", len(updates))
	return txn, nil
}

// Delete 软删除账目及其分期
func (s *LedgerService) Delete(ctx context.Context, homeID, id uint) error {
	unlock := s.locks.Lock(id)
	defer unlock()

	err := s.store.InTx(ctx, homeID, func(l *repository.ScopedLedger) error {
		if _, err := l.Transaction(id); err != nil {
			return lookupError(err, "transaction", id)
		}
		return l.DeleteTransaction(id)
	})
	if err != nil {
		return err
	}
	s.log.Info("账目已删除", "home_id", homeID, "transaction_id", id)
	return nil
}

// Get 账目详情（含分期）
func (s *LedgerService) Get(ctx context.Context, homeID, id uint) (*models.Transaction, error) {
	txn, err := s.store.Scoped(ctx, homeID).TransactionDetail(id)
	if err != nil {
		return nil, lookupError(err, "transaction", id)
	}
	return txn, nil
}

// ListFilter 账目列表条件；Month 为 0 时按整年，Year 为 0 时不限时间
type ListFilter struct {
	Year   int
	Month  int
	Type   models.TransactionType
	Status models.PaymentStatus
}

// List 家庭内的账目列表
func (s *LedgerService) List(ctx context.Context, homeID uint, f ListFilter) ([]models.Transaction, error) {
	if f.Type != "" && !f.Type.Valid() {
		return nil, invalid("type", "类型必须为 revenue 或 expense")
	}
	if f.Status != "" && !f.Status.Valid() {
		return nil, invalid("status", "状态必须为 open 或 paid")
	}

	filter := repository.TransactionFilter{Type: f.Type, Status: f.Status}
	if f.Year != 0 {
		if f.Month != 0 {
			if err := validatePeriod(f.Year, f.Month); err != nil {
				return nil, err
			}
			filter.Start, filter.End = models.MonthRange(f.Year, time.Month(f.Month))
		} else {
			if err := validatePeriod(f.Year, 1); err != nil {
				return nil, err
			}
			filter.Start = time.Date(f.Year, 1, 1, 0, 0, 0, 0, time.UTC)
			filter.End = filter.Start.AddDate(1, 0, 0)
		}
	}
	return s.store.Scoped(ctx, homeID).ListTransactions(filter)
}

func (s *LedgerService) checkCategory(ctx context.Context, id *uint) error {
	if id == nil || s.categories == nil {
		return nil
	}
	ok, err := s.categories.Exists(ctx, *id)
	if err != nil {
		return err
	}
	if !ok {
		return invalid("category_id", "类别 %d 不存在", *id)
	}
	return nil
}

// validatePeriod 校验年月
func validatePeriod(year, month int) error {
	if year < 1900 || year > 9999 {
		return invalid("year", "年份不合法")
	}
	if month < 1 || month > 12 {
		return invalid("month", "月份必须在 1-12 之间")
	}
	return nil
}
