package service

import (
	"context"
	"time"

	"homeledger/logger"
	"homeledger/models"
	"homeledger/repository"
)

// ReconcileInput 分期状态变更请求
type ReconcileInput struct {
	InstallmentID uint
	Status        models.PaymentStatus
	PayDate       *time.Time // 可选，不能晚于今天
}

// Reconciler 分期对账：更新一期的状态，并重新计算所属账目的汇总状态
type Reconciler struct {
	store *repository.LedgerStore
	locks *keyedMutex
	log   *logger.Logger
	now   func() time.Time
}

// NewReconciler 创建对账器
func NewReconciler(store *repository.LedgerStore, log *logger.Logger) *Reconciler {
	return &Reconciler{
		store: store,
		locks: newKeyedMutex(),
		log:   log,
		now:   time.Now,
	}
}

// Reconcile 更新分期状态并重算账目
//
// 账目状态规则：全部分期已付时为 paid；否则若原状态为 paid 则退回 open，其余情况保持原状态。
// 不会从非 paid 的手工状态自动提升，也不会重置已经是 open 的账目。
// 同一账目的对账串行执行（进程内锁 + 行锁），不同账目之间可并行。
func (r *Reconciler) Reconcile(ctx context.Context, homeID uint, in ReconcileInput) (*models.Installment, *models.Transaction, error) {
	if !in.Status.Valid() {
		return nil, nil, invalid("status", "状态必须为 open 或 paid")
	}
	today := models.DateOf(r.now())
	if in.PayDate != nil && models.DateOf(*in.PayDate).After(today) {
		return nil, nil, invalid("pay_date", "支付日期不能晚于今天")
	}

	// 先定位所属账目，才能按账目加锁
	target, err := r.store.Scoped(ctx, homeID).Installment(in.InstallmentID)
	if err != nil {
		r.logLookupFailure(err, homeID, in.InstallmentID)
		return nil, nil, lookupError(err, "installment", in.InstallmentID)
	}

	unlock := r.locks.Lock(target.TransactionID)
	defer unlock()

	var (
		inst *models.Installment
		txn  *models.Transaction
	)
	err = r.store.InTx(ctx, homeID, func(l *repository.ScopedLedger) error {
		locked, err := l.LockTransaction(target.TransactionID)
		if err != nil {
			return lookupError(err, "transaction", target.TransactionID)
		}

		// 锁内重新读取，拿到最新状态
		inst, err = l.Installment(in.InstallmentID)
		if err != nil {
			return lookupError(err, "installment", in.InstallmentID)
		}

		inst.Status = in.Status
		inst.PayDate = nil
		if in.Status == models.StatusPaid {
			payDate := today
			if in.PayDate != nil {
				payDate = models.DateOf(*in.PayDate)
			}
			inst.PayDate = &payDate
		}
		if err := l.SaveInstallmentStatus(inst); err != nil {
			return err
		}

		paidCount, err := l.CountInstallments(locked.ID, models.StatusPaid)
		if err != nil {
			return err
		}
		notPaid, err := l.CountInstallmentsNot(locked.ID, models.StatusPaid)
		if err != nil {
			return err
		}

		locked.InstallmentsPaid = int(paidCount)
		locked.Status = nextTransactionStatus(locked.Status, notPaid == 0)
		if err := l.UpdateTransaction(locked.ID, map[string]interface{}{
			"installments_paid": locked.InstallmentsPaid,
			"status":            locked.Status,
		}); err != nil {
			return err
		}
		txn = locked
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	r.log.Info("分期对账完成",
		"home_id", homeID,
		"installment_id", inst.ID,
		"transaction_id", txn.ID,
		"status", inst.Status,
		"installments_paid", txn.InstallmentsPaid,
		"transaction_status", txn.Status,
	)
	return inst, txn, nil
}

// nextTransactionStatus 对账后的账目状态
func nextTransactionStatus(previous models.PaymentStatus, allPaid bool) models.PaymentStatus {
	if allPaid {
		return models.StatusPaid
	}
	if previous == models.StatusPaid {
		return models.StatusOpen
	}
	return previous
}

func (r *Reconciler) logLookupFailure(err error, homeID, installmentID uint) {
	if mismatch, ok := lookupError(err, "installment", installmentID).(*TenantMismatchError); ok {
		r.log.Warn("跨家庭访问分期", "home_id", homeID, "installment_id", mismatch.ID)
	}
}
