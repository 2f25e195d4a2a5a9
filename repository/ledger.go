package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"homeledger/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrOutOfScope 记录存在，但不属于当前家庭
var ErrOutOfScope = errors.New("record belongs to another home")

// LedgerStore 账本存储，持有账目和分期
// 对外只提供按家庭限定的句柄，不存在不带家庭过滤的查询入口
type LedgerStore struct {
	db *gorm.DB
}

// NewLedgerStore 创建账本存储
func NewLedgerStore(db *gorm.DB) *LedgerStore {
	return &LedgerStore{db: db}
}

// Scoped 返回限定在 homeID 内的只读句柄
func (s *LedgerStore) Scoped(ctx context.Context, homeID uint) *ScopedLedger {
	return &ScopedLedger{db: s.db.WithContext(ctx), homeID: homeID}
}

// InTx 在一个数据库事务内执行 fn，fn 返回错误时所有写入回滚
func (s *LedgerStore) InTx(ctx context.Context, homeID uint, fn func(l *ScopedLedger) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&ScopedLedger{db: tx, homeID: homeID})
	})
}

// ScopedLedger 家庭范围内的账本句柄
type ScopedLedger struct {
	db     *gorm.DB
	homeID uint
}

// HomeID 当前句柄所属家庭
func (l *ScopedLedger) HomeID() uint {
	return l.homeID
}

// transactions 账目查询，经 members 关联到家庭
func (l *ScopedLedger) transactions() *gorm.DB {
	return l.db.Model(&models.Transaction{}).
		Joins("JOIN members ON members.id = transactions.member_id").
		Where("members.home_id = ? AND members.deleted_at IS NULL", l.homeID)
}

// installments 分期查询，经账目和成员关联到家庭；已删除账目下的分期不可见
func (l *ScopedLedger) installments() *gorm.DB {
	return l.db.Model(&models.Installment{}).
		Joins("JOIN transactions ON transactions.id = installments.transaction_id AND transactions.deleted_at IS NULL").
		Joins("JOIN members ON members.id = transactions.member_id").
		Where("members.home_id = ? AND members.deleted_at IS NULL", l.homeID)
}

// Member 查找家庭内的成员
func (l *ScopedLedger) Member(memberID uint) (*models.Member, error) {
	var m models.Member
	if err := l.db.Where("id = ? AND home_id = ?", memberID, l.homeID).First(&m).Error; err != nil {
		return nil, l.classify(err, &models.Member{}, memberID)
	}
	return &m, nil
}

// CreateTransaction 写入账目及其全部分期，需在 InTx 内调用以保证原子性
func (l *ScopedLedger) CreateTransaction(txn *models.Transaction, installments []models.Installment) error {
	if _, err := l.Member(txn.MemberID); err != nil {
		return err
	}
	if err := l.db.Omit(clause.Associations).Create(txn).Error; err != nil {
		return fmt.Errorf("写入账目失败: %w", err)
	}
	for i := range installments {
		installments[i].TransactionID = txn.ID
	}
	if len(installments) > 0 {
		if err := l.db.Create(&installments).Error; err != nil {
			return fmt.Errorf("写入分期失败: %w", err)
		}
	}
	txn.Installments = installments
	return nil
}

// Transaction 按 ID 查找家庭内的账目
func (l *ScopedLedger) Transaction(id uint) (*models.Transaction, error) {
	var txn models.Transaction
	err := l.transactions().
		Select("transactions.*").
		Where("transactions.id = ?", id).
		First(&txn).Error
	if err != nil {
		return nil, l.classify(err, &models.Transaction{}, id)
	}
	return &txn, nil
}

// LockTransaction 查找并锁定账目行（SELECT ... FOR UPDATE），需在 InTx 内调用
// sqlite 方言不支持行锁，忽略 FOR 子句
func (l *ScopedLedger) LockTransaction(id uint) (*models.Transaction, error) {
	if _, err := l.Transaction(id); err != nil {
		return nil, err
	}
	var txn models.Transaction
	if err := l.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&txn, id).Error; err != nil {
		return nil, fmt.Errorf("锁定账目失败: %w", err)
	}
	return &txn, nil
}

// TransactionDetail 查找账目，附带成员、类别和按期数排序的分期
func (l *ScopedLedger) TransactionDetail(id uint) (*models.Transaction, error) {
	txn, err := l.Transaction(id)
	if err != nil {
		return nil, err
	}
	if err := l.db.Preload("Member.User").Preload("Category").
		Preload("Installments", func(db *gorm.DB) *gorm.DB { return db.Order("number ASC") }).
		First(txn, txn.ID).Error; err != nil {
		return nil, err
	}
	return txn, nil
}

// TransactionFilter 账目列表筛选条件，零值表示不筛选
type TransactionFilter struct {
	Start  time.Time
	End    time.Time
	Type   models.TransactionType
	Status models.PaymentStatus
}

// ListTransactions 家庭内账目列表，按日期倒序
func (l *ScopedLedger) ListTransactions(f TransactionFilter) ([]models.Transaction, error) {
	q := l.transactions().Select("transactions.*")
	if !f.Start.IsZero() {
		q = q.Where("transactions.date >= ?", f.Start)
	}
	if !f.End.IsZero() {
		q = q.Where("transactions.date < ?", f.End)
	}
	if f.Type != "" {
		q = q.Where("transactions.type = ?", f.Type)
	}
	if f.Status != "" {
		q = q.Where("transactions.status = ?", f.Status)
	}

	var list []models.Transaction
	err := q.Preload("Member.User").Preload("Category").
		Order("transactions.date DESC, transactions.id DESC").
		Find(&list).Error
	return list, err
}

// memberIDs 家庭内有效成员 ID 子查询
func (l *ScopedLedger) memberIDs() *gorm.DB {
	return l.db.Model(&models.Member{}).Select("id").Where("home_id = ?", l.homeID)
}

// transactionIDs 家庭内未删除账目 ID 子查询
// 写操作按成员过滤而不回连目标表，MySQL 不允许 UPDATE/DELETE 的子查询引用目标表
func (l *ScopedLedger) transactionIDs() *gorm.DB {
	return l.db.Model(&models.Transaction{}).Select("id").Where("member_id IN (?)", l.memberIDs())
}

// UpdateTransaction 更新账目字段（map 形式，零值同样写入）
func (l *ScopedLedger) UpdateTransaction(id uint, updates map[string]interface{}) error {
	res := l.db.Model(&models.Transaction{}).
		Where("id = ? AND member_id IN (?)", id, l.memberIDs()).
		Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("更新账目失败: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		_, err := l.Transaction(id)
		return err
	}
	return nil
}

// DeleteTransaction 软删除账目及其所有分期
func (l *ScopedLedger) DeleteTransaction(id uint) error {
	err := l.db.Where("transaction_id = ? AND transaction_id IN (?)", id, l.transactionIDs()).
		Delete(&models.Installment{}).Error
	if err != nil {
		return fmt.Errorf("删除分期失败: %w", err)
	}
	res := l.db.Where("id = ? AND member_id IN (?)", id, l.memberIDs()).Delete(&models.Transaction{})
	if res.Error != nil {
		return fmt.Errorf("删除账目失败: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return l.classify(gorm.ErrRecordNotFound, &models.Transaction{}, id)
	}
	return nil
}

// Installment 按 ID 查找家庭内的分期
func (l *ScopedLedger) Installment(id uint) (*models.Installment, error) {
	var inst models.Installment
	err := l.installments().
		Select("installments.*").
		Where("installments.id = ?", id).
		First(&inst).Error
	if err != nil {
		return nil, l.classify(err, &models.Installment{}, id)
	}
	return &inst, nil
}

// Installments 账目下的全部分期，按期数排序
func (l *ScopedLedger) Installments(transactionID uint) ([]models.Installment, error) {
	var list []models.Installment
	err := l.installments().
		Select("installments.*").
		Where("installments.transaction_id = ?", transactionID).
		Order("installments.number ASC").
		Find(&list).Error
	return list, err
}

// SaveInstallmentStatus 写入分期的状态和支付日期
func (l *ScopedLedger) SaveInstallmentStatus(inst *models.Installment) error {
	res := l.db.Model(&models.Installment{}).
		Where("id = ? AND transaction_id IN (?)", inst.ID, l.transactionIDs()).
		Updates(map[string]interface{}{
			"status":   inst.Status,
			"pay_date": inst.PayDate,
		})
	if res.Error != nil {
		return fmt.Errorf("更新分期失败: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		_, err := l.Installment(inst.ID)
		return err
	}
	return nil
}

// CountInstallments 统计账目下某状态的分期数量；status 为空时统计全部
func (l *ScopedLedger) CountInstallments(transactionID uint, status models.PaymentStatus) (int64, error) {
	q := l.installments().Where("installments.transaction_id = ?", transactionID)
	if status != "" {
		q = q.Where("installments.status = ?", status)
	}
	var n int64
	err := q.Count(&n).Error
	return n, err
}

// CountInstallmentsNot 统计账目下状态不等于 status 的分期数量
func (l *ScopedLedger) CountInstallmentsNot(transactionID uint, status models.PaymentStatus) (int64, error) {
	var n int64
	err := l.installments().
		Where("installments.transaction_id = ? AND installments.status <> ?", transactionID, status).
		Count(&n).Error
	return n, err
}

// MarkOpenInstallmentsPaid 将账目下所有未付分期标记为已付
func (l *ScopedLedger) MarkOpenInstallmentsPaid(transactionID uint, payDate time.Time) (int64, error) {
	res := l.db.Model(&models.Installment{}).
		Where("transaction_id = ? AND status = ?", transactionID, models.StatusOpen).
		Where("transaction_id IN (?)", l.transactionIDs()).
		Updates(map[string]interface{}{
			"status":   models.StatusPaid,
			"pay_date": payDate,
		})
	return res.RowsAffected, res.Error
}

// LedgerRow 统计用的账目行
type LedgerRow struct {
	ID           uint
	Description  string
	Value        decimal.Decimal
	Type         models.TransactionType
	Status       models.PaymentStatus
	Date         time.Time
	MemberID     uint
	MemberName   string
	Username     string
	CategoryID   *uint
	CategoryName *string
}

// Rows 返回窗口 [start, end) 内的账目行，typ 为空时返回全部类型，按 ID 升序
func (l *ScopedLedger) Rows(start, end time.Time, typ models.TransactionType) ([]LedgerRow, error) {
	q := l.transactions().
		Select("transactions.id, transactions.description, transactions.value, transactions.type, " +
			"transactions.status, transactions.date, transactions.member_id, transactions.category_id, " +
			"users.name AS member_name, users.username AS username, categories.name AS category_name").
		Joins("LEFT JOIN users ON users.id = members.user_id").
		Joins("LEFT JOIN categories ON categories.id = transactions.category_id AND categories.deleted_at IS NULL")
	if !start.IsZero() {
		q = q.Where("transactions.date >= ?", start)
	}
	if !end.IsZero() {
		q = q.Where("transactions.date < ?", end)
	}
	if typ != "" {
		q = q.Where("transactions.type = ?", typ)
	}

	var rows []LedgerRow
	err := q.Order("transactions.id ASC").Scan(&rows).Error
	return rows, err
}

// InstallmentValues 返回某状态下各分期的金额和类型（不限时间）
func (l *ScopedLedger) InstallmentValues(status models.PaymentStatus) ([]InstallmentValue, error) {
	var rows []InstallmentValue
	err := l.installments().
		Select("installments.value, installments.type").
		Where("installments.status = ?", status).
		Scan(&rows).Error
	return rows, err
}

// InstallmentValue 分期金额
type InstallmentValue struct {
	Value decimal.Decimal
	Type  models.TransactionType
}

// classify 区分“不存在”和“属于其他家庭”
func (l *ScopedLedger) classify(err error, model interface{}, id uint) error {
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	var n int64
	if cerr := l.db.Model(model).Where("id = ?", id).Count(&n).Error; cerr == nil && n > 0 {
		return ErrOutOfScope
	}
	return gorm.ErrRecordNotFound
}
