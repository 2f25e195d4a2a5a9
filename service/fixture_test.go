package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"homeledger/database"
	"homeledger/logger"
	"homeledger/models"
	"homeledger/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// fixture 两个家庭：home 有 alice、bob 两个成员，other 只有 carol
type fixture struct {
	db         *gorm.DB
	store      *repository.LedgerStore
	ledger     *LedgerService
	reconciler *Reconciler
	stats      *StatisticsService

	home, other        uint
	alice, bob, carol  uint
	food, salary, rent uint
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared&_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(db))

	f := &fixture{db: db}
	users := []models.User{
		{Username: "alice", Name: "Alice", Password: "x"},
		{Username: "bob", Name: "Bob", Password: "x"},
		{Username: "carol", Name: "Carol", Password: "x"},
	}
	require.NoError(t, db.Create(&users).Error)

	homes := []models.Home{{Name: "Home"}, {Name: "Other"}}
	require.NoError(t, db.Create(&homes).Error)
	f.home, f.other = homes[0].ID, homes[1].ID

	members := []models.Member{
		{UserID: users[0].ID, HomeID: f.home, Role: models.MemberRoleAdmin},
		{UserID: users[1].ID, HomeID: f.home, Role: models.MemberRoleMember},
		{UserID: users[2].ID, HomeID: f.other, Role: models.MemberRoleAdmin},
	}
	require.NoError(t, db.Create(&members).Error)
	f.alice, f.bob, f.carol = members[0].ID, members[1].ID, members[2].ID

	cats := []models.Category{{Name: "Food", Sort: 10}, {Name: "Salary", Sort: 20}, {Name: "Rent", Sort: 30}}
	require.NoError(t, db.Create(&cats).Error)
	f.food, f.salary, f.rent = cats[0].ID, cats[1].ID, cats[2].ID

	log := logger.Nop()
	f.store = repository.NewLedgerStore(db)
	f.reconciler = NewReconciler(f.store, log)
	f.ledger = NewLedgerService(f.store, repository.NewCategoryDirectory(db), NewScheduler(360), f.reconciler, log)
	f.stats = NewStatisticsService(f.store, DefaultTopExpensesLimit)
	return f
}

// create 创建一条账目，失败直接终止测试
func (f *fixture) create(t *testing.T, homeID uint, in CreateTransactionInput) *models.Transaction {
	t.Helper()
	txn, err := f.ledger.Create(context.Background(), homeID, in)
	require.NoError(t, err)
	return txn
}

// reload 重新读取账目（含分期）
func (f *fixture) reload(t *testing.T, homeID, id uint) *models.Transaction {
	t.Helper()
	txn, err := f.ledger.Get(context.Background(), homeID, id)
	require.NoError(t, err)
	return txn
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(s string) time.Time {
	d, err := models.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func uintPtr(v uint) *uint { return &v }

func requireDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.Truef(t, dec(want).Equal(got), "want %s, got %s", want, got.String())
}

var errBoom = errors.New("boom")

// failWrites 让某张表上的 create/update/delete 失败，用于验证事务回滚
func (f *fixture) failWrites(t *testing.T, op, table string) {
	t.Helper()
	fail := func(tx *gorm.DB) {
		if tx.Statement.Table == table {
			_ = tx.AddError(errBoom)
		}
	}
	name := "test:fail_" + op + "_" + table
	cb := f.db.Callback()
	var err error
	switch op {
	case "create":
		err = cb.Create().Before("gorm:create").Register(name, fail)
	case "update":
		err = cb.Update().Before("gorm:update").Register(name, fail)
	case "delete":
		err = cb.Delete().Before("gorm:delete").Register(name, fail)
	default:
		t.Fatalf("unknown op %q", op)
	}
	require.NoError(t, err)
}
