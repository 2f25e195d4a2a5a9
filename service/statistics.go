package service

import (
	"context"
	"sort"
	"time"

	"homeledger/models"
	"homeledger/repository"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// DefaultTopExpensesLimit 最大支出默认条数
const DefaultTopExpensesLimit = 5

var monthLabels = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// StatisticsService 只读统计，所有金额以 decimal 在内存中累加
type StatisticsService struct {
	store    *repository.LedgerStore
	topLimit int
}

// NewStatisticsService 创建统计服务
func NewStatisticsService(store *repository.LedgerStore, topLimit int) *StatisticsService {
	if topLimit <= 0 {
		topLimit = DefaultTopExpensesLimit
	}
	return &StatisticsService{store: store, topLimit: topLimit}
}

// MonthlyTotals 单月收支合计
type MonthlyTotals struct {
	Year          int             `json:"year"`
	Month         int             `json:"month"`
	RevenueSum    decimal.Decimal `json:"revenue_sum"`
	ExpenseSum    decimal.Decimal `json:"expense_sum"`
	ActiveMembers int             `json:"active_members"`
}

// ChartPoint 年度图表中的一个月
type ChartPoint struct {
	Label   string          `json:"label"`
	Month   int             `json:"month"`
	Revenue decimal.Decimal `json:"revenue"`
	Expense decimal.Decimal `json:"expense"`
}

// YearlyStats 月度概览：本月与上月对比、全年图表、待收待付
type YearlyStats struct {
	CurrentMonth   MonthlyTotals   `json:"current_month"`
	LastMonth      MonthlyTotals   `json:"last_month"`
	RevenueGrowth  decimal.Decimal `json:"revenue_growth"`
	ExpenseGrowth  decimal.Decimal `json:"expense_growth"`
	MembersGrowth  decimal.Decimal `json:"members_growth"`
	Chart          []ChartPoint    `json:"chart"`
	PendingRevenue decimal.Decimal `json:"pending_revenue"`
	PendingExpense decimal.Decimal `json:"pending_expense"`
}

// ExpenseItem 最大支出列表项
type ExpenseItem struct {
	ID          uint            `json:"id"`
	Description string          `json:"description"`
	Value       decimal.Decimal `json:"value"`
	Date        string          `json:"date"`
	Member      string          `json:"member"`
	Category    string          `json:"category"`
}

// NamedTotal 分组合计
type NamedTotal struct {
	Name  string          `json:"name"`
	Total decimal.Decimal `json:"total"`
}

// Summary 收支汇总
type Summary struct {
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	Balance      decimal.Decimal `json:"balance"`
}

// Statistics 统计页数据
type Statistics struct {
	TopExpenses       []ExpenseItem `json:"top_expenses"`
	ExpenseByMember   []NamedTotal  `json:"expense_by_member"`
	ExpenseByCategory []NamedTotal  `json:"expense_by_category"`
	RevenueByCategory []NamedTotal  `json:"revenue_by_category"`
	Summary           Summary       `json:"summary"`
}

// MonthlyTotals 某月按类型合计，以及有账目的成员数
func (s *StatisticsService) MonthlyTotals(ctx context.Context, homeID uint, year, month int) (*MonthlyTotals, error) {
	if err := validatePeriod(year, month); err != nil {
		return nil, err
	}
	start, end := models.MonthRange(year, time.Month(month))
	rows, err := s.store.Scoped(ctx, homeID).Rows(start, end, "")
	if err != nil {
		return nil, err
	}

	totals := &MonthlyTotals{Year: year, Month: month, RevenueSum: decimal.Zero, ExpenseSum: decimal.Zero}
	members := make(map[uint]struct{})
	for _, r := range rows {
		switch r.Type {
		case models.TransactionTypeRevenue:
			totals.RevenueSum = totals.RevenueSum.Add(r.Value)
		case models.TransactionTypeExpense:
			totals.ExpenseSum = totals.ExpenseSum.Add(r.Value)
		}
		members[r.MemberID] = struct{}{}
	}
	totals.ActiveMembers = len(members)
	return totals, nil
}

// YearlyStats 本月与上月对比、全年 12 个月图表、全部未付分期合计
func (s *StatisticsService) YearlyStats(ctx context.Context, homeID uint, year, month int) (*YearlyStats, error) {
	if err := validatePeriod(year, month); err != nil {
		return nil, err
	}

	current, err := s.MonthlyTotals(ctx, homeID, year, month)
	if err != nil {
		return nil, err
	}
	prev := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	last, err := s.MonthlyTotals(ctx, homeID, prev.Year(), int(prev.Month()))
	if err != nil {
		return nil, err
	}

	chart, err := s.chart(ctx, homeID, year)
	if err != nil {
		return nil, err
	}

	pending, err := s.store.Scoped(ctx, homeID).InstallmentValues(models.StatusOpen)
	if err != nil {
		return nil, err
	}

	stats := &YearlyStats{
		CurrentMonth:   *current,
		LastMonth:      *last,
		RevenueGrowth:  Growth(current.RevenueSum, last.RevenueSum),
		ExpenseGrowth:  Growth(current.ExpenseSum, last.ExpenseSum),
		MembersGrowth:  Growth(decimal.NewFromInt(int64(current.ActiveMembers)), decimal.NewFromInt(int64(last.ActiveMembers))),
		Chart:          chart,
		PendingRevenue: decimal.Zero,
		PendingExpense: decimal.Zero,
	}
	for _, p := range pending {
		switch p.Type {
		case models.TransactionTypeRevenue:
			stats.PendingRevenue = stats.PendingRevenue.Add(p.Value)
		case models.TransactionTypeExpense:
			stats.PendingExpense = stats.PendingExpense.Add(p.Value)
		}
	}
	return stats, nil
}

// chart 全年每月收支，没有账目的月份为 0
func (s *StatisticsService) chart(ctx context.Context, homeID uint, year int) ([]ChartPoint, error) {
	start := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	rows, err := s.store.Scoped(ctx, homeID).Rows(start, start.AddDate(1, 0, 0), "")
	if err != nil {
		return nil, err
	}

	points := make([]ChartPoint, 12)
	for i := range points {
		points[i] = ChartPoint{Label: monthLabels[i], Month: i + 1, Revenue: decimal.Zero, Expense: decimal.Zero}
	}
	for _, r := range rows {
		p := &points[int(r.Date.Month())-1]
		switch r.Type {
		case models.TransactionTypeRevenue:
			p.Revenue = p.Revenue.Add(r.Value)
		case models.TransactionTypeExpense:
			p.Expense = p.Expense.Add(r.Value)
		}
	}
	return points, nil
}

// TopExpenses 某月金额最大的支出，金额相同时先录入的在前
func (s *StatisticsService) TopExpenses(ctx context.Context, homeID uint, year, month, limit int) ([]ExpenseItem, error) {
	rows, err := s.monthRows(ctx, homeID, year, month, models.TransactionTypeExpense)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = s.topLimit
	}

	// rows 已按 ID 升序，稳定排序保留并列项的录入顺序
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Value.GreaterThan(rows[j].Value)
	})
	if len(rows) > limit {
		rows = rows[:limit]
	}

	items := make([]ExpenseItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, ExpenseItem{
			ID:          r.ID,
			Description: r.Description,
			Value:       r.Value,
			Date:        r.Date.Format(models.DateLayout),
			Member:      memberName(r),
			Category:    categoryName(r),
		})
	}
	return items, nil
}

// GroupByMember 某月某类型按成员合计，降序
func (s *StatisticsService) GroupByMember(ctx context.Context, homeID uint, year, month int, typ models.TransactionType) ([]NamedTotal, error) {
	rows, err := s.monthRows(ctx, homeID, year, month, typ)
	if err != nil {
		return nil, err
	}
	return groupBy(rows, memberName), nil
}

// GroupByCategory 某月某类型按类别合计，降序；无类别的归入 NoCategoryLabel
func (s *StatisticsService) GroupByCategory(ctx context.Context, homeID uint, year, month int, typ models.TransactionType) ([]NamedTotal, error) {
	rows, err := s.monthRows(ctx, homeID, year, month, typ)
	if err != nil {
		return nil, err
	}
	return groupBy(rows, categoryName), nil
}

// Summary 某月收入、支出与结余
func (s *StatisticsService) Summary(ctx context.Context, homeID uint, year, month int) (*Summary, error) {
	totals, err := s.MonthlyTotals(ctx, homeID, year, month)
	if err != nil {
		return nil, err
	}
	return &Summary{
		TotalRevenue: totals.RevenueSum,
		TotalExpense: totals.ExpenseSum,
		Balance:      totals.RevenueSum.Sub(totals.ExpenseSum),
	}, nil
}

// Statistics 统计页数据，五项查询并发执行
func (s *StatisticsService) Statistics(ctx context.Context, homeID uint, year, month int) (*Statistics, error) {
	if err := validatePeriod(year, month); err != nil {
		return nil, err
	}

	var out Statistics
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		out.TopExpenses, err = s.TopExpenses(gctx, homeID, year, month, s.topLimit)
		return err
	})
	g.Go(func() error {
		var err error
		out.ExpenseByMember, err = s.GroupByMember(gctx, homeID, year, month, models.TransactionTypeExpense)
		return err
	})
	g.Go(func() error {
		var err error
		out.ExpenseByCategory, err = s.GroupByCategory(gctx, homeID, year, month, models.TransactionTypeExpense)
		return err
	})
	g.Go(func() error {
		var err error
		out.RevenueByCategory, err = s.GroupByCategory(gctx, homeID, year, month, models.TransactionTypeRevenue)
		return err
	})
	g.Go(func() error {
		summary, err := s.Summary(gctx, homeID, year, month)
		if err != nil {
			return err
		}
		out.Summary = *summary
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}

// TotalByType 家庭内某类型账目的全部金额合计
func (s *StatisticsService) TotalByType(ctx context.Context, homeID uint, typ models.TransactionType) (decimal.Decimal, error) {
	if !typ.Valid() {
		return decimal.Zero, invalid("type", "类型必须为 revenue 或 expense")
	}
	rows, err := s.store.Scoped(ctx, homeID).Rows(time.Time{}, time.Time{}, typ)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.Value)
	}
	return total, nil
}

// MonthRows 某月账目明细，导出使用
func (s *StatisticsService) MonthRows(ctx context.Context, homeID uint, year, month int) ([]repository.LedgerRow, error) {
	return s.monthRows(ctx, homeID, year, month, "")
}

func (s *StatisticsService) monthRows(ctx context.Context, homeID uint, year, month int, typ models.TransactionType) ([]repository.LedgerRow, error) {
	if err := validatePeriod(year, month); err != nil {
		return nil, err
	}
	if typ != "" && !typ.Valid() {
		return nil, invalid("type", "类型必须为 revenue 或 expense")
	}
	start, end := models.MonthRange(year, time.Month(month))
	return s.store.Scoped(ctx, homeID).Rows(start, end, typ)
}

// groupBy 按 key 合计，金额降序，金额相同按名称升序
func groupBy(rows []repository.LedgerRow, key func(repository.LedgerRow) string) []NamedTotal {
	sums := make(map[string]decimal.Decimal)
	for _, r := range rows {
		k := key(r)
		sums[k] = sums[k].Add(r.Value)
	}

	out := make([]NamedTotal, 0, len(sums))
	for name, total := range sums {
		out = append(out, NamedTotal{Name: name, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Total.Cmp(out[j].Total); c != 0 {
			return c > 0
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func memberName(r repository.LedgerRow) string {
	if r.MemberName != "" {
		return r.MemberName
	}
	return r.Username
}

func categoryName(r repository.LedgerRow) string {
	if r.CategoryName == nil || *r.CategoryName == "" {
		return models.NoCategoryLabel
	}
	return *r.CategoryName
}
