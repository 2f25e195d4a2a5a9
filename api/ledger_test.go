package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"homeledger/database"
	"homeledger/logger"
	"homeledger/middleware"
	"homeledger/models"
	"homeledger/repository"
	"homeledger/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// ledgerEnv 基于内存 sqlite 的完整处理器链：JWT -> HomeScope -> handler
type ledgerEnv struct {
	db     *gorm.DB
	router *gin.Engine

	home, other            uint
	aliceTok, bobTok       string
	carolTok, daveTok      string
	aliceMember, bobMember uint
	food                   uint
}

func newLedgerEnv(t *testing.T) *ledgerEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	testAuthConfig()

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

	users := []models.User{
		{Username: "alice", Name: "Alice", Password: "x"},
		{Username: "bob", Name: "Bob", Password: "x"},
		{Username: "carol", Name: "Carol", Password: "x"},
		{Username: "dave", Name: "Dave", Password: "x"},
	}
	require.NoError(t, db.Create(&users).Error)
	homes := []models.Home{{Name: "Home"}, {Name: "Other"}}
	require.NoError(t, db.Create(&homes).Error)
	members := []models.Member{
		{UserID: users[0].ID, HomeID: homes[0].ID, Role: models.MemberRoleAdmin},
		{UserID: users[1].ID, HomeID: homes[0].ID, Role: models.MemberRoleMember},
		{UserID: users[2].ID, HomeID: homes[1].ID, Role: models.MemberRoleAdmin},
	}
	require.NoError(t, db.Create(&members).Error)
	food := models.Category{Name: "Food", Sort: 10}
	require.NoError(t, db.Create(&food).Error)

	env := &ledgerEnv{
		db:          db,
		home:        homes[0].ID,
		other:       homes[1].ID,
		aliceMember: members[0].ID,
		bobMember:   members[1].ID,
		food:        food.ID,
	}
	env.aliceTok = token(t, users[0])
	env.bobTok = token(t, users[1])
	env.carolTok = token(t, users[2])
	env.daveTok = token(t, users[3])

	log := logger.Nop()
	store := repository.NewLedgerStore(db)
	memberships := repository.NewMembershipStore(db)
	categories := repository.NewCategoryDirectory(db)
	reconciler := service.NewReconciler(store, log)
	ledger := service.NewLedgerService(store, categories, service.NewScheduler(360), reconciler, log)
	stats := service.NewStatisticsService(store, service.DefaultTopExpensesLimit)

	r := gin.New()
	authorized := r.Group("/api/v1", middleware.JWTAuth())
	homeHandler := NewHomeHandler(memberships, repository.NewUserStore(db))
	authorized.GET("/homes", homeHandler.ListHomes)
	authorized.POST("/homes", homeHandler.CreateHome)
	authorized.GET("/invites", homeHandler.ListInvites)
	authorized.POST("/invites/:id/accept", homeHandler.AcceptInvite)
	authorized.DELETE("/invites/:id", homeHandler.DeclineInvite)

	scoped := authorized.Group("", middleware.HomeScope(memberships))
	scoped.GET("/members", homeHandler.ListMembers)
	scoped.POST("/members", homeHandler.AddMember)
	scoped.POST("/members/invite", homeHandler.Invite)
	scoped.DELETE("/members/:id", homeHandler.RemoveMember)

	categoryHandler := NewCategoryHandler(categories)
	scoped.GET("/categories", categoryHandler.List)
	scoped.POST("/categories", categoryHandler.Create)

	transactionHandler := NewTransactionHandler(ledger, stats)
	scoped.POST("/transactions", transactionHandler.Create)
	scoped.GET("/transactions", transactionHandler.List)
	scoped.GET("/transactions/total/:type", transactionHandler.TotalByType)
	scoped.GET("/transactions/:id", transactionHandler.Get)
	scoped.PUT("/transactions/:id", transactionHandler.Update)
	scoped.DELETE("/transactions/:id", transactionHandler.Delete)

	scoped.PUT("/installments/:id", NewInstallmentHandler(reconciler).Update)

	statisticsHandler := NewStatisticsHandler(stats)
	scoped.GET("/statistics", statisticsHandler.Statistics)
	scoped.GET("/statistics/monthly", statisticsHandler.Monthly)

	exportHandler := NewExportHandler(stats)
	scoped.GET("/export/csv", exportHandler.ExportCSV)
	scoped.GET("/export/excel", exportHandler.ExportExcel)

	env.router = r
	return env
}

func token(t *testing.T, u models.User) string {
	t.Helper()
	tok, err := middleware.GenerateToken(u.ID, u.Username, time.Hour)
	require.NoError(t, err)
	return tok
}

func (e *ledgerEnv) do(method, path, tok string, homeID uint, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+tok)
	if homeID != 0 {
		req.Header.Set(middleware.HomeHeader, fmt.Sprint(homeID))
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// decodeData 解析 {code, message, data} 中的 data
func decodeData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	var resp struct {
		Code int             `json:"code"`
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 200, resp.Code)
	require.NoError(t, json.Unmarshal(resp.Data, out))
}

func decodeMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Message
}

func (e *ledgerEnv) createFridge(t *testing.T) models.Transaction {
	t.Helper()
	w := e.do("POST", "/api/v1/transactions", e.aliceTok, e.home,
		fmt.Sprintf(`{"description":"冰箱","value":"300.00","total_installments":3,"type":"expense","category_id":%d,"date":"2024-01-15"}`, e.food))
	require.Equal(t, 200, w.Code, w.Body.String())
	var txn models.Transaction
	decodeData(t, w, &txn)
	return txn
}

func TestTransactionHandler_CreateAndGet(t *testing.T) {
	env := newLedgerEnv(t)
	created := env.createFridge(t)

	assert.Equal(t, env.aliceMember, created.MemberID)
	assert.Equal(t, models.StatusOpen, created.Status)
	assert.Equal(t, 3, created.TotalInstallments)

	w := env.do("GET", fmt.Sprintf("/api/v1/transactions/%d", created.ID), env.bobTok, env.home, "")
	require.Equal(t, 200, w.Code)
	var txn models.Transaction
	decodeData(t, w, &txn)
	require.Len(t, txn.Installments, 3)
	for i, inst := range txn.Installments {
		assert.Equal(t, i+1, inst.Number)
		assert.True(t, decimal.NewFromInt(100).Equal(inst.Value))
		assert.Equal(t, models.StatusOpen, inst.Status)
	}
	assert.Equal(t, "2024-03-15", txn.Installments[2].DueDate.Format(models.DateLayout))
}

func TestTransactionHandler_CreateValidation(t *testing.T) {
	env := newLedgerEnv(t)

	cases := []struct {
		name string
		body string
	}{
		{"缺少类型", `{"value":"10","date":"2024-01-01"}`},
		{"日期格式", `{"value":"10","type":"expense","date":"01/02/2024"}`},
		{"金额为零", `{"value":"0","type":"expense","date":"2024-01-01"}`},
		{"类型非法", `{"value":"10","type":"gift","date":"2024-01-01"}`},
		{"分期为负", `{"value":"10","type":"expense","total_installments":-1,"date":"2024-01-01"}`},
		{"类别不存在", `{"value":"10","type":"expense","category_id":999,"date":"2024-01-01"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := env.do("POST", "/api/v1/transactions", env.aliceTok, env.home, tc.body)
			assert.Equal(t, 400, w.Code, w.Body.String())
		})
	}

	var n int64
	env.db.Model(&models.Transaction{}).Count(&n)
	assert.Zero(t, n)
}

func TestTransactionHandler_CrossHome(t *testing.T) {
	env := newLedgerEnv(t)
	created := env.createFridge(t)
	path := fmt.Sprintf("/api/v1/transactions/%d", created.ID)

	// carol 在自己的家庭里访问 alice 的账目，与不存在的 ID 表现一致
	w := env.do("GET", path, env.carolTok, env.other, "")
	assert.Equal(t, 404, w.Code)
	missing := env.do("GET", "/api/v1/transactions/9999", env.carolTok, env.other, "")
	assert.Equal(t, 404, missing.Code)

	w = env.do("DELETE", path, env.carolTok, env.other, "")
	assert.Equal(t, 404, w.Code)

	// carol 冒用 alice 的家庭
	w = env.do("GET", path, env.carolTok, env.home, "")
	assert.Equal(t, 403, w.Code)

	// 缺少家庭头
	w = env.do("GET", path, env.aliceTok, 0, "")
	assert.Equal(t, 400, w.Code)
}

func TestInstallmentHandler_Reconcile(t *testing.T) {
	env := newLedgerEnv(t)
	created := env.createFridge(t)

	var txn models.Transaction
	decodeData(t, env.do("GET", fmt.Sprintf("/api/v1/transactions/%d", created.ID), env.aliceTok, env.home, ""), &txn)

	var last ReconcileResponse
	for _, inst := range txn.Installments {
		w := env.do("PUT", fmt.Sprintf("/api/v1/installments/%d", inst.ID), env.aliceTok, env.home,
			`{"status":"paid","pay_date":"2024-02-01"}`)
		require.Equal(t, 200, w.Code, w.Body.String())
		decodeData(t, w, &last)
	}
	assert.Equal(t, models.StatusPaid, last.Installment.Status)
	require.NotNil(t, last.Installment.PayDate)
	assert.Equal(t, "2024-02-01", last.Installment.PayDate.Format(models.DateLayout))
	assert.Equal(t, 3, last.Transaction.InstallmentsPaid)
	assert.Equal(t, models.StatusPaid, last.Transaction.Status)

	// 撤销一期，账目回到未付
	w := env.do("PUT", fmt.Sprintf("/api/v1/installments/%d", txn.Installments[0].ID), env.aliceTok, env.home, `{"status":"open"}`)
	require.Equal(t, 200, w.Code)
	decodeData(t, w, &last)
	assert.Nil(t, last.Installment.PayDate)
	assert.Equal(t, 2, last.Transaction.InstallmentsPaid)
	assert.Equal(t, models.StatusOpen, last.Transaction.Status)

	tomorrow := time.Now().UTC().AddDate(0, 0, 1).Format(models.DateLayout)
	w = env.do("PUT", fmt.Sprintf("/api/v1/installments/%d", txn.Installments[0].ID), env.aliceTok, env.home,
		`{"status":"paid","pay_date":"`+tomorrow+`"}`)
	assert.Equal(t, 400, w.Code)

	w = env.do("PUT", fmt.Sprintf("/api/v1/installments/%d", txn.Installments[0].ID), env.aliceTok, env.home, `{"status":"done"}`)
	assert.Equal(t, 400, w.Code)

	w = env.do("PUT", fmt.Sprintf("/api/v1/installments/%d", txn.Installments[0].ID), env.carolTok, env.other, `{"status":"paid"}`)
	assert.Equal(t, 404, w.Code)
}

func TestTransactionHandler_UpdateToPaid(t *testing.T) {
	env := newLedgerEnv(t)
	created := env.createFridge(t)
	path := fmt.Sprintf("/api/v1/transactions/%d", created.ID)

	w := env.do("PUT", path, env.aliceTok, env.home, `{"status":"paid","pay_date":"2024-03-01"}`)
	require.Equal(t, 200, w.Code, w.Body.String())
	var txn models.Transaction
	decodeData(t, w, &txn)
	assert.Equal(t, models.StatusPaid, txn.Status)
	assert.Equal(t, 3, txn.InstallmentsPaid)

	w = env.do("PUT", path, env.aliceTok, env.home, `{"value":"-5"}`)
	assert.Equal(t, 400, w.Code)
	w = env.do("PUT", path, env.aliceTok, env.home, `{"date":"2024/01/01"}`)
	assert.Equal(t, 400, w.Code)

	w = env.do("DELETE", path, env.aliceTok, env.home, "")
	require.Equal(t, 200, w.Code)
	w = env.do("GET", path, env.aliceTok, env.home, "")
	assert.Equal(t, 404, w.Code)
}

func TestTransactionHandler_ListAndTotal(t *testing.T) {
	env := newLedgerEnv(t)
	env.createFridge(t)
	w := env.do("POST", "/api/v1/transactions", env.bobTok, env.home,
		`{"description":"工资","value":"1000.50","type":"revenue","date":"2024-02-05"}`)
	require.Equal(t, 200, w.Code, w.Body.String())

	var list []models.Transaction
	decodeData(t, env.do("GET", "/api/v1/transactions?year=2024&month=2", env.aliceTok, env.home, ""), &list)
	require.Len(t, list, 1)
	assert.Equal(t, env.bobMember, list[0].MemberID)

	decodeData(t, env.do("GET", "/api/v1/transactions?type=expense", env.aliceTok, env.home, ""), &list)
	require.Len(t, list, 1)
	assert.Equal(t, "冰箱", list[0].Description)

	w = env.do("GET", "/api/v1/transactions?year=2024&month=13", env.aliceTok, env.home, "")
	assert.Equal(t, 400, w.Code)

	var total TotalResponse
	decodeData(t, env.do("GET", "/api/v1/transactions/total/revenue", env.aliceTok, env.home, ""), &total)
	assert.True(t, decimal.RequireFromString("1000.50").Equal(total.Total))

	// 其他家庭看不到这些账目
	decodeData(t, env.do("GET", "/api/v1/transactions/total/expense", env.carolTok, env.other, ""), &total)
	assert.True(t, total.Total.IsZero())

	w = env.do("GET", "/api/v1/transactions/total/gift", env.aliceTok, env.home, "")
	assert.Equal(t, 400, w.Code)
}

func TestStatisticsHandler(t *testing.T) {
	env := newLedgerEnv(t)
	env.createFridge(t)
	w := env.do("POST", "/api/v1/transactions", env.bobTok, env.home,
		`{"description":"工资","value":"1000","type":"revenue","status":"paid","date":"2024-01-05"}`)
	require.Equal(t, 200, w.Code)

	var stats service.Statistics
	decodeData(t, env.do("GET", "/api/v1/statistics?year=2024&month=1", env.aliceTok, env.home, ""), &stats)
	require.Len(t, stats.TopExpenses, 1)
	assert.Equal(t, "Alice", stats.TopExpenses[0].Member)
	assert.Equal(t, "Food", stats.TopExpenses[0].Category)
	assert.True(t, decimal.NewFromInt(700).Equal(stats.Summary.Balance))

	var yearly service.YearlyStats
	decodeData(t, env.do("GET", "/api/v1/statistics/monthly?year=2024&month=1", env.aliceTok, env.home, ""), &yearly)
	assert.True(t, decimal.NewFromInt(300).Equal(yearly.CurrentMonth.ExpenseSum))
	assert.Equal(t, 2, yearly.CurrentMonth.ActiveMembers)
	assert.True(t, decimal.NewFromInt(300).Equal(yearly.PendingExpense))
	assert.True(t, yearly.PendingRevenue.IsZero())
	require.Len(t, yearly.Chart, 12)

	w = env.do("GET", "/api/v1/statistics?year=abc", env.aliceTok, env.home, "")
	assert.Equal(t, 400, w.Code)
	w = env.do("GET", "/api/v1/statistics/monthly?year=2024&month=0", env.aliceTok, env.home, "")
	assert.Equal(t, 400, w.Code)
}

func TestExportHandler(t *testing.T) {
	env := newLedgerEnv(t)
	env.createFridge(t)

	w := env.do("GET", "/api/v1/export/csv?year=2024&month=1", env.aliceTok, env.home, "")
	require.Equal(t, 200, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "ledger_2024-01.csv")
	body := w.Body.String()
	assert.Contains(t, body, "ID,日期,类型,描述,金额,状态,成员,类别")
	assert.Contains(t, body, "2024-01-15,支出,冰箱,300.00,未付,Alice,Food")

	// 空月份只有表头
	w = env.do("GET", "/api/v1/export/csv?year=2023&month=1", env.aliceTok, env.home, "")
	require.Equal(t, 200, w.Code)
	assert.NotContains(t, w.Body.String(), "冰箱")

	w = env.do("GET", "/api/v1/export/excel?year=2024&month=1", env.aliceTok, env.home, "")
	require.Equal(t, 200, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "ledger_2024-01.xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	header, err := f.GetCellValue("账目", "A1")
	require.NoError(t, err)
	assert.Equal(t, "ID", header)
	desc, _ := f.GetCellValue("账目", "D2")
	assert.Equal(t, "冰箱", desc)
	summary, _ := f.GetCellValue("账目", "D3")
	assert.Equal(t, "收入 0.00 / 支出 300.00 / 结余 -300.00", summary)

	w = env.do("GET", "/api/v1/export/excel?month=x", env.aliceTok, env.home, "")
	assert.Equal(t, 400, w.Code)
}

func TestCategoryHandler(t *testing.T) {
	env := newLedgerEnv(t)

	w := env.do("POST", "/api/v1/categories", env.aliceTok, env.home, `{"name":"Travel","color":"#10b981"}`)
	require.Equal(t, 200, w.Code, w.Body.String())
	var cat models.Category
	decodeData(t, w, &cat)
	assert.Equal(t, 20, cat.Sort)

	w = env.do("POST", "/api/v1/categories", env.bobTok, env.home, `{"name":"Food"}`)
	assert.Equal(t, 409, w.Code)

	w = env.do("POST", "/api/v1/categories", env.bobTok, env.home, `{}`)
	assert.Equal(t, 400, w.Code)

	// 类别全局共享
	var list []models.Category
	decodeData(t, env.do("GET", "/api/v1/categories", env.carolTok, env.other, ""), &list)
	require.Len(t, list, 2)
	assert.Equal(t, "Food", list[0].Name)
	assert.Equal(t, "Travel", list[1].Name)
}

func TestHomeHandler_Members(t *testing.T) {
	env := newLedgerEnv(t)

	var members []MemberResponse
	decodeData(t, env.do("GET", "/api/v1/members", env.bobTok, env.home, ""), &members)
	require.Len(t, members, 2)
	assert.Equal(t, "alice", members[0].Username)
	assert.Equal(t, models.MemberRoleAdmin, members[0].Role)

	// 普通成员不能邀请
	w := env.do("POST", "/api/v1/members", env.bobTok, env.home, `{"username":"dave"}`)
	assert.Equal(t, 403, w.Code)

	w = env.do("POST", "/api/v1/members", env.aliceTok, env.home, `{"username":"nobody"}`)
	assert.Equal(t, 404, w.Code)

	w = env.do("POST", "/api/v1/members", env.aliceTok, env.home, `{"username":"dave"}`)
	require.Equal(t, 200, w.Code, w.Body.String())
	var dave models.Member
	decodeData(t, w, &dave)
	assert.Equal(t, models.MemberRoleMember, dave.Role)

	w = env.do("DELETE", fmt.Sprintf("/api/v1/members/%d", env.aliceMember), env.aliceTok, env.home, "")
	assert.Equal(t, 400, w.Code)
	assert.Equal(t, "不能移除自己", decodeMessage(t, w))

	w = env.do("DELETE", fmt.Sprintf("/api/v1/members/%d", dave.ID), env.aliceTok, env.home, "")
	require.Equal(t, 200, w.Code)
	w = env.do("DELETE", fmt.Sprintf("/api/v1/members/%d", dave.ID), env.aliceTok, env.home, "")
	assert.Equal(t, 404, w.Code)
}

func TestHomeHandler_Homes(t *testing.T) {
	env := newLedgerEnv(t)

	w := env.do("POST", "/api/v1/homes", env.carolTok, 0, `{"name":"Cabin"}`)
	require.Equal(t, 200, w.Code, w.Body.String())
	var cabin models.Home
	decodeData(t, w, &cabin)

	var homes []models.Home
	decodeData(t, env.do("GET", "/api/v1/homes", env.carolTok, 0, ""), &homes)
	require.Len(t, homes, 2)
	assert.Equal(t, env.other, homes[0].ID)
	assert.Equal(t, cabin.ID, homes[1].ID)

	// 创建者是新家庭的管理员
	w = env.do("POST", "/api/v1/members", env.carolTok, cabin.ID, `{"username":"alice"}`)
	assert.Equal(t, 200, w.Code)

	w = env.do("POST", "/api/v1/homes", env.carolTok, 0, `{}`)
	assert.Equal(t, 400, w.Code)
}

func TestHomeHandler_Invites(t *testing.T) {
	env := newLedgerEnv(t)

	w := env.do("POST", "/api/v1/members/invite", env.bobTok, env.home, `{"login":"dave"}`)
	assert.Equal(t, 403, w.Code)
	w = env.do("POST", "/api/v1/members/invite", env.aliceTok, env.home, `{"login":"nobody"}`)
	assert.Equal(t, 404, w.Code)
	w = env.do("POST", "/api/v1/members/invite", env.aliceTok, env.home, `{"login":"bob"}`)
	assert.Equal(t, 409, w.Code)

	w = env.do("POST", "/api/v1/members/invite", env.aliceTok, env.home, `{"login":"dave"}`)
	require.Equal(t, 200, w.Code, w.Body.String())
	var inv models.Invite
	decodeData(t, w, &inv)
	assert.Equal(t, env.home, inv.HomeID)
	w = env.do("POST", "/api/v1/members/invite", env.aliceTok, env.home, `{"login":"dave"}`)
	assert.Equal(t, 409, w.Code)

	var pending []models.Invite
	decodeData(t, env.do("GET", "/api/v1/invites", env.daveTok, 0, ""), &pending)
	require.Len(t, pending, 1)
	require.NotNil(t, pending[0].Home)
	assert.Equal(t, "Home", pending[0].Home.Name)

	// 别人的邀请不可见
	w = env.do("POST", fmt.Sprintf("/api/v1/invites/%d/accept", inv.ID), env.carolTok, 0, "")
	assert.Equal(t, 404, w.Code)

	w = env.do("POST", fmt.Sprintf("/api/v1/invites/%d/accept", inv.ID), env.daveTok, 0, "")
	require.Equal(t, 200, w.Code, w.Body.String())
	var member models.Member
	decodeData(t, w, &member)
	assert.Equal(t, env.home, member.HomeID)
	assert.Equal(t, models.MemberRoleMember, member.Role)

	w = env.do("POST", fmt.Sprintf("/api/v1/invites/%d/accept", inv.ID), env.daveTok, 0, "")
	assert.Equal(t, 404, w.Code)

	var members []MemberResponse
	decodeData(t, env.do("GET", "/api/v1/members", env.daveTok, env.home, ""), &members)
	assert.Len(t, members, 3)

	// 拒绝
	w = env.do("POST", "/api/v1/members/invite", env.aliceTok, env.home, `{"login":"carol","role":"admin"}`)
	require.Equal(t, 200, w.Code)
	decodeData(t, w, &inv)
	w = env.do("DELETE", fmt.Sprintf("/api/v1/invites/%d", inv.ID), env.carolTok, 0, "")
	require.Equal(t, 200, w.Code)
	w = env.do("DELETE", fmt.Sprintf("/api/v1/invites/%d", inv.ID), env.carolTok, 0, "")
	assert.Equal(t, 404, w.Code)
	decodeData(t, env.do("GET", "/api/v1/invites", env.carolTok, 0, ""), &pending)
	assert.Empty(t, pending)
}
