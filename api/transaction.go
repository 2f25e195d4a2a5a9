package api

import (
	"homeledger/middleware"
	"homeledger/models"
	"homeledger/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// TransactionHandler 账目处理器
type TransactionHandler struct {
	ledger *service.LedgerService
	stats  *service.StatisticsService
}

func NewTransactionHandler(ledger *service.LedgerService, stats *service.StatisticsService) *TransactionHandler {
	return &TransactionHandler{ledger: ledger, stats: stats}
}

type CreateTransactionRequest struct {
	Description       string          `json:"description" example:"冰箱"`
	Value             decimal.Decimal `json:"value" swaggertype:"string" example:"300.00"`
	TotalInstallments int             `json:"total_installments" example:"3"`
	Type              string          `json:"type" binding:"required" example:"expense"` // revenue / expense
	Status            string          `json:"status" example:"open"`                     // open / paid，默认 open
	IsPublic          bool            `json:"is_public"`
	MemberID          uint            `json:"member_id"` // 缺省为当前用户在该家庭的成员
	CategoryID        *uint           `json:"category_id"`
	Date              string          `json:"date" binding:"required" example:"2024-01-15"`
}

type UpdateTransactionRequest struct {
	Description *string          `json:"description"`
	Value       *decimal.Decimal `json:"value" swaggertype:"string"`
	Status      *string          `json:"status"`
	IsPublic    *bool            `json:"is_public"`
	CategoryID  *uint            `json:"category_id"`
	Date        *string          `json:"date" example:"2024-01-15"`
	PayDate     *string          `json:"pay_date" example:"2024-01-20"` // 状态改为 paid 时未付分期的支付日期
}

// Create 创建账目
// @Summary 创建账目
// @Description 创建收入或支出，按分期数生成每月一期的分期
// @Tags 账目
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-Home-ID header int true "家庭 ID"
// @Param request body CreateTransactionRequest true "账目信息"
// @Success 200 {object} Response{data=models.Transaction} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 404 {object} Response "成员不存在"
// @Router /api/v1/transactions [post]
func (h *TransactionHandler) Create(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}
	date, err := models.ParseDate(req.Date)
	if err != nil {
		BadRequest(c, "日期格式错误，应为: 2006-01-02")
		return
	}
	memberID := req.MemberID
	if memberID == 0 {
		memberID = middleware.GetCurrentMemberID(c)
	}

	txn, err := h.ledger.Create(c.Request.Context(), middleware.GetCurrentHomeID(c), service.CreateTransactionInput{
		Description:       req.Description,
		Value:             req.Value,
		TotalInstallments: req.TotalInstallments,
		Type:              models.TransactionType(req.Type),
		Status:            models.PaymentStatus(req.Status),
		IsPublic:          req.IsPublic,
		MemberID:          memberID,
		CategoryID:        req.CategoryID,
		Date:              date,
	})
	if err != nil {
		respondError(c, err, "创建账目失败")
		return
	}
	SuccessWithMessage(c, "创建成功", txn)
}

// Update 修改账目
// @Summary 修改账目
// @Description 修改描述、金额、状态、类别、日期等字段；状态改为 paid 时所有未付分期一并标记为已付
// @Tags 账目
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-Home-ID header int true "家庭 ID"
// @Param id path int true "账目 ID"
// @Param request body UpdateTransactionRequest true "要修改的字段"
// @Success 200 {object} Response{data=models.Transaction} "更新成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 404 {object} Response "账目不存在"
// @Router /api/v1/transactions/{id} [put]
func (h *TransactionHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	in := service.UpdateTransactionInput{
		Description: req.Description,
		Value:       req.Value,
		IsPublic:    req.IsPublic,
		CategoryID:  req.CategoryID,
	}
	if req.Status != nil {
		status := models.PaymentStatus(*req.Status)
		in.Status = &status
	}
	if req.Date != nil {
		d, err := models.ParseDate(*req.Date)
		if err != nil {
			BadRequest(c, "日期格式错误，应为: 2006-01-02")
			return
		}
		in.Date = &d
	}
	if req.PayDate != nil {
		d, err := models.ParseDate(*req.PayDate)
		if err != nil {
			BadRequest(c, "支付日期格式错误，应为: 2006-01-02")
			return
		}
		in.PayDate = &d
	}

	txn, err := h.ledger.Update(c.Request.Context(), middleware.GetCurrentHomeID(c), id, in)
	if err != nil {
		respondError(c, err, "更新账目失败")
		return
	}
	SuccessWithMessage(c, "更新成功", txn)
}

// Delete 删除账目
// @Summary 删除账目
// @Description 软删除账目及其全部分期
// @Tags 账目
// @Produce json
// @Security BearerAuth
// @Param X-Home-ID header int true "家庭 ID"
// @Param id path int true "账目 ID"
// @Success 200 {object} Response "删除成功"
// @Failure 404 {object} Response "账目不存在"
// @Router /api/v1/transactions/{id} [delete]
func (h *TransactionHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.ledger.Delete(c.Request.Context(), middleware.GetCurrentHomeID(c), id); err != nil {
		respondError(c, err, "删除账目失败")
		return
	}
	SuccessWithMessage(c, "删除成功", nil)
}

// Get 账目详情
// @Summary 账目详情
// @Description 返回账目及其按期数排序的分期
// @Tags 账目
// @Produce json
// @Security BearerAuth
// @Param X-Home-ID header int true "家庭 ID"
// @Param id path int true "账目 ID"
// @Success 200 {object} Response{data=models.Transaction} "获取成功"
// @Failure 404 {object} Response "账目不存在"
// @Router /api/v1/transactions/{id} [get]
func (h *TransactionHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	txn, err := h.ledger.Get(c.Request.Context(), middleware.GetCurrentHomeID(c), id)
	if err != nil {
		respondError(c, err, "查询账目失败")
		return
	}
	Success(c, txn)
}

type TransactionListQuery struct {
	Year   int    `form:"year" example:"2024"`
	Month  int    `form:"month" example:"1"`
	Type   string `form:"type" example:"expense"`
	Status string `form:"status" example:"open"`
}

// List 账目列表
// @Summary 账目列表
// @Description 家庭内账目，按日期倒序；不传 year 时不限时间，只传 year 时按整年
// @Tags 账目
// @Produce json
// @Security BearerAuth
// @Param X-Home-ID header int true "家庭 ID"
// @Param year query int false "年"
// @Param month query int false "月"
// @Param type query string false "revenue / expense"
// @Param status query string false "open / paid"
// @Success 200 {object} Response{data=[]models.Transaction} "获取成功"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/transactions [get]
func (h *TransactionHandler) List(c *gin.Context) {
	var q TransactionListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}
	list, err := h.ledger.List(c.Request.Context(), middleware.GetCurrentHomeID(c), service.ListFilter{
		Year:   q.Year,
		Month:  q.Month,
		Type:   models.TransactionType(q.Type),
		Status: models.PaymentStatus(q.Status),
	})
	if err != nil {
		respondError(c, err, "查询账目失败")
		return
	}
	Success(c, list)
}

// TotalResponse 按类型合计
type TotalResponse struct {
	Type  string          `json:"type" example:"revenue"`
	Total decimal.Decimal `json:"total" swaggertype:"string" example:"1234.56"`
}

// TotalByType 按类型合计
// @Summary 按类型合计
// @Description 家庭内某类型账目的全部金额合计（不限时间）
// @Tags 账目
// @Produce json
// @Security BearerAuth
// @Param X-Home-ID header int true "家庭 ID"
// @Param type path string true "revenue / expense"
// @Success 200 {object} Response{data=TotalResponse} "获取成功"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/transactions/total/{type} [get]
func (h *TransactionHandler) TotalByType(c *gin.Context) {
	typ := models.TransactionType(c.Param("type"))
	total, err := h.stats.TotalByType(c.Request.Context(), middleware.GetCurrentHomeID(c), typ)
	if err != nil {
		respondError(c, err, "统计失败")
		return
	}
	Success(c, TotalResponse{Type: string(typ), Total: total})
}
