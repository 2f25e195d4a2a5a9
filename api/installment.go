package api

import (
	"homeledger/middleware"
	"homeledger/models"
	"homeledger/service"

	"github.com/gin-gonic/gin"
)

// InstallmentHandler 分期处理器
type InstallmentHandler struct {
	reconciler *service.Reconciler
}

func NewInstallmentHandler(reconciler *service.Reconciler) *InstallmentHandler {
	return &InstallmentHandler{reconciler: reconciler}
}

type ReconcileRequest struct {
	Status  string  `json:"status" binding:"required" example:"paid"` // paid / open
	PayDate *string `json:"pay_date" example:"2024-01-20"`            // 可选，不能晚于今天
}

// ReconcileResponse 分期及重算后的账目
type ReconcileResponse struct {
	Installment *models.Installment `json:"installment"`
	Transaction *models.Transaction `json:"transaction"`
}

// Update 标记分期已付或未付
// @Summary 更新分期状态
// @Description 标记分期为 paid 或 open，并重新计算所属账目的已付期数和状态
// @Tags 分期
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-Home-ID header int true "家庭 ID"
// @Param id path int true "分期 ID"
// @Param request body ReconcileRequest true "状态"
// @Success 200 {object} Response{data=ReconcileResponse} "更新成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 404 {object} Response "分期不存在"
// @Router /api/v1/installments/{id} [put]
func (h *InstallmentHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req ReconcileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	in := service.ReconcileInput{InstallmentID: id, Status: models.PaymentStatus(req.Status)}
	if req.PayDate != nil && *req.PayDate != "" {
		d, err := models.ParseDate(*req.PayDate)
		if err != nil {
			BadRequest(c, "支付日期格式错误，应为: 2006-01-02")
			return
		}
		in.PayDate = &d
	}

	inst, txn, err := h.reconciler.Reconcile(c.Request.Context(), middleware.GetCurrentHomeID(c), in)
	if err != nil {
		respondError(c, err, "更新分期失败")
		return
	}
	SuccessWithMessage(c, "更新成功", ReconcileResponse{Installment: inst, Transaction: txn})
}
