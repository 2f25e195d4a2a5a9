package api

import (
	"homeledger/middleware"
	"homeledger/service"

	"github.com/gin-gonic/gin"
)

// StatisticsHandler 统计处理器
type StatisticsHandler struct {
	stats *service.StatisticsService
}

func NewStatisticsHandler(stats *service.StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{stats: stats}
}

// Monthly 月度概览
// @Summary 月度概览
// @Description 本月与上月收支对比及增长率、全年 12 个月图表、全部未付分期合计
// @Tags 统计
// @Produce json
// @Security BearerAuth
// @Param X-Home-ID header int true "家庭 ID"
// @Param year query int false "年，默认今年"
// @Param month query int false "月，默认本月"
// @Success 200 {object} Response{data=service.YearlyStats} "获取成功"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/statistics/monthly [get]
func (h *StatisticsHandler) Monthly(c *gin.Context) {
	year, month, ok := parsePeriod(c)
	if !ok {
		return
	}
	stats, err := h.stats.YearlyStats(c.Request.Context(), middleware.GetCurrentHomeID(c), year, month)
	if err != nil {
		respondError(c, err, "统计失败")
		return
	}
	Success(c, stats)
}

// Statistics 统计页
// @Summary 统计页数据
// @Description 某月最大支出、按成员和类别的支出、按类别的收入以及收支汇总
// @Tags 统计
// @Produce json
// @Security BearerAuth
// @Param X-Home-ID header int true "家庭 ID"
// @Param year query int false "年，默认今年"
// @Param month query int false "月，默认本月"
// @Success 200 {object} Response{data=service.Statistics} "获取成功"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/statistics [get]
func (h *StatisticsHandler) Statistics(c *gin.Context) {
	year, month, ok := parsePeriod(c)
	if !ok {
		return
	}
	stats, err := h.stats.Statistics(c.Request.Context(), middleware.GetCurrentHomeID(c), year, month)
	if err != nil {
		respondError(c, err, "统计失败")
		return
	}
	Success(c, stats)
}
