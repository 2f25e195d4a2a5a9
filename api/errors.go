package api

import (
	"errors"
	"strconv"
	"time"

	"homeledger/config"
	"homeledger/middleware"
	"homeledger/service"

	"github.com/gin-gonic/gin"
)

// respondError 按错误类型返回：校验失败 400，不存在 404，其余 500
func respondError(c *gin.Context, err error, fallback string) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		BadRequest(c, verr.Error())
	case errors.Is(err, service.ErrNotFound):
		NotFound(c, err.Error())
	default:
		internalError(c, err, fallback)
	}
}

// internalError 记录错误详情，release 模式下只向客户端返回 fallback
func internalError(c *gin.Context, err error, fallback string) {
	middleware.RequestLog(c).Error(fallback, "error", err, "path", c.FullPath())
	InternalError(c, config.SafeErrorMessage(err, fallback))
}

// parseID 解析路径参数中的 ID
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		BadRequest(c, "无效的 "+name)
		return 0, false
	}
	return uint(id), true
}

// parsePeriod 解析 year、month 查询参数，缺省为当前年月
func parsePeriod(c *gin.Context) (int, int, bool) {
	now := time.Now()
	year, month := now.Year(), int(now.Month())

	if s := c.Query("year"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			BadRequest(c, "year 必须为数字")
			return 0, 0, false
		}
		year = v
	}
	if s := c.Query("month"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			BadRequest(c, "month 必须为数字")
			return 0, 0, false
		}
		month = v
	}
	return year, month, true
}
