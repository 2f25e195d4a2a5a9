package middleware

import (
	"errors"
	"net/http"
	"strconv"

	"homeledger/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HomeHeader 请求所属家庭
const HomeHeader = "X-Home-ID"

// HomeScope 解析 X-Home-ID，并确认当前用户是该家庭成员
// 通过后在上下文写入 homeID、memberID，需在 JWTAuth 之后使用
func HomeScope(checker repository.MembershipChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(HomeHeader)
		homeID, err := strconv.ParseUint(raw, 10, 64)
		if raw == "" || err != nil || homeID == 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"code":    http.StatusBadRequest,
				"message": "缺少或无效的 " + HomeHeader,
			})
			return
		}

		member, err := checker.MemberOf(c.Request.Context(), GetCurrentUserID(c), uint(homeID))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
					"code":    http.StatusForbidden,
					"message": "不是该家庭的成员",
				})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"code":    http.StatusInternalServerError,
				"message": "校验家庭成员失败",
			})
			return
		}

		c.Set("homeID", member.HomeID)
		c.Set("memberID", member.ID)
		c.Next()
	}
}

// GetCurrentHomeID 当前请求的家庭 ID
func GetCurrentHomeID(c *gin.Context) uint {
	return c.GetUint("homeID")
}

// GetCurrentMemberID 当前用户在该家庭中的成员 ID
func GetCurrentMemberID(c *gin.Context) uint {
	return c.GetUint("memberID")
}
