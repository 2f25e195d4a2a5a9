package api

import (
	"errors"

	"homeledger/repository"

	"github.com/gin-gonic/gin"
)

// CategoryHandler 类别（全局共享）
type CategoryHandler struct {
	dir *repository.CategoryDirectory
}

func NewCategoryHandler(dir *repository.CategoryDirectory) *CategoryHandler {
	return &CategoryHandler{dir: dir}
}

type CategoryCreateRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=50"`
	Color string `json:"color" binding:"omitempty,max=20"` // 颜色代码，如 #ef4444
}

// List 列出所有类别
// @Summary 类别列表
// @Tags 类别
// @Produce json
// @Security BearerAuth
// @Param X-Home-ID header int true "家庭 ID"
// @Success 200 {object} Response{data=[]models.Category} "获取成功"
// @Router /api/v1/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	list, err := h.dir.List(c.Request.Context())
	if err != nil {
		internalError(c, err, "查询失败")
		return
	}
	Success(c, list)
}

// Create 创建类别
// @Summary 创建类别
// @Description 名称唯一，排序值自动排在最后
// @Tags 类别
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-Home-ID header int true "家庭 ID"
// @Param request body CategoryCreateRequest true "类别信息"
// @Success 200 {object} Response{data=models.Category} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 409 {object} Response "类别名称已存在"
// @Router /api/v1/categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req CategoryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}
	cat, err := h.dir.Create(c.Request.Context(), req.Name, req.Color)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateName) {
			Conflict(c, "类别名称已存在")
			return
		}
		internalError(c, err, "创建失败")
		return
	}
	SuccessWithMessage(c, "创建成功", cat)
}
