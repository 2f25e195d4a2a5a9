package api

import (
	"errors"

	"homeledger/middleware"
	"homeledger/models"
	"homeledger/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HomeHandler 家庭与成员
type HomeHandler struct {
	members *repository.MembershipStore
	users   *repository.UserStore
}

func NewHomeHandler(members *repository.MembershipStore, users *repository.UserStore) *HomeHandler {
	return &HomeHandler{members: members, users: users}
}

type CreateHomeRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100" example:"我家"`
	Description string `json:"description" binding:"max=255"`
}

type AddMemberRequest struct {
	Username string `json:"username" binding:"required" example:"bob"`
	Role     string `json:"role" binding:"omitempty,oneof=admin member" example:"member"`
}

// InviteRequest 邀请成员，login 为用户名或邮箱
type InviteRequest struct {
	Login string `json:"login" binding:"required" example:"bob@example.com"`
	Role  string `json:"role" binding:"omitempty,oneof=admin member" example:"member"`
}

// MemberResponse 成员信息
type MemberResponse struct {
	ID       uint   `json:"id"`
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// ListHomes 当前用户所属的家庭
// @Summary 我的家庭
// @Tags 家庭
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]models.Home} "获取成功"
// @Router /api/v1/homes [get]
func (h *HomeHandler) ListHomes(c *gin.Context) {
	homes, err := h.members.HomesOf(c.Request.Context(), middleware.GetCurrentUserID(c))
	if err != nil {
		internalError(c, err, "查询失败")
		return
	}
	Success(c, homes)
}

// CreateHome 创建家庭
// @Summary 创建家庭
// @Description 创建者自动成为该家庭的管理员
// @Tags 家庭
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateHomeRequest true "家庭信息"
// @Success 200 {object} Response{data=models.Home} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/homes [post]
func (h *HomeHandler) CreateHome(c *gin.Context) {
	var req CreateHomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}
	home, err := h.members.CreateHome(c.Request.Context(), middleware.GetCurrentUserID(c), req.Name, req.Description)
	if err != nil {
		internalError(c, err, "创建家庭失败")
		return
	}
	SuccessWithMessage(c, "创建成功", home)
}

// ListMembers 家庭成员
// @Summary 家庭成员
// @Tags 家庭
// @Produce json
// @Security BearerAuth
// @Param X-Home-ID header int true "家庭 ID"
// @Success 200 {object} Response{data=[]MemberResponse} "获取成功"
// @Router /api/v1/members [get]
func (h *HomeHandler) ListMembers(c *gin.Context) {
	members, err := h.members.MembersOf(c.Request.Context(), middleware.GetCurrentHomeID(c))
	if err != nil {
		internalError(c, err, "查询失败")
		return
	}
	list := make([]MemberResponse, 0, len(members))
	for _, m := range members {
		item := MemberResponse{ID: m.ID, UserID: m.UserID, Role: m.Role}
		if m.User != nil {
			item.Username = m.User.Username
			item.Name = m.User.DisplayName()
		}
		list = append(list, item)
	}
	Success(c, list)
}

// AddMember 邀请用户加入家庭
// @Summary 添加成员
// @Description 仅家庭管理员可操作；用户已是成员时返回现有记录
// @Tags 家庭
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-Home-ID header int true "家庭 ID"
// @Param request body AddMemberRequest true "成员信息"
// @Success 200 {object} Response{data=models.Member} "添加成功"
// @Failure 403 {object} Response "不是家庭管理员"
// @Failure 404 {object} Response "用户不存在"
// @Router /api/v1/members [post]
func (h *HomeHandler) AddMember(c *gin.Context) {
	if !h.requireAdmin(c) {
		return
	}
	var req AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}
	if req.Role == "" {
		req.Role = models.MemberRoleMember
	}

	user, err := h.users.ByUsername(c.Request.Context(), req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "用户不存在")
			return
		}
		internalError(c, err, "查询用户失败")
		return
	}
	member, err := h.members.AddMember(c.Request.Context(), user.ID, middleware.GetCurrentHomeID(c), req.Role)
	if err != nil {
		internalError(c, err, "添加成员失败")
		return
	}
	SuccessWithMessage(c, "添加成功", member)
}

// RemoveMember 移除成员
// @Summary 移除成员
// @Description 仅家庭管理员可操作；成员的账目随之不再计入家庭
// @Tags 家庭
// @Produce json
// @Security BearerAuth
// @Param X-Home-ID header int true "家庭 ID"
// @Param id path int true "成员 ID"
// @Success 200 {object} Response "移除成功"
// @Failure 403 {object} Response "不是家庭管理员"
// @Failure 404 {object} Response "成员不存在"
// @Router /api/v1/members/{id} [delete]
func (h *HomeHandler) RemoveMember(c *gin.Context) {
	if !h.requireAdmin(c) {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if id == middleware.GetCurrentMemberID(c) {
		BadRequest(c, "不能移除自己")
		return
	}
	if err := h.members.RemoveMember(c.Request.Context(), middleware.GetCurrentHomeID(c), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "成员不存在")
			return
		}
		internalError(c, err, "移除成员失败")
		return
	}
	SuccessWithMessage(c, "移除成功", nil)
}

// Invite 邀请用户加入当前家庭
// @Summary 邀请成员
// @Description 仅家庭管理员可操作；被邀请人接受后才成为成员
// @Tags 家庭
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-Home-ID header int true "家庭 ID"
// @Param request body InviteRequest true "被邀请人"
// @Success 200 {object} Response{data=models.Invite} "邀请成功"
// @Failure 403 {object} Response "不是家庭管理员"
// @Failure 404 {object} Response "用户不存在"
// @Failure 409 {object} Response "已是成员或已被邀请"
// @Router /api/v1/members/invite [post]
func (h *HomeHandler) Invite(c *gin.Context) {
	if !h.requireAdmin(c) {
		return
	}
	var req InviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}
	if req.Role == "" {
		req.Role = models.MemberRoleMember
	}

	user, err := h.users.ByLogin(c.Request.Context(), req.Login)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "用户不存在")
			return
		}
		internalError(c, err, "查询用户失败")
		return
	}
	inv, err := h.members.Invite(c.Request.Context(), middleware.GetCurrentHomeID(c), user.ID, middleware.GetCurrentUserID(c), req.Role)
	switch {
	case errors.Is(err, repository.ErrAlreadyMember), errors.Is(err, repository.ErrAlreadyInvited):
		Conflict(c, err.Error())
	case err != nil:
		internalError(c, err, "邀请失败")
	default:
		middleware.RequestLog(c).Info("发出邀请", "invite_id", inv.ID, "home_id", inv.HomeID, "user_id", inv.UserID)
		SuccessWithMessage(c, "邀请成功", inv)
	}
}

// ListInvites 当前用户收到的邀请
// @Summary 我的邀请
// @Tags 家庭
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]models.Invite} "获取成功"
// @Router /api/v1/invites [get]
func (h *HomeHandler) ListInvites(c *gin.Context) {
	invites, err := h.members.InvitesOf(c.Request.Context(), middleware.GetCurrentUserID(c))
	if err != nil {
		internalError(c, err, "查询失败")
		return
	}
	Success(c, invites)
}

// AcceptInvite 接受邀请
// @Summary 接受邀请
// @Tags 家庭
// @Produce json
// @Security BearerAuth
// @Param id path int true "邀请 ID"
// @Success 200 {object} Response{data=models.Member} "已加入家庭"
// @Failure 404 {object} Response "邀请不存在"
// @Router /api/v1/invites/{id}/accept [post]
func (h *HomeHandler) AcceptInvite(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	member, err := h.members.AcceptInvite(c.Request.Context(), middleware.GetCurrentUserID(c), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "邀请不存在")
			return
		}
		internalError(c, err, "接受邀请失败")
		return
	}
	SuccessWithMessage(c, "已加入家庭", member)
}

// DeclineInvite 拒绝邀请
// @Summary 拒绝邀请
// @Tags 家庭
// @Produce json
// @Security BearerAuth
// @Param id path int true "邀请 ID"
// @Success 200 {object} Response "已拒绝"
// @Failure 404 {object} Response "邀请不存在"
// @Router /api/v1/invites/{id} [delete]
func (h *HomeHandler) DeclineInvite(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.members.DeclineInvite(c.Request.Context(), middleware.GetCurrentUserID(c), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "邀请不存在")
			return
		}
		internalError(c, err, "拒绝邀请失败")
		return
	}
	SuccessWithMessage(c, "已拒绝", nil)
}

func (h *HomeHandler) requireAdmin(c *gin.Context) bool {
	m, err := h.members.MemberOf(c.Request.Context(), middleware.GetCurrentUserID(c), middleware.GetCurrentHomeID(c))
	if err != nil || m.Role != models.MemberRoleAdmin {
		Forbidden(c, "仅家庭管理员可操作")
		return false
	}
	return true
}
