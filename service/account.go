package service

import (
	"context"
	"errors"
	"fmt"

	"homeledger/logger"
	"homeledger/models"
	"homeledger/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	// ErrInvalidCredentials 用户不存在或密码错误，两者对外不做区分
	ErrInvalidCredentials = errors.New("用户名或密码错误")
	// ErrAccountLocked 账号被锁定
	ErrAccountLocked = errors.New("账号已锁定")
	// ErrWrongPassword 修改密码时原密码不符
	ErrWrongPassword = errors.New("原密码错误")
)

// TokenIssuer 为登录用户签发访问令牌
type TokenIssuer func(userID uint, username string) (string, error)

// RegisterInput 注册信息
type RegisterInput struct {
	Username string
	Password string
	Name     string
	Email    string
}

// AccountService 账号注册、登录与改密
type AccountService struct {
	users *repository.UserStore
	issue TokenIssuer
	log   *logger.Logger
	cost  int
}

// NewAccountService 创建账号服务
func NewAccountService(users *repository.UserStore, issue TokenIssuer, log *logger.Logger) *AccountService {
	return &AccountService{users: users, issue: issue, log: log, cost: bcrypt.DefaultCost}
}

// Register 注册新用户，用户名重复时返回 repository.ErrUsernameTaken
func (s *AccountService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("密码加密失败: %w", err)
	}
	u := &models.User{
		Username: in.Username,
		Name:     in.Name,
		Email:    in.Email,
		Password: string(hash),
		Status:   models.UserStatusActive,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	s.log.Info("用户注册", "user_id", u.ID, "username", u.Username)
	return u, nil
}

// Login 校验登录名（用户名或邮箱）与密码，成功后签发 token
func (s *AccountService) Login(ctx context.Context, login, password string) (string, *models.User, error) {
	u, err := s.users.ByLogin(ctx, login)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s.log.Warn("登录失败", "login", login, "reason", "user not found")
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}
	if u.Status != models.UserStatusActive {
		s.log.Warn("登录失败", "user_id", u.ID, "reason", "locked")
		return "", nil, ErrAccountLocked
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		s.log.Warn("登录失败", "user_id", u.ID, "reason", "bad password")
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.issue(u.ID, u.Username)
	if err != nil {
		return "", nil, fmt.Errorf("签发 token 失败: %w", err)
	}
	s.log.Info("用户登录", "user_id", u.ID)
	return token, u, nil
}

// Profile 当前用户信息
func (s *AccountService) Profile(ctx context.Context, userID uint) (*models.User, error) {
	u, err := s.users.ByID(ctx, userID)
	if err != nil {
		return nil, lookupError(err, "user", userID)
	}
	return u, nil
}

// ChangePassword 校验原密码后写入新密码
func (s *AccountService) ChangePassword(ctx context.Context, userID uint, oldPassword, newPassword string) error {
	u, err := s.users.ByID(ctx, userID)
	if err != nil {
		return lookupError(err, "user", userID)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(oldPassword)) != nil {
		return ErrWrongPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.cost)
	if err != nil {
		return fmt.Errorf("密码加密失败: %w", err)
	}
	if err := s.users.SetPassword(ctx, userID, string(hash)); err != nil {
		return lookupError(err, "user", userID)
	}
	s.log.Info("密码已修改", "user_id", userID)
	return nil
}
