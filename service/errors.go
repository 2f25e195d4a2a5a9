package service

import (
	"errors"
	"fmt"

	"homeledger/repository"

	"gorm.io/gorm"
)

var (
	// ErrValidation 输入不合法
	ErrValidation = errors.New("validation failed")
	// ErrNotFound 记录不存在或不属于当前家庭
	ErrNotFound = errors.New("not found")
)

// ValidationError 校验失败，Field 为出错字段
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func invalid(field, format string, args ...interface{}) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// NotFoundError 记录不存在
type NotFoundError struct {
	Resource string
	ID       uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d 不存在", e.Resource, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// TenantMismatchError 记录属于其他家庭
// 对调用方与 NotFoundError 完全一致，避免泄露其他家庭的数据是否存在
type TenantMismatchError struct {
	Resource string
	ID       uint
}

func (e *TenantMismatchError) Error() string {
	return (&NotFoundError{Resource: e.Resource, ID: e.ID}).Error()
}

func (e *TenantMismatchError) Is(target error) bool { return target == ErrNotFound }

// lookupError 将仓储层的查找错误转换为业务错误
func lookupError(err error, resource string, id uint) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrOutOfScope):
		return &TenantMismatchError{Resource: resource, ID: id}
	case errors.Is(err, gorm.ErrRecordNotFound):
		return &NotFoundError{Resource: resource, ID: id}
	default:
		return err
	}
}
