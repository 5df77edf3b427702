package errors_test

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seedwork/errors"
)

func TestDomainError_Constructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *errors.DomainError
		code       errors.ErrorCode
		statusCode int
	}{
		{"实体未找到", errors.NewEntityNotFound("User", "abc"), errors.ErrCodeEntityNotFound, 404},
		{"实体无效", errors.NewInvalidEntity("名称不能为空"), errors.ErrCodeInvalidEntity, 400},
		{"业务规则违反", errors.NewBusinessRuleViolation("库存不足"), errors.ErrCodeBusinessRuleViolation, 422},
		{"并发冲突", errors.NewConcurrencyError("版本不匹配"), errors.ErrCodeConcurrency, 409},
		{"授权失败", errors.NewAuthorizationError("无权访问"), errors.ErrCodeAuthorization, 403},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code())
			assert.Equal(t, tt.statusCode, tt.err.StatusCode())
			assert.Contains(t, tt.err.Error(), string(tt.code))
		})
	}
}

func TestDomainError_WithCause(t *testing.T) {
	cause := stdErrors.New("connection refused")
	err := errors.NewConcurrencyError("写入失败").WithCause(cause)

	assert.Contains(t, err.Error(), "connection refused")
	assert.Same(t, cause, stdErrors.Unwrap(err))
	assert.True(t, stdErrors.Is(err, cause))
}

func TestDomainError_Is(t *testing.T) {
	a := errors.NewBusinessRuleViolation("规则A")
	b := errors.NewBusinessRuleViolation("规则B")
	c := errors.NewConcurrencyError("冲突")

	// 同代码等价，消息不参与比较
	assert.True(t, stdErrors.Is(a, b))
	assert.False(t, stdErrors.Is(a, c))
}

func TestIsCode(t *testing.T) {
	err := errors.NewEntityNotFound("Order", 42)

	assert.True(t, errors.IsCode(err, errors.ErrCodeEntityNotFound))
	assert.False(t, errors.IsCode(err, errors.ErrCodeConcurrency))
	assert.False(t, errors.IsCode(nil, errors.ErrCodeEntityNotFound))

	// 包装后仍可识别
	wrapped := fmt.Errorf("load failed: %w", err)
	assert.True(t, errors.IsCode(wrapped, errors.ErrCodeEntityNotFound))
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, errors.ErrCodeValidation,
		errors.GetCode(errors.NewValidationError("email", "格式不正确")))
	assert.Equal(t, errors.ErrorCode(""), errors.GetCode(stdErrors.New("plain")))
	assert.Equal(t, errors.ErrorCode(""), errors.GetCode(nil))
}

func TestGetStatusCode(t *testing.T) {
	assert.Equal(t, 404, errors.GetStatusCode(errors.NewEntityNotFound("User", 1)))
	assert.Equal(t, 422, errors.GetStatusCode(errors.NewBusinessRuleViolation("x")))
	// 非领域错误按内部错误处理
	assert.Equal(t, 500, errors.GetStatusCode(stdErrors.New("plain")))
	assert.Equal(t, 0, errors.GetStatusCode(nil))
}

func TestValidationError(t *testing.T) {
	err := errors.NewValidationError("email", "格式不正确")

	assert.Equal(t, "email", err.Field())
	assert.Equal(t, errors.ErrCodeValidation, err.Code())
	assert.Equal(t, 400, err.StatusCode())
	assert.Contains(t, err.Error(), "email")
	assert.Contains(t, err.Error(), "格式不正确")

	// field 可以为空
	bare := errors.NewValidationError("", "整体无效")
	assert.Equal(t, "", bare.Field())
	assert.Contains(t, bare.Error(), "整体无效")
}

func TestValidationErrorf(t *testing.T) {
	err := errors.NewValidationErrorf("age", "年龄必须不小于%d", 18)
	assert.Contains(t, err.Error(), "年龄必须不小于18")
}

func TestAggregateValidationError(t *testing.T) {
	e1 := errors.NewValidationError("name", "名称不能为空")
	e2 := errors.NewValidationError("email", "格式不正确")
	agg := errors.NewAggregateValidationError(e1, e2)

	require.Equal(t, 2, agg.Len())

	// 子错误保持加入顺序，且各自的代码与消息不被折叠
	errs := agg.Errors()
	require.Len(t, errs, 2)
	assert.Equal(t, "name", errs[0].Field())
	assert.Equal(t, "email", errs[1].Field())

	msg := agg.Error()
	assert.Contains(t, msg, "名称不能为空")
	assert.Contains(t, msg, "格式不正确")
	assert.Contains(t, msg, "; ")

	// errors.As 可遍历到子错误
	var ve *errors.ValidationError
	assert.True(t, stdErrors.As(agg, &ve))
}

func TestAggregateValidationError_ReturnsCopy(t *testing.T) {
	agg := errors.NewAggregateValidationError(
		errors.NewValidationError("a", "x"),
	)
	errs := agg.Errors()
	errs[0] = errors.NewValidationError("b", "y")

	assert.Equal(t, "a", agg.Errors()[0].Field())
}
