package identifier

import (
	"strings"
	"unicode"

	"seedwork/domain/vo"
	"seedwork/errors"
	"seedwork/result"
)

const (
	passwordMinLength = 6
	passwordMaxLength = 100
)

type passwordProps struct {
	Value string
}

// Password 密码值对象
//
// 强度分析是纯领域策略：只产出分数与文字原因，
// 不约定任何展示格式，格式化交给表示层协作方。
type Password struct {
	vo.ValueObject[passwordProps]
}

// PasswordStrength 密码强度评估结果
type PasswordStrength struct {
	// Score 强度分数，0（最弱）到 4（最强）
	Score int

	// Feedback 未满足的强度建议（按检查顺序）
	Feedback []string
}

// NewPassword 创建密码
func NewPassword(input string) result.Result[Password] {
	base := vo.New(passwordProps{Value: input}, validatePassword)
	if base.IsFailure() {
		return result.Fail[Password](base.Err())
	}
	return result.Ok(Password{base.Value()})
}

func validatePassword(p passwordProps) error {
	if strings.TrimSpace(p.Value) == "" {
		return errors.NewValidationError("password", "密码不能为空")
	}
	if len(p.Value) < passwordMinLength {
		return errors.NewValidationErrorf("password", "密码长度不能少于%d个字符", passwordMinLength)
	}
	if len(p.Value) > passwordMaxLength {
		return errors.NewValidationErrorf("password", "密码长度不能超过%d个字符", passwordMaxLength)
	}
	return nil
}

// Value 获取明文密码
func (p Password) Value() string {
	return p.Props().Value
}

// String 实现 fmt.Stringer，始终返回遮蔽形式，避免日志泄露
func (p Password) String() string {
	return "********"
}

// Strength 评估密码强度
//
// 四项检查各计一分：长度不少于8、混合大小写、包含数字、包含符号。
func (p Password) Strength() PasswordStrength {
	var (
		hasUpper, hasLower, hasDigit, hasSymbol bool
	)
	for _, r := range p.Value() {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSymbol = true
		}
	}

	strength := PasswordStrength{}
	if len(p.Value()) >= 8 {
		strength.Score++
	} else {
		strength.Feedback = append(strength.Feedback, "密码长度建议至少8个字符")
	}
	if hasUpper && hasLower {
		strength.Score++
	} else {
		strength.Feedback = append(strength.Feedback, "建议混合使用大小写字母")
	}
	if hasDigit {
		strength.Score++
	} else {
		strength.Feedback = append(strength.Feedback, "建议包含数字")
	}
	if hasSymbol {
		strength.Score++
	} else {
		strength.Feedback = append(strength.Feedback, "建议包含特殊字符")
	}
	return strength
}
