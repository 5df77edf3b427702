package identifier

import (
	"regexp"
	"strings"

	"seedwork/domain/vo"
	"seedwork/errors"
	"seedwork/result"
)

// 结构要求：local@domain，不含空白，域名部分必须带点
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type emailProps struct {
	Value string
}

// Email 邮箱地址值对象
type Email struct {
	vo.ValueObject[emailProps]
}

// NewEmail 创建邮箱地址
//
// 输入先去除首尾空白并转为小写，再做结构校验。
func NewEmail(input string) result.Result[Email] {
	normalized := strings.ToLower(strings.TrimSpace(input))
	base := vo.New(emailProps{Value: normalized}, validateEmail)
	if base.IsFailure() {
		return result.Fail[Email](base.Err())
	}
	return result.Ok(Email{base.Value()})
}

func validateEmail(p emailProps) error {
	if p.Value == "" {
		return errors.NewValidationError("email", "邮箱不能为空")
	}
	if !emailRegex.MatchString(p.Value) {
		return errors.NewValidationError("email", "邮箱格式不正确: "+p.Value)
	}
	return nil
}

// Value 获取规范化后的邮箱地址
func (e Email) Value() string {
	return e.Props().Value
}

// String 实现 fmt.Stringer
func (e Email) String() string {
	return e.Value()
}

// LocalPart 获取 @ 之前的本地部分
func (e Email) LocalPart() string {
	at := strings.LastIndex(e.Value(), "@")
	return e.Value()[:at]
}

// Domain 获取 @ 之后的域名部分
func (e Email) Domain() string {
	at := strings.LastIndex(e.Value(), "@")
	return e.Value()[at+1:]
}

// Mask 脱敏展示
//
// 本地部分超过2个字符时保留首尾字符，否则全部遮蔽；域名永不遮蔽。
func (e Email) Mask() string {
	local := e.LocalPart()
	if len(local) > 2 {
		masked := local[:1] + strings.Repeat("*", len(local)-2) + local[len(local)-1:]
		return masked + "@" + e.Domain()
	}
	return strings.Repeat("*", len(local)) + "@" + e.Domain()
}
