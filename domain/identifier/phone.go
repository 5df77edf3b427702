package identifier

import (
	"seedwork/domain/vo"
	"seedwork/errors"
	"seedwork/result"
)

type phoneProps struct {
	Value string
}

// Phone 巴西电话号码值对象
//
// 10 位为固话（区号 + 8 位号码），11 位为手机（区号 + 9 位号码）。
type Phone struct {
	vo.ValueObject[phoneProps]
}

// NewPhone 创建电话号码
//
// 输入先剥离所有非数字字符（接受 (DD) NNNNN-NNNN 等形式）。
func NewPhone(input string) result.Result[Phone] {
	base := vo.New(phoneProps{Value: digitsOnly(input)}, validatePhone)
	if base.IsFailure() {
		return result.Fail[Phone](base.Err())
	}
	return result.Ok(Phone{base.Value()})
}

func validatePhone(p phoneProps) error {
	if len(p.Value) != 10 && len(p.Value) != 11 {
		return errors.NewValidationError("phone", "电话号码必须包含10位或11位数字")
	}
	return nil
}

// Value 获取纯数字形式
func (p Phone) Value() string {
	return p.Props().Value
}

// String 实现 fmt.Stringer
func (p Phone) String() string {
	return p.Format()
}

// AreaCode 获取两位区号（DDD）
func (p Phone) AreaCode() string {
	return p.Value()[:2]
}

// Number 获取区号之后的本地号码
func (p Phone) Number() string {
	return p.Value()[2:]
}

// IsMobile 是否为11位手机号
func (p Phone) IsMobile() bool {
	return len(p.Value()) == 11
}

// IsWhatsApp 是否可用于 WhatsApp（仅11位手机号）
func (p Phone) IsWhatsApp() bool {
	return p.IsMobile()
}

// Format 格式化为 (DD) NNNN-NNNN 或 (DD) NNNNN-NNNN
func (p Phone) Format() string {
	v := p.Value()
	n := v[2:]
	split := len(n) - 4
	return "(" + v[:2] + ") " + n[:split] + "-" + n[split:]
}
