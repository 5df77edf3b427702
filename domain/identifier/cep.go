package identifier

import (
	"seedwork/domain/vo"
	"seedwork/errors"
	"seedwork/result"
)

type cepProps struct {
	Value string
}

// CEP 巴西邮政编码（Código de Endereçamento Postal）值对象
type CEP struct {
	vo.ValueObject[cepProps]
}

// NewCEP 创建 CEP
//
// 输入先剥离所有非数字字符（接受 NNNNN-NNN 形式），必须恰好8位数字。
func NewCEP(input string) result.Result[CEP] {
	base := vo.New(cepProps{Value: digitsOnly(input)}, validateCEP)
	if base.IsFailure() {
		return result.Fail[CEP](base.Err())
	}
	return result.Ok(CEP{base.Value()})
}

func validateCEP(p cepProps) error {
	if len(p.Value) != 8 {
		return errors.NewValidationError("cep", "CEP必须包含8位数字")
	}
	return nil
}

// Value 获取纯数字形式
func (c CEP) Value() string {
	return c.Props().Value
}

// String 实现 fmt.Stringer
func (c CEP) String() string {
	return c.Format()
}

// Format 格式化为 NNNNN-NNN
func (c CEP) Format() string {
	v := c.Value()
	return v[:5] + "-" + v[5:]
}
