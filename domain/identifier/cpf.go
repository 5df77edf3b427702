package identifier

import (
	"seedwork/domain/vo"
	"seedwork/errors"
	"seedwork/result"
)

var (
	cpfFirstWeights  = []int{10, 9, 8, 7, 6, 5, 4, 3, 2}
	cpfSecondWeights = []int{11, 10, 9, 8, 7, 6, 5, 4, 3, 2}
)

type cpfProps struct {
	Value string
}

// CPF 巴西个人税号（Cadastro de Pessoas Físicas）值对象
//
// 11 位数字，最后两位为模11校验位。
type CPF struct {
	vo.ValueObject[cpfProps]
}

// NewCPF 创建 CPF
//
// 输入先剥离所有非数字字符（接受带掩码的 NNN.NNN.NNN-NN 形式），
// 再做长度、重复数字与双校验位校验。
func NewCPF(input string) result.Result[CPF] {
	base := vo.New(cpfProps{Value: digitsOnly(input)}, validateCPF)
	if base.IsFailure() {
		return result.Fail[CPF](base.Err())
	}
	return result.Ok(CPF{base.Value()})
}

func validateCPF(p cpfProps) error {
	if len(p.Value) != 11 {
		return errors.NewValidationError("cpf", "CPF必须包含11位数字")
	}
	// 全部相同的数字能通过校验位算术，必须显式拒绝
	if allSameDigits(p.Value) {
		return errors.NewValidationError("cpf", "CPF不能由相同数字组成")
	}
	if mod11CheckDigit(p.Value, cpfFirstWeights) != int(p.Value[9]-'0') {
		return errors.NewValidationError("cpf", "CPF校验位不正确")
	}
	if mod11CheckDigit(p.Value, cpfSecondWeights) != int(p.Value[10]-'0') {
		return errors.NewValidationError("cpf", "CPF校验位不正确")
	}
	return nil
}

// Value 获取纯数字形式
func (c CPF) Value() string {
	return c.Props().Value
}

// String 实现 fmt.Stringer
func (c CPF) String() string {
	return c.Format()
}

// Format 格式化为 NNN.NNN.NNN-NN
func (c CPF) Format() string {
	v := c.Value()
	return v[:3] + "." + v[3:6] + "." + v[6:9] + "-" + v[9:]
}

// Mask 脱敏展示：***.NNN.NNN-**
func (c CPF) Mask() string {
	v := c.Value()
	return "***." + v[3:6] + "." + v[6:9] + "-**"
}
