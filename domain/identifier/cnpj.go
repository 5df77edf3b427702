package identifier

import (
	"seedwork/domain/vo"
	"seedwork/errors"
	"seedwork/result"
)

var (
	cnpjFirstWeights  = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjSecondWeights = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

type cnpjProps struct {
	Value string
}

// CNPJ 巴西企业税号（Cadastro Nacional da Pessoa Jurídica）值对象
//
// 14 位数字，最后两位为模11校验位。
type CNPJ struct {
	vo.ValueObject[cnpjProps]
}

// NewCNPJ 创建 CNPJ
//
// 输入先剥离所有非数字字符（接受带掩码的 NN.NNN.NNN/NNNN-NN 形式）。
func NewCNPJ(input string) result.Result[CNPJ] {
	base := vo.New(cnpjProps{Value: digitsOnly(input)}, validateCNPJ)
	if base.IsFailure() {
		return result.Fail[CNPJ](base.Err())
	}
	return result.Ok(CNPJ{base.Value()})
}

func validateCNPJ(p cnpjProps) error {
	if len(p.Value) != 14 {
		return errors.NewValidationError("cnpj", "CNPJ必须包含14位数字")
	}
	if allSameDigits(p.Value) {
		return errors.NewValidationError("cnpj", "CNPJ不能由相同数字组成")
	}
	if mod11CheckDigit(p.Value, cnpjFirstWeights) != int(p.Value[12]-'0') {
		return errors.NewValidationError("cnpj", "CNPJ校验位不正确")
	}
	if mod11CheckDigit(p.Value, cnpjSecondWeights) != int(p.Value[13]-'0') {
		return errors.NewValidationError("cnpj", "CNPJ校验位不正确")
	}
	return nil
}

// Value 获取纯数字形式
func (c CNPJ) Value() string {
	return c.Props().Value
}

// String 实现 fmt.Stringer
func (c CNPJ) String() string {
	return c.Format()
}

// Format 格式化为 NN.NNN.NNN/NNNN-NN
func (c CNPJ) Format() string {
	v := c.Value()
	return v[:2] + "." + v[2:5] + "." + v[5:8] + "/" + v[8:12] + "-" + v[12:]
}

// Mask 脱敏展示：**.NNN.NNN/NNNN-**
func (c CNPJ) Mask() string {
	v := c.Value()
	return "**." + v[2:5] + "." + v[5:8] + "/" + v[8:12] + "-**"
}
