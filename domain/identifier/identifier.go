// Package identifier 提供经过校验的标识类值对象
//
// 每个标识包装单个规范化后的字符串（CPF/CNPJ/CEP/电话为纯数字，
// 邮箱为去除首尾空白的小写形式）。规范化先于校验执行，
// 保证同一现实值的不同写法总是规范化为相同结果。
//
// 所有工厂对非法输入返回失败 Result，绝不 panic；
// panic 仅保留给构造期被误用的不可达状态（见 vo.MustNew）。
package identifier

import "strings"

// digitsOnly 去除所有非数字字符
func digitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// allSameDigits 判断字符串是否由同一个数字重复组成
func allSameDigits(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}

// mod11CheckDigit 按权重序列计算模11校验位
//
// 加权和对 11 取余，余数小于 2 时校验位为 0，否则为 11 减余数。
func mod11CheckDigit(digits string, weights []int) int {
	sum := 0
	for i, w := range weights {
		sum += int(digits[i]-'0') * w
	}
	rem := sum % 11
	if rem < 2 {
		return 0
	}
	return 11 - rem
}
