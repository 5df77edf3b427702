package vo_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seedwork/domain/vo"
	"seedwork/errors"
)

type moneyProps struct {
	Amount   int64
	Currency string
}

func validateMoney(p moneyProps) error {
	if p.Amount < 0 {
		return errors.NewValidationError("amount", "金额不能为负数")
	}
	if p.Currency == "" {
		return errors.NewValidationError("currency", "币种不能为空")
	}
	return nil
}

type Money struct {
	vo.ValueObject[moneyProps]
}

func newMoney(t *testing.T, amount int64, currency string) Money {
	t.Helper()
	r := vo.New(moneyProps{Amount: amount, Currency: currency}, validateMoney)
	require.True(t, r.IsSuccess())
	return Money{r.Value()}
}

func TestNew_ValidatorBlocksCreation(t *testing.T) {
	tests := []struct {
		name    string
		props   moneyProps
		wantErr bool
	}{
		{"合法属性", moneyProps{Amount: 100, Currency: "BRL"}, false},
		{"负数金额", moneyProps{Amount: -1, Currency: "BRL"}, true},
		{"空币种", moneyProps{Amount: 100, Currency: ""}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := vo.New(tt.props, validateMoney)
			if tt.wantErr {
				require.True(t, r.IsFailure())
				assert.True(t, errors.IsCode(r.Err(), errors.ErrCodeValidation))
			} else {
				require.True(t, r.IsSuccess())
				assert.Equal(t, tt.props, r.Value().Props())
			}
		})
	}
}

func TestNew_NilValidatorAlwaysPasses(t *testing.T) {
	r := vo.New(moneyProps{Amount: -999}, nil)
	assert.True(t, r.IsSuccess())
}

func TestMustNew(t *testing.T) {
	v := vo.MustNew(moneyProps{Amount: 1, Currency: "BRL"}, validateMoney)
	assert.Equal(t, int64(1), v.Props().Amount)

	require.Panics(t, func() {
		vo.MustNew(moneyProps{Amount: -1, Currency: "BRL"}, validateMoney)
	})
}

func TestEquals_StructuralEquality(t *testing.T) {
	a := newMoney(t, 100, "BRL")
	b := newMoney(t, 100, "BRL")
	c := newMoney(t, 200, "BRL")

	assert.True(t, a.Equals(b))
	assert.True(t, b.Equals(a))
	assert.False(t, a.Equals(c))
	assert.False(t, a.Equals(nil))
}

type tagProps struct {
	Name string
}

type Tag struct {
	vo.ValueObject[tagProps]
}

func TestEquals_DifferentPropsTypesNeverEqual(t *testing.T) {
	m := newMoney(t, 100, "BRL")
	tag := Tag{vo.MustNew(tagProps{Name: "x"}, nil)}

	assert.False(t, m.Equals(tag))
	assert.False(t, tag.Equals(m))
}

type periodProps struct {
	Start time.Time
	End   time.Time
}

func TestEquals_TimeComparedAsInstant(t *testing.T) {
	utc := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	sp, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	// 同一时刻、不同时区表示，按时刻相等
	a := vo.MustNew(periodProps{Start: utc, End: utc.Add(time.Hour)}, nil)
	b := vo.MustNew(periodProps{Start: utc.In(sp), End: utc.Add(time.Hour).In(sp)}, nil)
	assert.True(t, a.Equals(b))

	c := vo.MustNew(periodProps{Start: utc, End: utc.Add(2 * time.Hour)}, nil)
	assert.False(t, a.Equals(c))
}

type orderProps struct {
	Total Money
	Tags  []string
	Attrs map[string]int
}

func TestEquals_RecursiveComposite(t *testing.T) {
	base := func(t *testing.T) orderProps {
		return orderProps{
			Total: newMoney(t, 100, "BRL"),
			Tags:  []string{"a", "b"},
			Attrs: map[string]int{"x": 1, "y": 2},
		}
	}

	a := vo.MustNew(base(t), nil)
	b := vo.MustNew(base(t), nil)
	assert.True(t, a.Equals(b))

	t.Run("嵌套值对象叶子不同", func(t *testing.T) {
		p := base(t)
		p.Total = newMoney(t, 101, "BRL")
		assert.False(t, a.Equals(vo.MustNew(p, nil)))
	})

	t.Run("切片元素不同", func(t *testing.T) {
		p := base(t)
		p.Tags = []string{"a", "c"}
		assert.False(t, a.Equals(vo.MustNew(p, nil)))
	})

	t.Run("切片长度不同", func(t *testing.T) {
		p := base(t)
		p.Tags = []string{"a"}
		assert.False(t, a.Equals(vo.MustNew(p, nil)))
	})

	t.Run("映射值不同", func(t *testing.T) {
		p := base(t)
		p.Attrs = map[string]int{"x": 1, "y": 3}
		assert.False(t, a.Equals(vo.MustNew(p, nil)))
	})

	t.Run("映射键不同", func(t *testing.T) {
		p := base(t)
		p.Attrs = map[string]int{"x": 1, "z": 2}
		assert.False(t, a.Equals(vo.MustNew(p, nil)))
	})
}

func TestCopyWith(t *testing.T) {
	original := newMoney(t, 100, "BRL")

	r := original.CopyWith(func(p moneyProps) moneyProps {
		p.Amount = 200
		return p
	})
	require.True(t, r.IsSuccess())
	assert.Equal(t, int64(200), r.Value().Props().Amount)
	// 原实例不受影响
	assert.Equal(t, int64(100), original.Props().Amount)
}

func TestCopyWith_RevalidatesFullProps(t *testing.T) {
	original := newMoney(t, 100, "BRL")

	r := original.CopyWith(func(p moneyProps) moneyProps {
		p.Amount = -1
		return p
	})
	require.True(t, r.IsFailure())
	assert.True(t, errors.IsCode(r.Err(), errors.ErrCodeValidation))
	assert.Equal(t, int64(100), original.Props().Amount)
}
