package identifier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seedwork/domain/identifier"
	"seedwork/errors"
)

func TestNewPhone_Valid(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     string
		isMobile bool
	}{
		{"11位手机号", "11987654321", "11987654321", true},
		{"10位固话", "1123456789", "1123456789", false},
		{"带格式的手机号", "(11) 98765-4321", "11987654321", true},
		{"带格式的固话", "(11) 2345-6789", "1123456789", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := identifier.NewPhone(tt.input)
			require.True(t, r.IsSuccess())

			phone := r.Value()
			assert.Equal(t, tt.want, phone.Value())
			assert.Equal(t, tt.isMobile, phone.IsMobile())
			assert.Equal(t, tt.isMobile, phone.IsWhatsApp())
		})
	}
}

func TestNewPhone_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"空字符串", ""},
		{"长度不足", "119876543"},
		{"长度超出", "119876543210"},
		{"纯字母", "telefone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := identifier.NewPhone(tt.input)
			require.True(t, r.IsFailure())
			assert.True(t, errors.IsCode(r.Err(), errors.ErrCodeValidation))
		})
	}
}

func TestPhone_Parts(t *testing.T) {
	phone := identifier.NewPhone("11987654321").Value()

	assert.Equal(t, "11", phone.AreaCode())
	assert.Equal(t, "987654321", phone.Number())
}

func TestPhone_Format(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"手机号", "11987654321", "(11) 98765-4321"},
		{"固话", "1123456789", "(11) 2345-6789"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			phone := identifier.NewPhone(tt.input).Value()
			assert.Equal(t, tt.want, phone.Format())
			assert.Equal(t, tt.want, phone.String())
		})
	}
}
