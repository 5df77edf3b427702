package identifier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seedwork/domain/identifier"
	"seedwork/errors"
)

func TestNewCEP(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"纯数字", "01310100", "01310100", false},
		{"带掩码", "01310-100", "01310100", false},
		{"带空白", " 01310-100 ", "01310100", false},
		{"空字符串", "", "", true},
		{"长度不足", "0131010", "", true},
		{"长度超出", "013101000", "", true},
		{"纯字母", "abcdefgh", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := identifier.NewCEP(tt.input)
			if tt.wantErr {
				require.True(t, r.IsFailure())
				assert.True(t, errors.IsCode(r.Err(), errors.ErrCodeValidation))
			} else {
				require.True(t, r.IsSuccess())
				assert.Equal(t, tt.want, r.Value().Value())
			}
		})
	}
}

func TestCEP_Format(t *testing.T) {
	cep := identifier.NewCEP("01310100").Value()

	assert.Equal(t, "01310-100", cep.Format())
	assert.Equal(t, "01310-100", cep.String())
}
