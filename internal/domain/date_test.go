package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_JSON(t *testing.T) {
	d, err := ParseDate("1990-01-01")
	require.NoError(t, err)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"1990-01-01"`, string(b))

	var back Date
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, d.Equal(back.Time))
}

func TestDate_UnmarshalTimestamp(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"1990-01-01T00:00:00Z"`), &d))
	assert.Equal(t, "1990-01-01", d.String())
}

func TestDate_ZeroIsNull(t *testing.T) {
	b, err := json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))

	v, err := Date{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestDate_Scan(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"time", time.Date(1985, 6, 15, 0, 0, 0, 0, time.UTC), "1985-06-15"},
		{"string", "1985-06-15", "1985-06-15"},
		{"bytes with time part", []byte("1985-06-15 00:00:00"), "1985-06-15"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			require.NoError(t, d.Scan(tt.value))
			assert.Equal(t, tt.want, d.String())
		})
	}

	var d Date
	assert.Error(t, d.Scan(42))
}

func TestIsValidGender(t *testing.T) {
	assert.True(t, IsValidGender("Male"))
	assert.True(t, IsValidGender("Female"))
	assert.True(t, IsValidGender("Other"))
	assert.False(t, IsValidGender("male"))
	assert.False(t, IsValidGender(""))
}
