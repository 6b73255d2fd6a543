package dataset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		sub  float64
		want float64
	}{
		{
			name: "plain number passes through",
			v:    Number(3.5),
			sub:  0,
			want: 3.5,
		},
		{
			name: "zero is a valid number",
			v:    Number(0),
			sub:  99,
			want: 0,
		},
		{
			name: "negative number passes through",
			v:    Number(-12.25),
			sub:  0,
			want: -12.25,
		},
		{
			name: "NaN becomes substitute",
			v:    Number(math.NaN()),
			sub:  0,
			want: 0,
		},
		{
			name: "text becomes substitute",
			v:    Text("x"),
			sub:  0,
			want: 0,
		},
		{
			name: "missing becomes substitute",
			v:    Missing(),
			sub:  -1,
			want: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.v, tt.sub))
		})
	}
}

func TestValueOf(t *testing.T) {
	assert.Equal(t, KindNumber, ValueOf(3).Kind)
	assert.Equal(t, KindNumber, ValueOf(int64(7)).Kind)
	assert.Equal(t, KindNumber, ValueOf(2.5).Kind)
	assert.Equal(t, KindText, ValueOf("hello").Kind)
	assert.Equal(t, KindMissing, ValueOf(nil).Kind)

	f, ok := ValueOf(42).Float()
	assert.True(t, ok)
	assert.Equal(t, 42.0, f)
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "3.5", Number(3.5).String())
	assert.Equal(t, "NaN", Number(math.NaN()).String())
	assert.Equal(t, "hello", Text("hello").String())
	assert.Equal(t, "", Missing().String())
}

func TestFloatDistinguishesNaN(t *testing.T) {
	_, ok := Number(math.NaN()).Float()
	assert.False(t, ok)

	_, ok = Missing().Float()
	assert.False(t, ok)
}
