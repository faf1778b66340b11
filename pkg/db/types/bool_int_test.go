package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoolIntValue(t *testing.T) {
	v, err := BoolInt(true).Value()
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)

	v, err = BoolInt(false).Value()
	require.NoError(t, err)
	assert.Equal(t, int64(0), v)
}

func TestBoolIntScan(t *testing.T) {
	cases := []struct {
		src  any
		want bool
	}{
		{int64(1), true},
		{int64(0), false},
		{int64(7), true},
		{nil, false},
		{true, true},
		{[]byte("1"), true},
		{[]byte("0"), false},
		{"1", true},
		{"0", false},
	}
	for _, tc := range cases {
		var b BoolInt
		require.NoError(t, b.Scan(tc.src))
		assert.Equal(t, tc.want, b.Bool(), "scanning %v (%T)", tc.src, tc.src)
	}

	var b BoolInt
	assert.Error(t, b.Scan(3.14))
}
