package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumber(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"50000", "50000.0000"},
		{"12.34567", "12.3457"},
		{"0.00004", "0.0000"},
		{"-1.23456", "-1.2346"},
		{"8271.41795", "8271.4179"},
		{"99740.73645", "99740.7364"},
		{"-0.00001", "-0.0000"},
		{" 7.5 ", "7.5000"},
		{"1e3", "1000.0000"},
		{"abc", "abc"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Number(tc.in), "Number(%q)", tc.in)
	}
}

func TestNumberIdempotent(t *testing.T) {
	for _, in := range []string{"50000", "12.34567", "0.1", "-3.99999", "123456789.123456789"} {
		once := Number(in)
		assert.Equal(t, once, Number(once), "input %q", in)
	}
}

func TestPnL(t *testing.T) {
	assert.Equal(t, "12.3457 (1.2000%)", PnL("12.34567", "1.2"))
	assert.Equal(t, "1000.0000 (0.0200%)", PnL("1000", "0.02"))
	assert.Equal(t, "-5.1000 (-0.0100%)", PnL("-5.1", "-0.01"))
	assert.Equal(t, "8271.4179 (0.5000%)", PnL("8271.41795", "0.5"))
	assert.Equal(t, "99740.7364 (-0.0000%)", PnL("99740.73645", "-0.00001"))
}

func TestPnLFallback(t *testing.T) {
	assert.Equal(t, "bad (1.2%)", PnL("bad", "1.2"))
	assert.Equal(t, "12.34567 (x%)", PnL("12.34567", "x"))
	assert.Equal(t, " (%)", PnL("", ""))
}

func TestFloat(t *testing.T) {
	f, ok := Float("1000")
	assert.True(t, ok)
	assert.Equal(t, 1000.0, f)

	f, ok = Float("")
	assert.True(t, ok)
	assert.Zero(t, f)

	_, ok = Float("n/a")
	assert.False(t, ok)
}
