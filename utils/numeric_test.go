package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestToAmount(t *testing.T) {
	assert.True(t, ToAmount("$1,234.56").Equal(decimal.RequireFromString("1234.56")))
	assert.True(t, ToAmount("8,938.00").Equal(decimal.RequireFromString("8938.00")))
	assert.True(t, ToAmount("-$52.10").Equal(decimal.RequireFromString("-52.10")))
	assert.True(t, ToAmount("").IsZero())
	assert.True(t, ToAmount("abc").IsZero())
	assert.True(t, ToAmount("N/A").IsZero())
}

func TestToAmountTrimsWhitespace(t *testing.T) {
	assert.True(t, ToAmount("  $586.00  ").Equal(decimal.RequireFromString("586")))
}
