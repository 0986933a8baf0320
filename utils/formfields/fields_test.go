package formfields

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	fs, ok := Lookup("W-2")
	assert.True(t, ok)
	assert.Contains(t, fs.Income, "Wages, Tips and Other Compensation")
	assert.Contains(t, fs.Withholding, "Federal Income Tax Withheld")

	_, ok = Lookup("1040-X")
	assert.False(t, ok)
}

func TestFieldClassification(t *testing.T) {
	assert.True(t, IsIncomeField("1099-NEC", "Non-Employee Compensation"))
	assert.False(t, IsWithholdingField("1099-NEC", "Non-Employee Compensation"))
	assert.True(t, IsWithholdingField("1099-NEC", "Federal Income Tax Withheld"))

	// K-1 forms report no withholding lines.
	assert.False(t, IsWithholdingField("K-1 1065", "Tax Withheld"))

	// Unknown forms recognize nothing.
	assert.False(t, IsIncomeField("9999", "Interest"))
}

func TestSubjectToSETax(t *testing.T) {
	assert.True(t, SubjectToSETax("1099-NEC"))
	assert.True(t, SubjectToSETax("K-1 1065"))
	assert.False(t, SubjectToSETax("W-2"))
	assert.False(t, SubjectToSETax("1099-INT"))
}
