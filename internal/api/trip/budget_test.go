package trip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseINR(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "plain number", input: "25000", want: 25000},
		{name: "rupee symbol and commas", input: "₹25,000", want: 25000},
		{name: "indian grouping", input: "₹12,34,567", want: 1234567},
		{name: "surrounding spaces", input: "  15 000 ", want: 15000},
		{name: "no digits", input: "about five thousand", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseINR(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrBadBudget)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseINROrDefault(t *testing.T) {
	assert.Equal(t, 20000, ParseINROrDefault("20000"))
	assert.Equal(t, defaultBudget, ParseINROrDefault("not a number"))
	assert.Equal(t, defaultBudget, ParseINROrDefault("0"))
}

func TestFormatINR(t *testing.T) {
	tests := []struct {
		amount int
		want   string
	}{
		{0, "₹0"},
		{500, "₹500"},
		{1500, "₹1,500"},
		{15000, "₹15,000"},
		{100000, "₹1,00,000"},
		{1234567, "₹12,34,567"},
		{-2500, "₹-2,500"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatINR(tt.amount))
	}
}

func TestAllocateBudget(t *testing.T) {
	alloc := AllocateBudget(20000, 4)

	assert.Equal(t, 8000, alloc.Accommodation)
	assert.Equal(t, 5000, alloc.Food)
	assert.Equal(t, 4000, alloc.Transport)
	assert.Equal(t, 2000, alloc.Activities)
	assert.Equal(t, 1000, alloc.Shopping)
	assert.Equal(t, 5000, alloc.DailyBudget)
	assert.Equal(t, 20000, alloc.Total)
}

func TestAllocateBudgetCategoriesSumToTotal(t *testing.T) {
	// Rounding remainders must always land in a category, never vanish.
	for _, total := range []int{5000, 5001, 9999, 12345, 15000, 99999, 1234567} {
		alloc := AllocateBudget(total, 3)
		sum := alloc.Accommodation + alloc.Food + alloc.Transport + alloc.Activities + alloc.Shopping
		assert.Equal(t, total, sum, "total %d", total)
		assert.GreaterOrEqual(t, alloc.Shopping, 0, "total %d", total)
	}
}

func TestAllocateBudgetClampsDays(t *testing.T) {
	alloc := AllocateBudget(9000, 0)
	assert.Equal(t, 9000, alloc.DailyBudget)
}

func TestBudgetCategory(t *testing.T) {
	assert.Equal(t, "Budget-Friendly", BudgetCategory(AllocateBudget(15000, 3)))
	assert.Equal(t, "Mid-Range", BudgetCategory(AllocateBudget(50000, 3)))
}

func TestBreakdownFromAllocation(t *testing.T) {
	breakdown := BreakdownFromAllocation(AllocateBudget(20000, 4))

	assert.Equal(t, "₹8,000", breakdown.Accommodation)
	assert.Equal(t, "₹5,000", breakdown.Food)
	assert.Equal(t, "₹4,000", breakdown.Transportation)
	assert.Equal(t, "₹2,000", breakdown.Activities)
	assert.Equal(t, "₹1,000", breakdown.Shopping)
	assert.Equal(t, "₹500", breakdown.Miscellaneous)
	assert.Equal(t, "₹20,000", breakdown.Total)
	assert.Equal(t, "₹5,000", breakdown.DailyAverage)
}
