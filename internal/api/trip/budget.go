package trip

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/planora-ai/planora-api/internal/types"
)

// defaultBudget is assumed when a budget string cannot be parsed,
// sized for a short local trip.
const defaultBudget = 15000

// ErrBadBudget is returned when a budget string has no digits at all.
var ErrBadBudget = errors.New("budget is not a valid amount")

// ParseINR parses an INR amount like "₹25,000" or "25000" into whole
// rupees. Currency symbols, commas and spaces are ignored.
func ParseINR(s string) (int, error) {
	var digits strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0, ErrBadBudget
	}
	n, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0, ErrBadBudget
	}
	return n, nil
}

// ParseINROrDefault is the lenient variant used inside plan generation,
// after the validation gate has already run.
func ParseINROrDefault(s string) int {
	n, err := ParseINR(s)
	if err != nil || n <= 0 {
		return defaultBudget
	}
	return n
}

// FormatINR renders whole rupees in the Indian grouping style, e.g.
// 1234567 -> "₹12,34,567".
func FormatINR(amount int) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	s := strconv.Itoa(amount)
	if len(s) <= 3 {
		return "₹" + sign + s
	}
	head := s[:len(s)-3]
	tail := s[len(s)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return "₹" + sign + strings.Join(groups, ",") + "," + tail
}

// AllocateBudget splits the total budget into category amounts using the
// 40/25/20/10/5 distribution. Each category is rounded independently and
// the rounding remainder lands in shopping, so the five categories always
// sum exactly to the total. A negative shopping remainder is clamped to
// zero with the difference taken from accommodation, the largest bucket.
func AllocateBudget(total, days int) types.BudgetAllocation {
	if total < 0 {
		total = 0
	}
	if days < 1 {
		days = 1
	}
	t := float64(total)
	alloc := types.BudgetAllocation{
		Accommodation: int(math.Round(t * 0.40)),
		Food:          int(math.Round(t * 0.25)),
		Transport:     int(math.Round(t * 0.20)),
		Activities:    int(math.Round(t * 0.10)),
		DailyBudget:   int(math.Round(t / float64(days))),
		Total:         total,
	}
	alloc.Shopping = total - alloc.Accommodation - alloc.Food - alloc.Transport - alloc.Activities
	if alloc.Shopping < 0 {
		alloc.Accommodation += alloc.Shopping
		alloc.Shopping = 0
	}
	return alloc
}

// BudgetCategory labels the plan by the nightly accommodation spend.
func BudgetCategory(alloc types.BudgetAllocation) string {
	if alloc.Accommodation < 8000 {
		return "Budget-Friendly"
	}
	return "Mid-Range"
}

// BreakdownFromAllocation renders the allocation for the plan boundary.
func BreakdownFromAllocation(alloc types.BudgetAllocation) types.BudgetBreakdown {
	return types.BudgetBreakdown{
		Accommodation:  FormatINR(alloc.Accommodation),
		Food:           FormatINR(alloc.Food),
		Transportation: FormatINR(alloc.Transport),
		Activities:     FormatINR(alloc.Activities),
		Shopping:       FormatINR(alloc.Shopping),
		Miscellaneous:  "₹500",
		Total:          FormatINR(alloc.Total),
		DailyAverage:   FormatINR(alloc.DailyBudget),
	}
}
