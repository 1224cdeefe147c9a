package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeMonths(t *testing.T) {
	cases := []struct {
		name     string
		free     int
		paid     int
		wantFree int
		wantPaid int
	}{
		{name: "already consistent", free: 3, paid: 9, wantFree: 3, wantPaid: 9},
		{name: "free drives the pair", free: 4, paid: 12, wantFree: 4, wantPaid: 8},
		{name: "paid drives when free is zero", free: 0, paid: 5, wantFree: 7, wantPaid: 5},
		{name: "both zero defaults to fully paid", free: 0, paid: 0, wantFree: 0, wantPaid: 12},
		{name: "fully free forces zero paid", free: 12, paid: 7, wantFree: 12, wantPaid: 0},
		{name: "fully free with zero paid", free: 12, paid: 0, wantFree: 12, wantPaid: 0},
		{name: "negative free clamps to zero", free: -3, paid: 9, wantFree: 3, wantPaid: 9},
		{name: "overflow free clamps to twelve", free: 20, paid: 4, wantFree: 12, wantPaid: 0},
		{name: "negative paid clamps", free: 2, paid: -1, wantFree: 2, wantPaid: 10},
		{name: "overflow paid clamps", free: 0, paid: 30, wantFree: 0, wantPaid: 12},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			free, paid := NormalizeMonths(tc.free, tc.paid)
			assert.Equal(t, tc.wantFree, free)
			assert.Equal(t, tc.wantPaid, paid)
		})
	}
}

func TestNormalizeMonths_AlwaysSumsToTwelve(t *testing.T) {
	for free := -2; free <= 14; free++ {
		for paid := -2; paid <= 14; paid++ {
			gotFree, gotPaid := NormalizeMonths(free, paid)
			assert.Equal(t, 12, gotFree+gotPaid, "free=%d paid=%d", free, paid)
			assert.GreaterOrEqual(t, gotFree, 0)
			assert.LessOrEqual(t, gotFree, 12)
			assert.GreaterOrEqual(t, gotPaid, 0)
			assert.LessOrEqual(t, gotPaid, 12)
			if gotPaid == 0 {
				// Only an explicitly 100% free service ends unpaid.
				assert.Equal(t, 12, gotFree)
			}
		}
	}
}
