package reconcile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/backoffice/internal/reconcile"
)

// The expected values below are pinned; a change here changes every printed
// grand total.
func TestAccumulate(t *testing.T) {
	type testCase struct {
		name    string
		in      reconcile.AccumulationInput
		wantOld string
		wantNew string
	}

	tests := []testCase{
		{
			name: "FirstDay",
			in: reconcile.AccumulationInput{
				AllSuccess:   dec("112"),
				TodaySuccess: dec("112"),
			},
			wantOld: "0",
			wantNew: "112",
		},
		{
			name: "RefundOfEarlierSale",
			in: reconcile.AccumulationInput{
				AllSuccess:       dec("450"),
				TodaySuccess:     dec("150"),
				TodayRefundsPaid: dec("100"),
				RefundsTotal:     dec("100"),
			},
			wantOld: "300",
			wantNew: "450",
		},
		{
			name: "ExcessCashAndNegativeReturns",
			in: reconcile.AccumulationInput{
				AllSuccess:       dec("1000"),
				AllExcessCash:    dec("30"),
				TodaySuccess:     dec("380"),
				TodayExcessCash:  dec("20"),
				TodayRefundsPaid: dec("50"),
				ReturnsTotal:     dec("-50"),
			},
			// 1000 + 50 + 0 − 50 − 30 − 380 + 20
			wantOld: "610",
			wantNew: "980",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reconcile.Accumulate(tt.in)

			assert.True(t, dec(tt.wantOld).Equal(got.Old), "old %s", got.Old)
			assert.True(t, dec(tt.wantNew).Equal(got.New), "new %s", got.New)
		})
	}
}
