package domain_test

import (
	"testing"

	"github.com/cargoplus/collections_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCashClosure_Validate(t *testing.T) {
	valid := domain.CashClosure{
		CollectorID:       "collector-1",
		PaymentIDs:        []string{"p1", "p2"},
		TotalCash:         d("50.00"),
		TotalCard:         d("25.00"),
		TotalTransfer:     d("10.00"),
		TotalOther:        d("15.00"),
		GrandTotal:        d("100.00"),
		CashExpectedTotal: d("50.00"),
		CashCountedTotal:  d("48.00"),
		CashDifference:    d("-2.00"),
	}

	tests := []struct {
		name    string
		mutate  func(c *domain.CashClosure)
		wantErr string
	}{
		{
			name:   "valid closure",
			mutate: func(c *domain.CashClosure) {},
		},
		{
			name:    "missing collector",
			mutate:  func(c *domain.CashClosure) { c.CollectorID = "" },
			wantErr: "collector ID is required",
		},
		{
			name:    "no payments",
			mutate:  func(c *domain.CashClosure) { c.PaymentIDs = nil },
			wantErr: "at least one payment",
		},
		{
			name:    "method totals do not add up",
			mutate:  func(c *domain.CashClosure) { c.GrandTotal = d("99.00") },
			wantErr: "do not add up",
		},
		{
			name:    "difference is not counted minus expected",
			mutate:  func(c *domain.CashClosure) { c.CashDifference = d("2.00") },
			wantErr: "counted minus expected",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestBill_IsPayable(t *testing.T) {
	tests := []struct {
		name string
		bill domain.Bill
		want bool
	}{
		{
			name: "pending with balance",
			bill: domain.Bill{Status: domain.BillPending, Balance: d("10.00")},
			want: true,
		},
		{
			name: "partial with balance",
			bill: domain.Bill{Status: domain.BillPartial, Balance: d("0.01")},
			want: true,
		},
		{
			name: "paid",
			bill: domain.Bill{Status: domain.BillPaid, Balance: decimal.Zero},
			want: false,
		},
		{
			name: "cancelled with balance",
			bill: domain.Bill{Status: domain.BillCancelled, Balance: d("10.00")},
			want: false,
		},
		{
			name: "pending with zero balance",
			bill: domain.Bill{Status: domain.BillPending, Balance: decimal.Zero},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.bill.IsPayable())
		})
	}
}
