package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePaymentMethod(t *testing.T) {
	for _, name := range []string{"cash", "transfer", "nequi", "daviplata", "card"} {
		method, ok := ParsePaymentMethod(name)
		assert.True(t, ok, name)
		assert.Equal(t, PaymentMethod(name), method)
	}

	_, ok := ParsePaymentMethod("bitcoin")
	assert.False(t, ok)
	_, ok = ParsePaymentMethod("Cash")
	assert.False(t, ok, "method names are case sensitive")
}

func TestSummarizePayments(t *testing.T) {
	t.Run("empty set yields zeroed buckets", func(t *testing.T) {
		summary := SummarizePayments(nil)

		assert.True(t, summary.Total.IsZero())
		assert.Equal(t, 0, summary.Count)
		require.Len(t, summary.ByMethod, len(PaymentMethods))
		for _, m := range PaymentMethods {
			assert.True(t, summary.ByMethod[m].IsZero(), string(m))
		}
	})

	t.Run("sums per method and overall", func(t *testing.T) {
		payments := []Payment{
			{Method: PaymentMethodCash, Amount: decimal.NewFromInt(100)},
			{Method: PaymentMethodCard, Amount: decimal.NewFromInt(50)},
			{Method: PaymentMethodCash, Amount: decimal.NewFromFloat(25.50)},
		}

		summary := SummarizePayments(payments)

		assert.Equal(t, 3, summary.Count)
		assert.True(t, summary.Total.Equal(decimal.NewFromFloat(175.50)), summary.Total.String())
		assert.True(t, summary.ByMethod[PaymentMethodCash].Equal(decimal.NewFromFloat(125.50)))
		assert.True(t, summary.ByMethod[PaymentMethodCard].Equal(decimal.NewFromInt(50)))
		assert.True(t, summary.ByMethod[PaymentMethodNequi].IsZero())
	})

	t.Run("unknown method counts toward total only", func(t *testing.T) {
		payments := []Payment{
			{Method: PaymentMethod("voucher"), Amount: decimal.NewFromInt(30)},
		}

		summary := SummarizePayments(payments)

		assert.Equal(t, 1, summary.Count)
		assert.True(t, summary.Total.Equal(decimal.NewFromInt(30)))
		require.Len(t, summary.ByMethod, len(PaymentMethods))
		for _, m := range PaymentMethods {
			assert.True(t, summary.ByMethod[m].IsZero(), string(m))
		}
	})
}
