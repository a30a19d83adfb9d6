package payment_webhook_controller

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodePayload(t *testing.T, raw string) map[string]interface{} {
	t.Helper()
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &payload))
	return payload
}

func TestExtractOrderReference(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{"FlatOrderId", `{"orderId": "ORD-42"}`, "42"},
		{"FlatOrderIdNoPrefix", `{"orderId": "42"}`, "42"},
		{"SnakeCaseOrderId", `{"order_id": "ORD-7"}`, "7"},
		{"PaymentReference", `{"payment_reference": "ORD-15"}`, "15"},
		{"PlainReference", `{"reference": "99"}`, "99"},
		{"NestedV2Metadata", `{"type": "SALE_APPROVED", "data": {"metadata": {"reference": "55"}}}`, "55"},
		{"NumericReference", `{"orderId": 42}`, "42"},
		{"FlatWinsOverNested", `{"orderId": "ORD-1", "data": {"metadata": {"reference": "2"}}}`, "1"},
		{"EmptyStringFallsThrough", `{"orderId": "", "order_id": "ORD-3"}`, "3"},
		{"WhitespaceOnlyIsEmpty", `{"orderId": "   "}`, ""},
		{"NoReferenceAnywhere", `{"transactionStatus": 4}`, ""},
		{"MalformedNestedShape", `{"data": {"metadata": "not-an-object"}}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := decodePayload(t, tt.raw)
			assert.Equal(t, tt.expected, ExtractOrderReference(payload))
		})
	}
}

// The normalized reference must come out the same no matter which field
// carried it.
func TestExtractOrderReference_FieldEquivalence(t *testing.T) {
	shapes := []string{
		`{"orderId": "ORD-123"}`,
		`{"order_id": "ORD-123"}`,
		`{"payment_reference": "123"}`,
		`{"reference": "ORD-123"}`,
		`{"data": {"metadata": {"reference": "123"}}}`,
	}

	for _, raw := range shapes {
		payload := decodePayload(t, raw)
		assert.Equal(t, "123", ExtractOrderReference(payload), "shape: %s", raw)
	}
}

func TestIsApprovedPayment(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		approved bool
	}{
		{"NumericStatusApproved", `{"transactionStatus": 4}`, true},
		{"StringStatusApproved", `{"transactionStatus": "4"}`, true},
		{"StatusPendingIgnored", `{"transactionStatus": 1}`, false},
		{"NonIntegralStatusIgnored", `{"transactionStatus": 4.7}`, false},
		{"StatusRejectedIgnored", `{"transactionStatus": 2}`, false},
		{"V2TypeApproved", `{"type": "SALE_APPROVED"}`, true},
		{"V2TypeRejectedIgnored", `{"type": "SALE_REJECTED"}`, false},
		{"EitherCriterionSuffices", `{"transactionStatus": 1, "type": "SALE_APPROVED"}`, true},
		{"NoSignalAtAll", `{"orderId": "ORD-1"}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := decodePayload(t, tt.raw)
			assert.Equal(t, tt.approved, IsApprovedPayment(payload))
		})
	}
}

func TestExtractPaidAmount(t *testing.T) {
	t.Run("FlatAmount", func(t *testing.T) {
		amount, ok := ExtractPaidAmount(decodePayload(t, `{"amount": 50000}`))
		require.True(t, ok)
		assert.Equal(t, 50000.0, amount)
	})

	t.Run("NestedV2Amount", func(t *testing.T) {
		amount, ok := ExtractPaidAmount(decodePayload(t, `{"data": {"amount": {"total": 30000}}}`))
		require.True(t, ok)
		assert.Equal(t, 30000.0, amount)
	})

	t.Run("Absent", func(t *testing.T) {
		_, ok := ExtractPaidAmount(decodePayload(t, `{"orderId": "ORD-1"}`))
		assert.False(t, ok)
	})
}

func TestComputeAmounts(t *testing.T) {
	t.Run("DefaultsToDepositPercentage", func(t *testing.T) {
		// One pending booking worth 100000 at 50% deposit.
		deposit, balance := ComputeAmounts(100000, nil, 50)
		assert.Equal(t, 50000.0, deposit)
		assert.Equal(t, 50000.0, balance)
	})

	t.Run("ExplicitAmountWins", func(t *testing.T) {
		explicit := 30000.0
		deposit, balance := ComputeAmounts(80000, &explicit, 50)
		assert.Equal(t, 30000.0, deposit)
		assert.Equal(t, 50000.0, balance)
	})

	t.Run("BalanceLawHolds", func(t *testing.T) {
		for _, pct := range []float64{0, 10, 25, 50, 100} {
			total := 123456.0
			deposit, balance := ComputeAmounts(total, nil, pct)
			assert.InDelta(t, total, deposit+balance, 1e-9)
		}
	})
}

func TestFormatConfirmationMessage(t *testing.T) {
	msg := FormatConfirmationMessage("Carlos", "42", 100000, 50000, 50000)
	assert.Contains(t, msg, "Carlos")
	assert.Contains(t, msg, "42")
	assert.Contains(t, msg, "$100.000")
	assert.Contains(t, msg, "$50.000")
}

func TestFormatCOP(t *testing.T) {
	assert.Equal(t, "0", formatCOP(0))
	assert.Equal(t, "950", formatCOP(950))
	assert.Equal(t, "50.000", formatCOP(50000))
	assert.Equal(t, "1.250.000", formatCOP(1250000))
	assert.Equal(t, "-50.000", formatCOP(-50000))
}
