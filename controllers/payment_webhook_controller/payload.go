package payment_webhook_controller

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pasoapp/paso/models"
)

// Bold approval criteria. Either one confirms the payment: the legacy payload
// carries a numeric transaction status, the v2 payload an event type string.
const (
	approvedTransactionStatus = 4
	approvedEventType         = "SALE_APPROVED"
)

// referenceExtractor pulls an order reference out of a decoded payload,
// returning "" when its field is absent.
type referenceExtractor func(payload map[string]interface{}) string

// referenceExtractors is the prioritized fallback chain over the payload
// shapes Bold has used historically. The first non-empty match wins.
var referenceExtractors = []referenceExtractor{
	flatField("orderId"),
	flatField("order_id"),
	flatField("payment_reference"),
	flatField("reference"),
	nestedMetadataReference,
}

func flatField(name string) referenceExtractor {
	return func(payload map[string]interface{}) string {
		return stringValue(payload[name])
	}
}

// nestedMetadataReference handles the Bold v2 payload shape:
// {"data": {"metadata": {"reference": "..."}}}.
func nestedMetadataReference(payload map[string]interface{}) string {
	data, ok := payload["data"].(map[string]interface{})
	if !ok {
		return ""
	}
	metadata, ok := data["metadata"].(map[string]interface{})
	if !ok {
		return ""
	}
	return stringValue(metadata["reference"])
}

// ExtractOrderReference walks the extractor chain and normalizes the result
// by stripping the optional ORD- prefix. Returns "" when no shape matched.
func ExtractOrderReference(payload map[string]interface{}) string {
	for _, extract := range referenceExtractors {
		if ref := extract(payload); ref != "" {
			return strings.TrimPrefix(ref, models.OrderReferencePrefix)
		}
	}
	return ""
}

// IsApprovedPayment reports whether the payload signals an approved sale in
// either the legacy or the v2 format. Anything else is an unrelated event.
func IsApprovedPayment(payload map[string]interface{}) bool {
	// Exact comparison: a non-integral status is not status 4.
	if status, ok := numberValue(payload["transactionStatus"]); ok && status == float64(approvedTransactionStatus) {
		return true
	}
	if eventType, _ := payload["type"].(string); eventType == approvedEventType {
		return true
	}
	return false
}

// ExtractPaidAmount returns the explicit payment amount when the payload
// carries one: the flat "amount" field, or data.amount.total in v2.
func ExtractPaidAmount(payload map[string]interface{}) (float64, bool) {
	if amount, ok := numberValue(payload["amount"]); ok {
		return amount, true
	}
	data, ok := payload["data"].(map[string]interface{})
	if !ok {
		return 0, false
	}
	amountObj, ok := data["amount"].(map[string]interface{})
	if !ok {
		return 0, false
	}
	return numberValue(amountObj["total"])
}

// ComputeAmounts derives the figures reported to the salon. The deposit
// defaults to the salon's configured percentage of the total when the gateway
// did not report the amount explicitly.
func ComputeAmounts(totalPrice float64, explicitAmount *float64, depositPercentage float64) (depositPaid, balanceDue float64) {
	if explicitAmount != nil {
		depositPaid = *explicitAmount
	} else {
		depositPaid = totalPrice * depositPercentage / 100
	}
	return depositPaid, totalPrice - depositPaid
}

func stringValue(v interface{}) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case float64:
		// JSON numbers decode as float64; references are integral.
		return strconv.FormatInt(int64(val), 10)
	default:
		return ""
	}
}

func numberValue(v interface{}) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	case int:
		return float64(val), true
	default:
		return 0, false
	}
}

// FormatConfirmationMessage builds the Telegram text sent to the salon after
// a confirmed deposit payment.
func FormatConfirmationMessage(customerName, orderID string, total, depositPaid, balanceDue float64) string {
	return fmt.Sprintf(
		"✅ <b>Pago confirmado</b>\n"+
			"Cliente: %s\n"+
			"Orden: %s\n"+
			"Total: $%s\n"+
			"Abono recibido: $%s\n"+
			"Saldo pendiente: $%s",
		customerName, orderID,
		formatCOP(total), formatCOP(depositPaid), formatCOP(balanceDue),
	)
}

// formatCOP renders a peso amount with thousands separators and no decimals.
func formatCOP(amount float64) string {
	s := strconv.FormatFloat(amount, 'f', 0, 64)
	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ".")
	if negative {
		out = "-" + out
	}
	return out
}
