package clients

import (
	"context"
	"testing"

	"github.com/h2non/gock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoldClient_CreatePaymentLink(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		defer gock.Off()
		gock.New("https://integrations.api.bold.co").
			Post("/online/link/v1").
			Reply(200).
			JSON(map[string]string{
				"payment_link": "LNK_abc123",
				"url":          "https://checkout.bold.co/payment/LNK_abc123",
			})

		client := NewBoldClient("test-api-key")
		resp, err := client.CreatePaymentLink(context.Background(), BoldPaymentLinkRequest{
			Amount:    BoldLinkAmount{Currency: "COP", TotalAmount: 50000},
			Reference: "ORD-42",
		})

		require.NoError(t, err)
		assert.Equal(t, "LNK_abc123", resp.PaymentLink)
		assert.Equal(t, "https://checkout.bold.co/payment/LNK_abc123", resp.URL)
		assert.True(t, gock.IsDone())
	})

	t.Run("APIError", func(t *testing.T) {
		defer gock.Off()
		gock.New("https://integrations.api.bold.co").
			Post("/online/link/v1").
			Reply(401).
			JSON(map[string]string{"error": "invalid api key"})

		client := NewBoldClient("bad-key")
		_, err := client.CreatePaymentLink(context.Background(), BoldPaymentLinkRequest{
			Amount:    BoldLinkAmount{TotalAmount: 50000},
			Reference: "ORD-42",
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "401")
	})

	t.Run("MissingReference", func(t *testing.T) {
		client := NewBoldClient("test-api-key")
		_, err := client.CreatePaymentLink(context.Background(), BoldPaymentLinkRequest{
			Amount: BoldLinkAmount{TotalAmount: 50000},
		})
		assert.Error(t, err)
	})

	t.Run("NonPositiveAmount", func(t *testing.T) {
		client := NewBoldClient("test-api-key")
		_, err := client.CreatePaymentLink(context.Background(), BoldPaymentLinkRequest{
			Amount:    BoldLinkAmount{TotalAmount: 0},
			Reference: "ORD-42",
		})
		assert.Error(t, err)
	})
}
