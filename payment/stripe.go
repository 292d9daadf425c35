package payment

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/nbui/fitstore-api/apperrors"
)

// Charge is the processor's confirmation of a captured payment.
type Charge struct {
	ID       string `json:"id"`
	Amount   int    `json:"amount"`
	Currency string `json:"currency"`
}

// StripeClient submits charges to Stripe's REST API. Every charge carries a
// fresh idempotency key, so the bounded retry on transport errors cannot
// double-charge.
type StripeClient struct {
	client    *resty.Client
	secretKey string
}

func NewStripeClient(secretKey string) *StripeClient {
	client := resty.New().
		SetBaseURL("https://api.stripe.com").
		SetTimeout(30 * time.Second).
		SetRetryCount(2).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			// Retry transport failures only; a decline is final.
			return err != nil
		})
	return &StripeClient{client: client, secretKey: secretKey}
}

// Charge captures amount (minor currency units) against the given
// client-supplied payment source token.
func (c *StripeClient) Charge(amount int, currency, source string) (*Charge, error) {
	resp, err := c.client.R().
		SetAuthToken(c.secretKey).
		SetHeader("Idempotency-Key", uuid.NewString()).
		SetFormData(map[string]string{
			"amount":   strconv.Itoa(amount),
			"currency": currency,
			"source":   source,
		}).
		Post("/v1/charges")
	if err != nil {
		return nil, fmt.Errorf("charge request failed: %w", err)
	}

	if resp.StatusCode() != 200 {
		var errResp struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if err := json.Unmarshal(resp.Body(), &errResp); err == nil && errResp.Error.Message != "" {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrPaymentDeclined, errResp.Error.Message)
		}
		return nil, fmt.Errorf("%w: processor returned status %d", apperrors.ErrPaymentDeclined, resp.StatusCode())
	}

	var charge Charge
	if err := json.Unmarshal(resp.Body(), &charge); err != nil {
		return nil, fmt.Errorf("failed to parse charge response: %w", err)
	}
	if charge.ID == "" {
		return nil, fmt.Errorf("charge id not found in response")
	}
	return &charge, nil
}
