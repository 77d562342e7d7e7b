package checkout

import (
	"context"
	"errors"
	"strings"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// StripeConfirmer confirms payment intents through the Stripe SDK. The
// payment state machine itself lives inside Stripe's hosted service; this
// is a thin adapter.
type StripeConfirmer struct {
	sc            *client.API
	PaymentMethod string
}

func NewStripeConfirmer(apiKey, paymentMethod string) *StripeConfirmer {
	sc := &client.API{}
	sc.Init(apiKey, nil)
	return &StripeConfirmer{sc: sc, PaymentMethod: paymentMethod}
}

func (s *StripeConfirmer) ConfirmPayment(ctx context.Context, clientSecret string) (ConfirmResult, error) {
	intentID, err := intentIDFromSecret(clientSecret)
	if err != nil {
		return ConfirmResult{}, err
	}

	params := &stripe.PaymentIntentConfirmParams{
		Params: stripe.Params{Context: ctx},
	}
	if s.PaymentMethod != "" {
		params.PaymentMethod = stripe.String(s.PaymentMethod)
	}

	intent, err := s.sc.PaymentIntents.Confirm(intentID, params)
	if err != nil {
		return ConfirmResult{}, err
	}
	return ConfirmResult{IntentID: intent.ID, Status: string(intent.Status)}, nil
}

// intentIDFromSecret splits "pi_..._secret_..." back into the intent id.
func intentIDFromSecret(clientSecret string) (string, error) {
	id, _, found := strings.Cut(clientSecret, "_secret_")
	if !found || id == "" {
		return "", errors.New("checkout: malformed client secret")
	}
	return id, nil
}
