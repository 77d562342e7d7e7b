package api

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type PaymentAPI struct {
	client *Client
}

func NewPaymentAPI(client *Client) *PaymentAPI {
	return &PaymentAPI{client: client}
}

func (a *PaymentAPI) GetPublishableKey(ctx context.Context) (string, error) {
	var resp struct {
		PublishableKey string `json:"publishableKey"`
	}
	if err := a.client.get(ctx, "payment/stripepublishablekey", &resp); err != nil {
		return "", err
	}
	return resp.PublishableKey, nil
}

type PaymentIntent struct {
	ClientSecret string `json:"clientSecret"`
	OrderID      string `json:"orderId"`
}

// CreatePaymentIntent asks the server to open a Stripe payment intent for
// the course. The idempotency key keeps an accidental double click from
// opening two intents server-side.
func (a *PaymentAPI) CreatePaymentIntent(ctx context.Context, courseID string) (PaymentIntent, error) {
	body := map[string]string{"courseId": courseID}

	var intent PaymentIntent
	req, err := a.client.newRequest(ctx, http.MethodPost, "create-payment-intent", nil)
	if err != nil {
		return PaymentIntent{}, err
	}
	req.Header.Set("Idempotency-Key", uuid.NewString())

	if err := a.client.mutateWithRequest(req, body, &intent); err != nil {
		return PaymentIntent{}, err
	}
	return intent, nil
}

type ConfirmOrderRequest struct {
	PaymentIntentID string `json:"paymentIntentId"`
	OrderID         string `json:"orderId"`
	CourseID        string `json:"courseId"`
}

// ConfirmOrder finalizes the order after Stripe reports the intent
// succeeded. Enrollment and order caches go stale on success.
func (a *PaymentAPI) ConfirmOrder(ctx context.Context, req ConfirmOrderRequest) error {
	var resp struct {
		Success bool `json:"success"`
	}
	return a.client.mutate(ctx, http.MethodPost, "confirm-order", req, &resp, TagOrders, TagEnrollment, TagCourses)
}
