package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/neelammkw/elearning-client/models"
)

type OrdersAPI struct {
	client *Client
}

func NewOrdersAPI(client *Client) *OrdersAPI {
	return &OrdersAPI{client: client}
}

// GetAllOrders tolerates both response shapes the endpoint has shipped: a
// bare order array and a {success, orders} wrapper.
func (a *OrdersAPI) GetAllOrders(ctx context.Context) ([]models.Order, error) {
	var raw json.RawMessage
	if err := a.client.get(ctx, "get-orders", &raw, TagOrders); err != nil {
		return nil, err
	}
	return decodeOrders(raw)
}

func decodeOrders(raw json.RawMessage) ([]models.Order, error) {
	var orders []models.Order
	if err := json.Unmarshal(raw, &orders); err == nil {
		return orders, nil
	}

	var wrapped struct {
		Success bool           `json:"success"`
		Orders  []models.Order `json:"orders"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, err
	}
	return wrapped.Orders, nil
}

// GetUserOrders unwraps the {success, orders} envelope; a missing orders
// field yields an empty slice, not an error.
func (a *OrdersAPI) GetUserOrders(ctx context.Context) ([]models.Order, error) {
	var resp struct {
		Success bool           `json:"success"`
		Orders  []models.Order `json:"orders"`
	}
	if err := a.client.get(ctx, "get-user-orders", &resp, TagOrders); err != nil {
		return nil, err
	}
	return resp.Orders, nil
}

func (a *OrdersAPI) GetOrder(ctx context.Context, id string) (models.Order, error) {
	var resp struct {
		Order models.Order `json:"order"`
	}
	if err := a.client.get(ctx, "get-order/"+id, &resp, TagOrders); err != nil {
		return models.Order{}, err
	}
	return resp.Order, nil
}

// UpdateOrderStatus patches the cached payment_info.status optimistically,
// sends the mutation, and rolls the patch back if the server rejects it.
func (a *OrdersAPI) UpdateOrderStatus(ctx context.Context, id string, status models.OrderStatus) (models.Order, error) {
	restore := a.patchCachedStatus(id, status)

	var updated models.Order
	body := map[string]string{"status": string(status)}
	err := a.client.mutate(ctx, http.MethodPut, "update-order-status/"+id, body, &updated, TagOrders)
	if err != nil {
		if restore != nil {
			restore()
		}
		return models.Order{}, err
	}
	return updated, nil
}

func (a *OrdersAPI) patchCachedStatus(id string, status models.OrderStatus) func() {
	key := "get-order/" + id
	data, ok := a.client.cache.Get(key)
	if !ok {
		return nil
	}

	var resp struct {
		Order models.Order `json:"order"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil
	}
	resp.Order.PaymentInfo.Status = status

	patched, err := json.Marshal(resp)
	if err != nil {
		return nil
	}
	restore, ok := a.client.cache.Patch(key, patched)
	if !ok {
		return nil
	}
	return restore
}

func (a *OrdersAPI) DeleteOrder(ctx context.Context, id string) error {
	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	return a.client.mutate(ctx, http.MethodDelete, "delete-order/"+id, nil, &resp, TagOrders)
}
