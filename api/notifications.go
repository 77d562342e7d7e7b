package api

import (
	"context"
	"net/http"

	"github.com/neelammkw/elearning-client/models"
)

type NotificationsAPI struct {
	client *Client
}

func NewNotificationsAPI(client *Client) *NotificationsAPI {
	return &NotificationsAPI{client: client}
}

func (a *NotificationsAPI) GetNotifications(ctx context.Context) ([]models.Notification, error) {
	var resp struct {
		Success       bool                  `json:"success"`
		Notifications []models.Notification `json:"notifications"`
	}
	if err := a.client.get(ctx, "get-all-notifications", &resp, TagNotifications); err != nil {
		return nil, err
	}
	return resp.Notifications, nil
}

func (a *NotificationsAPI) MarkRead(ctx context.Context, id string) error {
	return a.client.mutate(ctx, http.MethodPut, "update-notification/"+id, nil, nil, TagNotifications)
}
