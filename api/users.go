package api

import (
	"context"
	"net/http"

	"github.com/neelammkw/elearning-client/models"
)

type UsersAPI struct {
	client *Client
}

func NewUsersAPI(client *Client) *UsersAPI {
	return &UsersAPI{client: client}
}

func (a *UsersAPI) GetAllUsers(ctx context.Context) ([]models.User, error) {
	var resp struct {
		Success bool          `json:"success"`
		Users   []models.User `json:"users"`
	}
	if err := a.client.get(ctx, "get-users", &resp, TagUsers); err != nil {
		return nil, err
	}
	return resp.Users, nil
}

func (a *UsersAPI) DeleteUser(ctx context.Context, id string) error {
	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	return a.client.mutate(ctx, http.MethodDelete, "delete-user/"+id, nil, &resp, TagUsers)
}

func (a *UsersAPI) UpdateUserRole(ctx context.Context, email, role string) (models.User, error) {
	body := map[string]string{"email": email, "role": role}
	var resp struct {
		Success bool        `json:"success"`
		User    models.User `json:"user"`
	}
	if err := a.client.mutate(ctx, http.MethodPut, "update-user-role", body, &resp, TagUsers); err != nil {
		return models.User{}, err
	}
	return resp.User, nil
}
