package api

import (
	"context"

	"github.com/neelammkw/elearning-client/models"
)

type AnalyticsAPI struct {
	client *Client
}

func NewAnalyticsAPI(client *Client) *AnalyticsAPI {
	return &AnalyticsAPI{client: client}
}

func (a *AnalyticsAPI) GetUserAnalytics(ctx context.Context) ([]models.MonthPoint, error) {
	var resp struct {
		Success bool                `json:"success"`
		Users   []models.MonthPoint `json:"users"`
	}
	if err := a.client.get(ctx, "get-users-analytics", &resp, TagAnalytics); err != nil {
		return nil, err
	}
	return resp.Users, nil
}

func (a *AnalyticsAPI) GetCourseAnalytics(ctx context.Context) ([]models.MonthPoint, error) {
	var resp struct {
		Success bool                `json:"success"`
		Courses []models.MonthPoint `json:"courses"`
	}
	if err := a.client.get(ctx, "get-courses-analytics", &resp, TagAnalytics); err != nil {
		return nil, err
	}
	return resp.Courses, nil
}

func (a *AnalyticsAPI) GetOrderAnalytics(ctx context.Context) ([]models.MonthPoint, error) {
	var resp struct {
		Success bool                `json:"success"`
		Orders  []models.MonthPoint `json:"orders"`
	}
	if err := a.client.get(ctx, "get-order-analytics", &resp, TagAnalytics); err != nil {
		return nil, err
	}
	return resp.Orders, nil
}
