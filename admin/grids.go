package admin

import (
	"context"
	"strings"

	"github.com/neelammkw/elearning-client/api"
	"github.com/neelammkw/elearning-client/models"
	"github.com/neelammkw/elearning-client/notify"
)

// NewCoursesGrid backs the AllCourses screen.
func NewCoursesGrid(courses *api.CoursesAPI, toaster notify.Toaster) *Grid[models.Course] {
	return &Grid[models.Course]{
		Fetch:   courses.GetAllCourses,
		Delete:  courses.DeleteCourse,
		ID:      func(c models.Course) string { return c.ID },
		Toaster: toaster,
	}
}

// NewUsersGrid backs the AllUsers screen.
func NewUsersGrid(users *api.UsersAPI, toaster notify.Toaster) *Grid[models.User] {
	return &Grid[models.User]{
		Fetch:   users.GetAllUsers,
		Delete:  users.DeleteUser,
		ID:      func(u models.User) string { return u.ID },
		Toaster: toaster,
	}
}

// NewInvoicesGrid backs the AllInvoices screen.
func NewInvoicesGrid(orders *api.OrdersAPI, toaster notify.Toaster) *Grid[models.Order] {
	return &Grid[models.Order]{
		Fetch:   orders.GetAllOrders,
		Delete:  orders.DeleteOrder,
		ID:      func(o models.Order) string { return o.ID },
		Toaster: toaster,
	}
}

// SearchInvoices is the invoice grid's client-side substring search across
// customer name, course name, invoice id and transaction id.
// Case-insensitive, recomputed on every keystroke, no debounce.
func SearchInvoices(orders []models.Order, term string) []models.Order {
	if term == "" {
		return orders
	}
	needle := strings.ToLower(term)

	var matched []models.Order
	for _, o := range orders {
		if strings.Contains(strings.ToLower(o.UserName), needle) ||
			strings.Contains(strings.ToLower(o.CourseName), needle) ||
			strings.Contains(strings.ToLower(o.ID), needle) ||
			strings.Contains(strings.ToLower(o.PaymentInfo.ID), needle) {
			matched = append(matched, o)
		}
	}
	return matched
}

// TeamMembers filters the users grid down to admin rows.
func TeamMembers(users []models.User) []models.User {
	var team []models.User
	for _, u := range users {
		if u.IsAdmin() {
			team = append(team, u)
		}
	}
	return team
}

// ChangeRole runs the role-update flow on the users grid and refetches.
func ChangeRole(ctx context.Context, grid *Grid[models.User], users *api.UsersAPI, email, role string) error {
	if _, err := users.UpdateUserRole(ctx, email, role); err != nil {
		grid.Toaster.Error(api.ErrorMessage(err, "Failed to update the role"))
		return err
	}
	grid.Toaster.Success("Role updated successfully")
	return grid.Load(ctx)
}
