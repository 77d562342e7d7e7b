package imitation

import (
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/neelammkw/elearning-client/analytics"
	"github.com/neelammkw/elearning-client/config"
	"github.com/neelammkw/elearning-client/models"
)

type UsersController struct {
	Store *Store
	Cfg   *config.Config
}

func NewUsersController(store *Store, cfg *config.Config) *UsersController {
	return &UsersController{Store: store, Cfg: cfg}
}

func (uc *UsersController) GetAllUsers(c *fiber.Ctx) error {
	uc.Store.mu.RLock()
	users := make([]models.User, 0, len(uc.Store.users))
	for _, u := range uc.Store.users {
		users = append(users, *u)
	}
	uc.Store.mu.RUnlock()

	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.After(users[j].CreatedAt)
	})

	return c.JSON(fiber.Map{
		"success": true,
		"users":   users,
	})
}

func (uc *UsersController) DeleteUser(c *fiber.Ctx) error {
	uc.Store.mu.Lock()
	defer uc.Store.mu.Unlock()

	if _, ok := uc.Store.users[c.Params("id")]; !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "User not found",
		})
	}
	delete(uc.Store.users, c.Params("id"))

	return c.JSON(fiber.Map{
		"success": true,
		"message": "User deleted successfully",
	})
}

func (uc *UsersController) UpdateUserRole(c *fiber.Ctx) error {
	var input struct {
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	uc.Store.mu.Lock()
	defer uc.Store.mu.Unlock()

	for _, user := range uc.Store.users {
		if user.Email == input.Email {
			user.Role = input.Role
			return c.JSON(fiber.Map{
				"success": true,
				"user":    *user,
			})
		}
	}

	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"success": false,
		"message": "User not found",
	})
}

func (uc *UsersController) GetNotifications(c *fiber.Ctx) error {
	uc.Store.mu.RLock()
	notifications := make([]models.Notification, 0, len(uc.Store.notifications))
	for _, n := range uc.Store.notifications {
		notifications = append(notifications, *n)
	}
	uc.Store.mu.RUnlock()

	sort.Slice(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})

	return c.JSON(fiber.Map{
		"success":       true,
		"notifications": notifications,
	})
}

func (uc *UsersController) MarkNotificationRead(c *fiber.Ctx) error {
	uc.Store.mu.Lock()
	defer uc.Store.mu.Unlock()

	notification, ok := uc.Store.notifications[c.Params("id")]
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Notification not found",
		})
	}
	notification.Status = "read"

	return c.JSON(fiber.Map{"success": true})
}

func (uc *UsersController) GetUserAnalytics(c *fiber.Ctx) error {
	uc.Store.mu.RLock()
	createdAt := make([]time.Time, 0, len(uc.Store.users))
	for _, u := range uc.Store.users {
		createdAt = append(createdAt, u.CreatedAt)
	}
	uc.Store.mu.RUnlock()

	return c.JSON(fiber.Map{
		"success": true,
		"users":   analytics.LastTwelveMonths(time.Now(), createdAt),
	})
}

func (uc *UsersController) GetCourseAnalytics(c *fiber.Ctx) error {
	uc.Store.mu.RLock()
	createdAt := make([]time.Time, 0, len(uc.Store.courses))
	for _, course := range uc.Store.courses {
		createdAt = append(createdAt, course.CreatedAt)
	}
	uc.Store.mu.RUnlock()

	return c.JSON(fiber.Map{
		"success": true,
		"courses": analytics.LastTwelveMonths(time.Now(), createdAt),
	})
}

func (uc *UsersController) GetOrderAnalytics(c *fiber.Ctx) error {
	uc.Store.mu.RLock()
	orders := make([]models.Order, 0, len(uc.Store.orders))
	for _, o := range uc.Store.orders {
		orders = append(orders, *o)
	}
	uc.Store.mu.RUnlock()

	return c.JSON(fiber.Map{
		"success": true,
		"orders":  analytics.RevenueByMonth(time.Now(), orders),
	})
}
