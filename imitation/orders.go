package imitation

import (
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/neelammkw/elearning-client/config"
	"github.com/neelammkw/elearning-client/models"
)

type OrdersController struct {
	Store *Store
	Cfg   *config.Config
}

func NewOrdersController(store *Store, cfg *config.Config) *OrdersController {
	return &OrdersController{Store: store, Cfg: cfg}
}

func (oc *OrdersController) GetStripePublishableKey(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"publishableKey": "pk_test_imitation",
	})
}

// CreatePaymentIntent opens a fake intent: the client secret follows the
// Stripe "pi_..._secret_..." shape so the client-side parsing works.
func (oc *OrdersController) CreatePaymentIntent(c *fiber.Ctx) error {
	var input struct {
		CourseID string `json:"courseId"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	oc.Store.mu.Lock()
	defer oc.Store.mu.Unlock()

	course, ok := oc.Store.courses[input.CourseID]
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Course not found",
		})
	}

	intent := &paymentIntent{
		ID:       newID("pi"),
		OrderID:  newID("order"),
		CourseID: course.ID,
		UserID:   currentUserID(c),
		Amount:   course.Price,
	}
	intent.ClientSecret = intent.ID + "_secret_" + newID("cs")
	oc.Store.intents[intent.ID] = intent

	order := &models.Order{
		ID:         intent.OrderID,
		UserID:     intent.UserID,
		CourseID:   course.ID,
		CourseName: course.Name,
		PaymentInfo: models.PaymentInfo{
			ID:     intent.ID,
			Status: models.OrderPending,
			Amount: course.Price,
		},
		Status:        models.OrderPending,
		TotalAmount:   course.Price,
		PaymentMethod: "card",
		CreatedAt:     time.Now().UTC(),
	}
	if user, ok := oc.Store.users[intent.UserID]; ok {
		order.UserName = user.Name
	}
	oc.Store.orders[order.ID] = order

	return c.JSON(fiber.Map{
		"clientSecret": intent.ClientSecret,
		"orderId":      intent.OrderID,
	})
}

// ConfirmOrder completes the order and enrolls the buyer.
func (oc *OrdersController) ConfirmOrder(c *fiber.Ctx) error {
	var input struct {
		PaymentIntentID string `json:"paymentIntentId"`
		OrderID         string `json:"orderId"`
		CourseID        string `json:"courseId"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	oc.Store.mu.Lock()
	defer oc.Store.mu.Unlock()

	order, ok := oc.Store.orders[input.OrderID]
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Order not found",
		})
	}
	if _, ok := oc.Store.intents[input.PaymentIntentID]; !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Unknown payment intent",
		})
	}

	order.Status = models.OrderCompleted
	order.PaymentInfo.Status = models.OrderCompleted

	if user, ok := oc.Store.users[order.UserID]; ok && !user.IsEnrolled(order.CourseID) {
		user.Courses = append(user.Courses, order.CourseID)
		if course, ok := oc.Store.courses[order.CourseID]; ok {
			course.Purchased++
		}
	}

	oc.Store.notifications[newID("notif")] = &models.Notification{
		ID:        newID("notif"),
		UserID:    order.UserID,
		Title:     "New order",
		Message:   "Order " + order.ID + " completed",
		Status:    "unread",
		CreatedAt: time.Now().UTC(),
	}

	return c.JSON(fiber.Map{"success": true})
}

func (oc *OrdersController) GetAllOrders(c *fiber.Ctx) error {
	oc.Store.mu.RLock()
	orders := make([]models.Order, 0, len(oc.Store.orders))
	for _, o := range oc.Store.orders {
		orders = append(orders, *o)
	}
	oc.Store.mu.RUnlock()

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})

	return c.JSON(fiber.Map{
		"success": true,
		"orders":  orders,
	})
}

func (oc *OrdersController) GetUserOrders(c *fiber.Ctx) error {
	userID := currentUserID(c)

	oc.Store.mu.RLock()
	var orders []models.Order
	for _, o := range oc.Store.orders {
		if o.UserID == userID {
			orders = append(orders, *o)
		}
	}
	oc.Store.mu.RUnlock()

	return c.JSON(fiber.Map{
		"success": true,
		"orders":  orders,
	})
}

func (oc *OrdersController) GetOrder(c *fiber.Ctx) error {
	oc.Store.mu.RLock()
	order, ok := oc.Store.orders[c.Params("id")]
	oc.Store.mu.RUnlock()
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Order not found",
		})
	}

	return c.JSON(fiber.Map{
		"order": *order,
	})
}

func (oc *OrdersController) UpdateOrderStatus(c *fiber.Ctx) error {
	var input struct {
		Status models.OrderStatus `json:"status"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	switch input.Status {
	case models.OrderCompleted, models.OrderPending, models.OrderCancelled,
		models.OrderRefunded, models.OrderFailed:
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Unknown order status",
		})
	}

	oc.Store.mu.Lock()
	defer oc.Store.mu.Unlock()

	order, ok := oc.Store.orders[c.Params("id")]
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Order not found",
		})
	}

	order.Status = input.Status
	order.PaymentInfo.Status = input.Status

	return c.JSON(*order)
}

func (oc *OrdersController) DeleteOrder(c *fiber.Ctx) error {
	oc.Store.mu.Lock()
	defer oc.Store.mu.Unlock()

	if _, ok := oc.Store.orders[c.Params("id")]; !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Order not found",
		})
	}
	delete(oc.Store.orders, c.Params("id"))

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Order deleted successfully",
	})
}
