// Package imitation is a local stand-in for the remote platform API, used
// for development and integration tests. All state is in-memory fixtures;
// nothing here is the real platform backend.
package imitation

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/neelammkw/elearning-client/config"
)

// New builds the imitation app with all routes mounted under /api/v1.
func New(cfg *config.Config, logger *log.Logger) *fiber.App {
	store := NewStore()
	return NewWithStore(cfg, logger, store)
}

func NewWithStore(cfg *config.Config, logger *log.Logger, store *Store) *fiber.App {
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	if logger != nil {
		app.Use(requestLogger(logger))
	}

	setupRoutes(app, store, cfg)
	return app
}

func requestLogger(logger *log.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		logger.Printf("%s %s %d %s",
			c.Method(), c.Path(), c.Response().StatusCode(), time.Since(start))
		return err
	}
}

func setupRoutes(app *fiber.App, store *Store, cfg *config.Config) {
	api := app.Group("/api/v1")

	authController := NewAuthController(store, cfg)
	api.Post("/login", authController.Login)

	auth := authMiddleware(cfg)
	admin := adminMiddleware(store, cfg)

	coursesController := NewCoursesController(store, cfg)
	api.Get("/get-all-courses", coursesController.GetAllCourses)
	api.Get("/get-course/:id", coursesController.GetCourse)
	api.Get("/get-course-content/:id", auth, coursesController.GetCourseContent)
	api.Get("/check-course-enrollment/:id", auth, coursesController.CheckEnrollment)
	api.Post("/enroll-course", auth, coursesController.EnrollFree)
	api.Post("/create-course", admin, coursesController.CreateCourse)
	api.Put("/edit-course/:id", admin, coursesController.EditCourse)
	api.Delete("/delete-course/:id", admin, coursesController.DeleteCourse)

	api.Put("/add-review/:id", auth, coursesController.AddReview)
	api.Put("/add-reply", auth, coursesController.AddReviewReply)
	api.Put("/add-question", auth, coursesController.AddQuestion)
	api.Put("/add-answer", auth, coursesController.AddAnswer)
	api.Put("/add-reaction", auth, coursesController.AddReaction)

	ordersController := NewOrdersController(store, cfg)
	api.Get("/payment/stripepublishablekey", ordersController.GetStripePublishableKey)
	api.Post("/create-payment-intent", auth, ordersController.CreatePaymentIntent)
	api.Post("/confirm-order", auth, ordersController.ConfirmOrder)
	api.Get("/get-orders", admin, ordersController.GetAllOrders)
	api.Get("/get-user-orders", auth, ordersController.GetUserOrders)
	api.Get("/get-order/:id", admin, ordersController.GetOrder)
	api.Put("/update-order-status/:id", admin, ordersController.UpdateOrderStatus)
	api.Delete("/delete-order/:id", admin, ordersController.DeleteOrder)

	usersController := NewUsersController(store, cfg)
	api.Get("/get-users", admin, usersController.GetAllUsers)
	api.Delete("/delete-user/:id", admin, usersController.DeleteUser)
	api.Put("/update-user-role", admin, usersController.UpdateUserRole)
	api.Get("/get-all-notifications", admin, usersController.GetNotifications)
	api.Put("/update-notification/:id", admin, usersController.MarkNotificationRead)
	api.Get("/get-users-analytics", admin, usersController.GetUserAnalytics)
	api.Get("/get-courses-analytics", admin, usersController.GetCourseAnalytics)
	api.Get("/get-order-analytics", admin, usersController.GetOrderAnalytics)
}
