package imitation

import (
	"github.com/gofiber/fiber/v2"

	"github.com/neelammkw/elearning-client/config"
)

type AuthController struct {
	Store *Store
	Cfg   *config.Config
}

func NewAuthController(store *Store, cfg *config.Config) *AuthController {
	return &AuthController{Store: store, Cfg: cfg}
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	ac.Store.mu.RLock()
	password, ok := ac.Store.passwords[input.Email]
	var userID string
	if ok {
		for id, u := range ac.Store.users {
			if u.Email == input.Email {
				userID = id
				break
			}
		}
	}
	ac.Store.mu.RUnlock()

	// Fixture comparison only — password hashing is the real server's job.
	if !ok || password != input.Password || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Invalid email or password",
		})
	}

	token, err := generateToken(userID, ac.Cfg)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not generate token",
		})
	}

	ac.Store.mu.RLock()
	user := *ac.Store.users[userID]
	ac.Store.mu.RUnlock()

	return c.JSON(fiber.Map{
		"success":     true,
		"accessToken": token,
		"user":        user,
	})
}
