package imitation

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/neelammkw/elearning-client/models"
)

func (cc *CoursesController) AddReview(c *fiber.Ctx) error {
	courseID := c.Params("id")

	var input struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	cc.Store.mu.Lock()
	defer cc.Store.mu.Unlock()

	course, ok := cc.Store.courses[courseID]
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Course not found",
		})
	}

	user, ok := cc.Store.users[currentUserID(c)]
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "User not found",
		})
	}
	course.Reviews = append(course.Reviews, models.Review{
		ID:        newID("review"),
		UserID:    user.ID,
		UserName:  user.Name,
		Rating:    input.Rating,
		Comment:   input.Comment,
		CreatedAt: time.Now().UTC(),
	})

	var total int
	for _, r := range course.Reviews {
		total += r.Rating
	}
	course.Ratings = float64(total) / float64(len(course.Reviews))

	return c.JSON(fiber.Map{"success": true})
}

func (cc *CoursesController) AddReviewReply(c *fiber.Ctx) error {
	var input struct {
		CourseID string `json:"courseId"`
		ReviewID string `json:"reviewId"`
		Comment  string `json:"comment"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	cc.Store.mu.Lock()
	defer cc.Store.mu.Unlock()

	course, ok := cc.Store.courses[input.CourseID]
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Course not found",
		})
	}

	user, ok := cc.Store.users[currentUserID(c)]
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "User not found",
		})
	}
	for i := range course.Reviews {
		if course.Reviews[i].ID == input.ReviewID {
			course.Reviews[i].Replies = append(course.Reviews[i].Replies, models.ReviewReply{
				ID:        newID("reply"),
				UserID:    user.ID,
				UserName:  user.Name,
				Comment:   input.Comment,
				CreatedAt: time.Now().UTC(),
			})
			return c.JSON(fiber.Map{"success": true})
		}
	}

	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"success": false,
		"message": "Review not found",
	})
}

func (cc *CoursesController) AddQuestion(c *fiber.Ctx) error {
	var input struct {
		CourseID  string `json:"courseId"`
		ContentID string `json:"contentId"`
		Question  string `json:"question"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	cc.Store.mu.Lock()
	defer cc.Store.mu.Unlock()

	content := cc.findContent(input.CourseID, input.ContentID)
	if content == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Content not found",
		})
	}

	user, ok := cc.Store.users[currentUserID(c)]
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "User not found",
		})
	}
	content.Questions = append(content.Questions, models.Question{
		ID:        newID("question"),
		UserID:    user.ID,
		UserName:  user.Name,
		Question:  input.Question,
		CreatedAt: time.Now().UTC(),
	})

	return c.JSON(fiber.Map{"success": true})
}

func (cc *CoursesController) AddAnswer(c *fiber.Ctx) error {
	var input struct {
		CourseID   string `json:"courseId"`
		ContentID  string `json:"contentId"`
		QuestionID string `json:"questionId"`
		Answer     string `json:"answer"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	cc.Store.mu.Lock()
	defer cc.Store.mu.Unlock()

	content := cc.findContent(input.CourseID, input.ContentID)
	if content == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Content not found",
		})
	}

	user, ok := cc.Store.users[currentUserID(c)]
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "User not found",
		})
	}
	for i := range content.Questions {
		if content.Questions[i].ID == input.QuestionID {
			content.Questions[i].Replies = append(content.Questions[i].Replies, models.Answer{
				ID:        newID("answer"),
				UserID:    user.ID,
				UserName:  user.Name,
				Answer:    input.Answer,
				CreatedAt: time.Now().UTC(),
			})
			return c.JSON(fiber.Map{"success": true})
		}
	}

	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"success": false,
		"message": "Question not found",
	})
}

// AddReaction toggles the caller's like/dislike, keeping the two mutually
// exclusive, and returns the authoritative arrays.
func (cc *CoursesController) AddReaction(c *fiber.Ctx) error {
	var input struct {
		CourseID  string `json:"courseId"`
		ContentID string `json:"contentId"`
		Reaction  string `json:"reaction"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if input.Reaction != "like" && input.Reaction != "dislike" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Unknown reaction",
		})
	}

	cc.Store.mu.Lock()
	defer cc.Store.mu.Unlock()

	content := cc.findContent(input.CourseID, input.ContentID)
	if content == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Content not found",
		})
	}

	userID := currentUserID(c)
	if input.Reaction == "like" {
		content.Dislikes = without(content.Dislikes, userID)
		if contains(content.Likes, userID) {
			content.Likes = without(content.Likes, userID)
		} else {
			content.Likes = append(content.Likes, userID)
		}
	} else {
		content.Likes = without(content.Likes, userID)
		if contains(content.Dislikes, userID) {
			content.Dislikes = without(content.Dislikes, userID)
		} else {
			content.Dislikes = append(content.Dislikes, userID)
		}
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"likes":    content.Likes,
		"dislikes": content.Dislikes,
	})
}

// findContent walks the course's lecture list. Caller holds the lock.
func (cc *CoursesController) findContent(courseID, contentID string) *models.CourseContent {
	course, ok := cc.Store.courses[courseID]
	if !ok {
		return nil
	}
	for i := range course.CourseData {
		if course.CourseData[i].ID == contentID {
			return &course.CourseData[i]
		}
	}
	return nil
}

func contains(list []string, id string) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}

func without(list []string, id string) []string {
	out := list[:0]
	for _, v := range list {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
