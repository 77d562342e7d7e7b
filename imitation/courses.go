package imitation

import (
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/neelammkw/elearning-client/config"
	"github.com/neelammkw/elearning-client/models"
)

type CoursesController struct {
	Store *Store
	Cfg   *config.Config
}

func NewCoursesController(store *Store, cfg *config.Config) *CoursesController {
	return &CoursesController{Store: store, Cfg: cfg}
}

func (cc *CoursesController) GetAllCourses(c *fiber.Ctx) error {
	search := strings.ToLower(c.Query("search"))

	cc.Store.mu.RLock()
	var courses []models.Course
	for _, course := range cc.Store.courses {
		if search != "" && !strings.Contains(strings.ToLower(course.Name), search) &&
			!strings.Contains(strings.ToLower(course.Tags), search) {
			continue
		}
		courses = append(courses, *course)
	}
	cc.Store.mu.RUnlock()

	sort.Slice(courses, func(i, j int) bool {
		return courses[i].CreatedAt.After(courses[j].CreatedAt)
	})

	return c.JSON(fiber.Map{
		"success": true,
		"courses": courses,
	})
}

func (cc *CoursesController) GetCourse(c *fiber.Ctx) error {
	cc.Store.mu.RLock()
	course, ok := cc.Store.courses[c.Params("id")]
	cc.Store.mu.RUnlock()
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Course not found",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"course":  *course,
	})
}

// GetCourseContent serves the full lecture list, purchased users only.
func (cc *CoursesController) GetCourseContent(c *fiber.Ctx) error {
	userID := currentUserID(c)
	courseID := c.Params("id")

	cc.Store.mu.RLock()
	course, ok := cc.Store.courses[courseID]
	user, userOK := cc.Store.users[userID]
	cc.Store.mu.RUnlock()

	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Course not found",
		})
	}
	if !userOK || !user.IsEnrolled(courseID) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"message": "You are not eligible to access this course",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"content": fiber.Map{
			"courseData": course.CourseData,
		},
	})
}

func (cc *CoursesController) CheckEnrollment(c *fiber.Ctx) error {
	userID := currentUserID(c)
	courseID := c.Params("id")

	cc.Store.mu.RLock()
	user, ok := cc.Store.users[userID]
	enrolled := ok && user.IsEnrolled(courseID)
	cc.Store.mu.RUnlock()

	return c.JSON(fiber.Map{
		"success":    true,
		"isEnrolled": enrolled,
	})
}

func (cc *CoursesController) EnrollFree(c *fiber.Ctx) error {
	var input struct {
		CourseID string `json:"courseId"`
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
	if course.Price != 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "This course is not free",
		})
	}

	user, ok := cc.Store.users[currentUserID(c)]
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "User not found",
		})
	}
	if !user.IsEnrolled(course.ID) {
		user.Courses = append(user.Courses, course.ID)
		course.Purchased++
	}

	return c.JSON(fiber.Map{"success": true})
}

// CreateCourse accepts the authoring wizard's multipart payload: the
// courseData JSON field plus optional binary parts, which the imitation
// acknowledges but does not store.
func (cc *CoursesController) CreateCourse(c *fiber.Ctx) error {
	course, err := parseCoursePayload(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	course.ID = newID("course")
	course.CreatedAt = time.Now().UTC()

	cc.Store.mu.Lock()
	cc.Store.courses[course.ID] = &course
	cc.Store.mu.Unlock()

	return c.JSON(fiber.Map{
		"success": true,
		"course":  course,
	})
}

func (cc *CoursesController) EditCourse(c *fiber.Ctx) error {
	courseID := c.Params("id")

	updated, err := parseCoursePayload(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
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

	updated.ID = course.ID
	updated.CreatedAt = course.CreatedAt
	updated.Purchased = course.Purchased
	updated.Reviews = course.Reviews
	cc.Store.courses[courseID] = &updated

	return c.JSON(fiber.Map{
		"success": true,
		"course":  updated,
	})
}

func parseCoursePayload(c *fiber.Ctx) (models.Course, error) {
	raw := c.FormValue("courseData")
	if raw == "" {
		return models.Course{}, fiber.NewError(fiber.StatusBadRequest, "Missing courseData field")
	}

	var course models.Course
	if err := json.Unmarshal([]byte(raw), &course); err != nil {
		return models.Course{}, fiber.NewError(fiber.StatusBadRequest, "Invalid courseData JSON")
	}
	if course.Name == "" || course.Description == "" {
		return models.Course{}, fiber.NewError(fiber.StatusBadRequest, "Name and description are required")
	}
	return course, nil
}

func (cc *CoursesController) DeleteCourse(c *fiber.Ctx) error {
	courseID := c.Params("id")

	cc.Store.mu.Lock()
	defer cc.Store.mu.Unlock()

	if _, ok := cc.Store.courses[courseID]; !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Course not found",
		})
	}
	delete(cc.Store.courses, courseID)

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Course deleted successfully",
	})
}
