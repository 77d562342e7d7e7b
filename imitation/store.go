package imitation

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/neelammkw/elearning-client/models"
)

// Store holds the imitation fixtures in memory. The real platform owns all
// durable state; this exists so the client can be developed and integration
// tested without it.
type Store struct {
	mu sync.RWMutex

	users         map[string]*models.User
	passwords     map[string]string // email -> password
	courses       map[string]*models.Course
	orders        map[string]*models.Order
	notifications map[string]*models.Notification
	intents       map[string]*paymentIntent // intent id -> intent
}

type paymentIntent struct {
	ID           string
	ClientSecret string
	OrderID      string
	CourseID     string
	UserID       string
	Amount       float64
}

func NewStore() *Store {
	s := &Store{
		users:         make(map[string]*models.User),
		passwords:     make(map[string]string),
		courses:       make(map[string]*models.Course),
		orders:        make(map[string]*models.Order),
		notifications: make(map[string]*models.Notification),
		intents:       make(map[string]*paymentIntent),
	}
	s.seed()
	return s
}

func (s *Store) seed() {
	now := time.Now().UTC()

	admin := &models.User{
		ID:        "user_admin",
		Name:      "Admin",
		Email:     "admin@example.com",
		Role:      "admin",
		CreatedAt: now.AddDate(0, -6, 0),
	}
	learner := &models.User{
		ID:        "user_learner",
		Name:      "Learner",
		Email:     "learner@example.com",
		Role:      "user",
		CreatedAt: now.AddDate(0, -2, 0),
	}
	s.users[admin.ID] = admin
	s.users[learner.ID] = learner
	s.passwords[admin.Email] = "admin-password"
	s.passwords[learner.Email] = "learner-password"

	course := &models.Course{
		ID:          "course_go",
		Name:        "Practical Go",
		Description: "Build services in Go",
		Categories:  "Programming",
		Price:       49,
		Level:       "intermediate",
		Benefits:    []models.Benefit{{Title: "Ship production services"}},
		CourseData: []models.CourseContent{
			{
				ID:           "content_1",
				Title:        "Getting started",
				Description:  "Tooling and project layout",
				VideoSection: "Basics",
				VideoURL:     models.VideoRef{URL: "https://videos.example.com/go-1"},
				VideoLength:  12,
				Links:        []models.CourseLink{{Title: "Docs", URL: "https://go.dev/doc"}},
			},
			{
				ID:           "content_2",
				Title:        "HTTP clients",
				Description:  "Talking to remote APIs",
				VideoSection: "Networking",
				VideoURL:     models.VideoRef{URL: "https://videos.example.com/go-2"},
				VideoLength:  18,
				Links:        []models.CourseLink{{Title: "net/http", URL: "https://pkg.go.dev/net/http"}},
			},
		},
		CreatedAt: now.AddDate(0, -3, 0),
	}
	free := &models.Course{
		ID:          "course_intro",
		Name:        "Intro to the Platform",
		Description: "Free starter course",
		Categories:  "Onboarding",
		Price:       0,
		Level:       "beginner",
		CourseData: []models.CourseContent{
			{
				ID:           "content_intro",
				Title:        "Welcome",
				Description:  "Tour of the platform",
				VideoSection: "Welcome",
				VideoURL:     models.VideoRef{URL: "https://videos.example.com/intro"},
				VideoLength:  5,
				Links:        []models.CourseLink{{Title: "Help", URL: "https://example.com/help"}},
			},
		},
		CreatedAt: now.AddDate(0, -1, 0),
	}
	s.courses[course.ID] = course
	s.courses[free.ID] = free

	s.notifications["notif_1"] = &models.Notification{
		ID:        "notif_1",
		UserID:    admin.ID,
		Title:     "New order",
		Message:   "Learner purchased Practical Go",
		Status:    "unread",
		CreatedAt: now,
	}
}

func newID(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, uuid.NewString())
}
