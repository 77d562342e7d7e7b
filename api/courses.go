package api

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/neelammkw/elearning-client/models"
)

type CoursesAPI struct {
	client *Client
}

func NewCoursesAPI(client *Client) *CoursesAPI {
	return &CoursesAPI{client: client}
}

func (a *CoursesAPI) GetAllCourses(ctx context.Context) ([]models.Course, error) {
	var resp struct {
		Success bool            `json:"success"`
		Courses []models.Course `json:"courses"`
	}
	if err := a.client.get(ctx, "get-all-courses", &resp, TagCourses); err != nil {
		return nil, err
	}
	return resp.Courses, nil
}

func (a *CoursesAPI) GetCourse(ctx context.Context, id string) (models.Course, error) {
	var resp struct {
		Success bool          `json:"success"`
		Course  models.Course `json:"course"`
	}
	if err := a.client.get(ctx, "get-course/"+id, &resp, TagCourses); err != nil {
		return models.Course{}, err
	}
	return resp.Course, nil
}

// GetCourseContent returns the full lecture list for a purchased course.
func (a *CoursesAPI) GetCourseContent(ctx context.Context, id string) ([]models.CourseContent, error) {
	var resp struct {
		Success bool `json:"success"`
		Content struct {
			CourseData []models.CourseContent `json:"courseData"`
		} `json:"content"`
	}
	if err := a.client.get(ctx, "get-course-content/"+id, &resp, TagCourses); err != nil {
		return nil, err
	}
	return resp.Content.CourseData, nil
}

func (a *CoursesAPI) SearchCourses(ctx context.Context, term string) ([]models.Course, error) {
	var resp struct {
		Success bool            `json:"success"`
		Courses []models.Course `json:"courses"`
	}
	path := "get-all-courses?search=" + url.QueryEscape(term)
	if err := a.client.get(ctx, path, &resp, TagCourses); err != nil {
		return nil, err
	}
	return resp.Courses, nil
}

// CreateCourse submits the assembled multipart authoring payload.
func (a *CoursesAPI) CreateCourse(ctx context.Context, contentType string, body io.Reader) (models.Course, error) {
	var resp struct {
		Success bool          `json:"success"`
		Course  models.Course `json:"course"`
	}
	err := a.client.mutateMultipart(ctx, http.MethodPost, "create-course", contentType, body, &resp, TagCourses)
	if err != nil {
		return models.Course{}, err
	}
	return resp.Course, nil
}

func (a *CoursesAPI) EditCourse(ctx context.Context, id, contentType string, body io.Reader) (models.Course, error) {
	var resp struct {
		Success bool          `json:"success"`
		Course  models.Course `json:"course"`
	}
	err := a.client.mutateMultipart(ctx, http.MethodPut, "edit-course/"+id, contentType, body, &resp, TagCourses)
	if err != nil {
		return models.Course{}, err
	}
	return resp.Course, nil
}

func (a *CoursesAPI) DeleteCourse(ctx context.Context, id string) error {
	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	return a.client.mutate(ctx, http.MethodDelete, "delete-course/"+id, nil, &resp, TagCourses)
}

// CheckEnrollment reports whether the current user owns the course. Callers
// must not invoke this without an authenticated session.
func (a *CoursesAPI) CheckEnrollment(ctx context.Context, courseID string) (bool, error) {
	var resp struct {
		Success    bool `json:"success"`
		IsEnrolled bool `json:"isEnrolled"`
	}
	if err := a.client.get(ctx, "check-course-enrollment/"+courseID, &resp, TagEnrollment); err != nil {
		return false, err
	}
	return resp.IsEnrolled, nil
}

// EnrollFree enrolls the user directly, bypassing payment. Only valid for
// price-zero courses.
func (a *CoursesAPI) EnrollFree(ctx context.Context, courseID string) error {
	body := map[string]string{"courseId": courseID}
	return a.client.mutate(ctx, http.MethodPost, "enroll-course", body, nil, TagEnrollment, TagOrders)
}

type ReviewRequest struct {
	CourseID string `json:"courseId"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}

func (a *CoursesAPI) AddReview(ctx context.Context, req ReviewRequest) error {
	if strings.TrimSpace(req.Comment) == "" {
		return &APIError{StatusCode: http.StatusBadRequest, Message: "Review can't be empty"}
	}
	return a.client.mutate(ctx, http.MethodPut, "add-review/"+req.CourseID, req, nil, TagCourses)
}

type ReviewReplyRequest struct {
	CourseID string `json:"courseId"`
	ReviewID string `json:"reviewId"`
	Comment  string `json:"comment"`
}

func (a *CoursesAPI) AddReviewReply(ctx context.Context, req ReviewReplyRequest) error {
	return a.client.mutate(ctx, http.MethodPut, "add-reply", req, nil, TagCourses)
}

type QuestionRequest struct {
	CourseID  string `json:"courseId"`
	ContentID string `json:"contentId"`
	Question  string `json:"question"`
}

func (a *CoursesAPI) AddQuestion(ctx context.Context, req QuestionRequest) error {
	if strings.TrimSpace(req.Question) == "" {
		return &APIError{StatusCode: http.StatusBadRequest, Message: "Question can't be empty"}
	}
	return a.client.mutate(ctx, http.MethodPut, "add-question", req, nil, TagCourses)
}

type AnswerRequest struct {
	CourseID   string `json:"courseId"`
	ContentID  string `json:"contentId"`
	QuestionID string `json:"questionId"`
	Answer     string `json:"answer"`
}

func (a *CoursesAPI) AddAnswer(ctx context.Context, req AnswerRequest) error {
	return a.client.mutate(ctx, http.MethodPut, "add-answer", req, nil, TagCourses)
}

type ReactionRequest struct {
	CourseID  string `json:"courseId"`
	ContentID string `json:"contentId"`
	Reaction  string `json:"reaction"` // "like" or "dislike"
}

// AddReaction toggles a like/dislike on a lecture and returns the
// authoritative reaction arrays from the server.
func (a *CoursesAPI) AddReaction(ctx context.Context, req ReactionRequest) (likes, dislikes []string, err error) {
	var resp struct {
		Success  bool     `json:"success"`
		Likes    []string `json:"likes"`
		Dislikes []string `json:"dislikes"`
	}
	if err := a.client.mutate(ctx, http.MethodPut, "add-reaction", req, &resp, TagCourses); err != nil {
		return nil, nil, err
	}
	return resp.Likes, resp.Dislikes, nil
}
