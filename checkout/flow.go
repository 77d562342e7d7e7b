package checkout

import (
	"context"
	"time"

	"github.com/neelammkw/elearning-client/api"
	"github.com/neelammkw/elearning-client/models"
	"github.com/neelammkw/elearning-client/notify"
	"github.com/neelammkw/elearning-client/session"
)

// State is the purchase position for one course-detail page instance.
type State int

const (
	StateIdle State = iota
	StateCreatingIntent
	StateModalOpen
	StateSubmitting
	StateSucceeded
	StateRedirecting
)

// ConfirmResult is what the payment SDK reports back.
type ConfirmResult struct {
	IntentID string
	Status   string
}

// PaymentConfirmer abstracts the Stripe confirm call so the flow can be
// driven by fakes in tests.
type PaymentConfirmer interface {
	ConfirmPayment(ctx context.Context, clientSecret string) (ConfirmResult, error)
}

// Flow orchestrates enrollment check, payment-intent creation, confirmation
// and post-payment order confirmation. It is the single owner of intent
// creation; the checkout form receives the resolved client secret from here
// instead of racing a second create call.
type Flow struct {
	Payments  *api.PaymentAPI
	Courses   *api.CoursesAPI
	Session   *session.Session
	Confirmer PaymentConfirmer
	Toaster   notify.Toaster
	Navigate  func(path string)

	// RedirectDelay defaults to 2s; tests shorten it.
	RedirectDelay time.Duration

	state    State
	errText  string
	course   models.Course
	intent   api.PaymentIntent
	enrolled bool
}

func (f *Flow) State() State {
	return f.state
}

// Err is the inline, user-visible error. Cleared on the next attempt.
func (f *Flow) Err() string {
	return f.errText
}

func (f *Flow) ClientSecret() string {
	return f.intent.ClientSecret
}

// LoadEnrollment resolves the Enrolled/NotEnrolled branch. Without an
// authenticated user id the query is never issued: zero network calls and
// not-enrolled by default.
func (f *Flow) LoadEnrollment(ctx context.Context, courseID string) (bool, error) {
	if _, ok := f.Session.UserID(); !ok {
		f.enrolled = false
		return false, nil
	}
	enrolled, err := f.Courses.CheckEnrollment(ctx, courseID)
	if err != nil {
		return false, err
	}
	f.enrolled = enrolled
	return enrolled, nil
}

func (f *Flow) IsEnrolled() bool {
	return f.enrolled
}

// Buy starts the purchase. Free courses enroll directly and never touch the
// payment service. A failed intent creation leaves the modal closed with an
// inline error; the user must click again — there is no retry loop.
func (f *Flow) Buy(ctx context.Context, course models.Course) error {
	f.errText = ""
	f.course = course

	if course.Price == 0 {
		if err := f.Courses.EnrollFree(ctx, course.ID); err != nil {
			f.errText = api.ErrorMessage(err, "Failed to enroll. Please try again.")
			f.state = StateIdle
			return err
		}
		f.enrolled = true
		f.state = StateSucceeded
		f.Toaster.Success("Enrolled successfully")
		return nil
	}

	f.state = StateCreatingIntent
	intent, err := f.Payments.CreatePaymentIntent(ctx, course.ID)
	if err != nil {
		f.errText = "Failed to initialize payment. Please Login."
		f.state = StateIdle
		return err
	}

	f.intent = intent
	f.state = StateModalOpen
	return nil
}

// Confirm drives the Stripe confirmation and, only after the intent reports
// succeeded, the server-side order confirmation. The redirect to the course
// fires exactly once, after both resolve, delayed by RedirectDelay. Any
// error leaves the form interactive for an immediate retry.
func (f *Flow) Confirm(ctx context.Context) error {
	if f.state != StateModalOpen {
		return nil
	}
	f.state = StateSubmitting
	f.errText = ""

	result, err := f.Confirmer.ConfirmPayment(ctx, f.intent.ClientSecret)
	if err != nil {
		f.errText = err.Error()
		f.state = StateModalOpen
		return err
	}
	if result.Status != "succeeded" {
		f.errText = "Payment was not completed. Please try again."
		f.state = StateModalOpen
		return nil
	}

	err = f.Payments.ConfirmOrder(ctx, api.ConfirmOrderRequest{
		PaymentIntentID: result.IntentID,
		OrderID:         f.intent.OrderID,
		CourseID:        f.course.ID,
	})
	if err != nil {
		f.errText = api.ErrorMessage(err, "Failed to confirm the order")
		f.state = StateModalOpen
		return err
	}

	f.enrolled = true
	f.state = StateSucceeded
	f.Toaster.Success("Payment successful!")

	delay := f.RedirectDelay
	if delay == 0 {
		delay = 2 * time.Second
	}

	f.state = StateRedirecting
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
	}
	if f.Navigate != nil {
		f.Navigate("/course-access/" + f.course.ID)
	}
	return nil
}
