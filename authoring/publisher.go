package authoring

import (
	"context"

	"github.com/neelammkw/elearning-client/api"
	"github.com/neelammkw/elearning-client/notify"
)

// Publisher is the authoring container: it gates the final submission,
// assembles the payload, invokes the create/edit mutation and navigates on
// success.
type Publisher struct {
	Courses  *api.CoursesAPI
	Toaster  notify.Toaster
	Navigate func(path string)
}

// Submit publishes the draft. The required-field gate (name, description,
// price) aborts with a toast and no network call. Server errors toast the
// server-provided message when present.
func (p *Publisher) Submit(ctx context.Context, w *Wizard) error {
	if !w.informationComplete() {
		p.Toaster.Error("Please fill all the required fields!")
		return ErrValidation
	}

	contentType, body, err := BuildPayload(w.Draft())
	if err != nil {
		p.Toaster.Error("Failed to prepare the course payload")
		return err
	}

	if id := w.EditID(); id != "" {
		_, err = p.Courses.EditCourse(ctx, id, contentType, body)
	} else {
		_, err = p.Courses.CreateCourse(ctx, contentType, body)
	}
	if err != nil {
		p.Toaster.Error(api.ErrorMessage(err, "Failed to save the course"))
		return err
	}

	if w.EditID() != "" {
		p.Toaster.Success("Course updated successfully")
	} else {
		p.Toaster.Success("Course created successfully")
	}
	if p.Navigate != nil {
		p.Navigate("/admin/courses")
	}
	return nil
}
