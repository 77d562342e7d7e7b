package authoring

import (
	"github.com/neelammkw/elearning-client/models"
)

// Command is the wizard's mutation surface.
type Command interface {
	apply(w *Wizard) error
}

// SetInformation replaces the step-0 fields.
type SetInformation struct {
	Name           string
	Description    string
	Categories     string
	Price          *float64
	EstimatedPrice *float64
	Tags           string
	Level          string
}

func (c SetInformation) apply(w *Wizard) error {
	w.draft.Name = c.Name
	w.draft.Description = c.Description
	w.draft.Categories = c.Categories
	w.draft.Price = c.Price
	w.draft.EstimatedPrice = c.EstimatedPrice
	w.draft.Tags = c.Tags
	w.draft.Level = c.Level
	return nil
}

type SetThumbnail struct {
	File *Upload
}

func (c SetThumbnail) apply(w *Wizard) error {
	w.draft.ThumbnailFile = c.File
	return nil
}

type SetDemoVideo struct {
	File *Upload
	Ref  models.VideoRef
}

func (c SetDemoVideo) apply(w *Wizard) error {
	w.draft.DemoFile = c.File
	if !c.Ref.IsZero() {
		w.draft.DemoURL = c.Ref
	}
	return nil
}

type SetBenefits struct {
	Benefits []models.Benefit
}

func (c SetBenefits) apply(w *Wizard) error {
	w.draft.Benefits = append([]models.Benefit(nil), c.Benefits...)
	return nil
}

type SetPrerequisites struct {
	Prerequisites []models.Prerequisite
}

func (c SetPrerequisites) apply(w *Wizard) error {
	w.draft.Prerequisites = append([]models.Prerequisite(nil), c.Prerequisites...)
	return nil
}

// UpdateContentItem replaces one lecture in place.
type UpdateContentItem struct {
	Index int
	Item  models.CourseContent
}

func (c UpdateContentItem) apply(w *Wizard) error {
	if c.Index < 0 || c.Index >= len(w.draft.Content) {
		return w.fail("No such content item")
	}
	item := c.Item
	item.VideoURL = models.NormalizeVideoRef(item.VideoURL)
	w.draft.Content[c.Index] = item
	return nil
}

type AttachContentVideo struct {
	Index int
	File  *Upload
}

func (c AttachContentVideo) apply(w *Wizard) error {
	if c.Index < 0 || c.Index >= len(w.draft.Content) {
		return w.fail("No such content item")
	}
	w.draft.ContentFiles[c.Index] = c.File
	return nil
}

// AddContentItem appends a new lecture into the current (last) section. The
// trailing item must be complete first.
type AddContentItem struct{}

func (AddContentItem) apply(w *Wizard) error {
	if !w.lastContentComplete() {
		return w.fail("Please fill all the fields first!")
	}
	last := w.draft.Content[len(w.draft.Content)-1]
	w.draft.Content = append(w.draft.Content, emptyContentItem(last.VideoSection))
	return nil
}

// AddSection appends a new lecture opening a new section.
type AddSection struct {
	Name string
}

func (c AddSection) apply(w *Wizard) error {
	if !w.lastContentComplete() {
		return w.fail("Please fill all the fields first!")
	}
	name := c.Name
	if name == "" {
		name = "Untitled Section"
	}
	w.draft.Content = append(w.draft.Content, emptyContentItem(name))
	return nil
}

// NextStep advances the wizard, enforcing the per-step gates.
type NextStep struct{}

func (NextStep) apply(w *Wizard) error {
	switch w.active {
	case StepInformation:
		if !w.informationComplete() {
			return w.fail("Please fill all the required fields!")
		}
	case StepData:
		if !w.dataStepComplete() {
			return w.fail("Please fill the fields for going to next!")
		}
	case StepContent:
		if !w.lastContentComplete() {
			return w.fail("Section can't be empty!")
		}
	case StepPreview:
		return nil
	}
	w.active++
	return nil
}

type PrevStep struct{}

func (PrevStep) apply(w *Wizard) error {
	if w.active > StepInformation {
		w.active--
	}
	return nil
}
