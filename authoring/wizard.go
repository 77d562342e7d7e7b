package authoring

import (
	"errors"

	"github.com/neelammkw/elearning-client/models"
	"github.com/neelammkw/elearning-client/notify"
)

// Step is the wizard position. The four steps are strictly linear.
type Step int

const (
	StepInformation Step = iota
	StepData
	StepContent
	StepPreview
)

// ErrValidation means a gate rejected the command; the draft and the active
// step are untouched and exactly one toast was emitted.
var ErrValidation = errors.New("authoring: validation failed")

// Upload is a file retained for the multipart submission, alongside the
// data-URL preview shown while authoring.
type Upload struct {
	Name    string
	Data    []byte
	Preview string
}

// Draft is the client-only course being authored. It exists from wizard
// mount to successful submission and is never persisted.
type Draft struct {
	Name           string
	Description    string
	Categories     string
	Price          *float64
	EstimatedPrice *float64
	Tags           string
	Level          string
	DemoURL        models.VideoRef
	DemoFile       *Upload
	Thumbnail      models.Thumbnail
	ThumbnailFile  *Upload
	Benefits       []models.Benefit
	Prerequisites  []models.Prerequisite
	Content        []models.CourseContent
	ContentFiles   map[int]*Upload // index into Content -> video file
}

// Wizard owns the draft lifecycle. Steps mutate it only through Dispatch, so
// each step depends on the command surface instead of setter closures.
type Wizard struct {
	draft   Draft
	active  Step
	editID  string
	toaster notify.Toaster
}

func NewWizard(toaster notify.Toaster) *Wizard {
	if toaster == nil {
		toaster = notify.Discard{}
	}
	return &Wizard{
		draft: Draft{
			Benefits:      []models.Benefit{{}},
			Prerequisites: []models.Prerequisite{{}},
			Content:       []models.CourseContent{emptyContentItem("Untitled Section")},
			ContentFiles:  make(map[int]*Upload),
		},
		toaster: toaster,
	}
}

// EditWizard hydrates the draft from a fetched course. Video references are
// re-normalized on mount so legacy shapes can't leak past this point.
func EditWizard(course models.Course, toaster notify.Toaster) *Wizard {
	w := NewWizard(toaster)
	w.editID = course.ID

	price := course.Price
	estimated := course.EstimatedPrice

	content := make([]models.CourseContent, len(course.CourseData))
	copy(content, course.CourseData)
	for i := range content {
		content[i].VideoURL = models.NormalizeVideoRef(content[i].VideoURL)
	}

	w.draft = Draft{
		Name:           course.Name,
		Description:    course.Description,
		Categories:     course.Categories,
		Price:          &price,
		EstimatedPrice: &estimated,
		Tags:           course.Tags,
		Level:          course.Level,
		DemoURL:        models.NormalizeVideoRef(course.DemoURL),
		Thumbnail:      course.Thumbnail,
		Benefits:       append([]models.Benefit(nil), course.Benefits...),
		Prerequisites:  append([]models.Prerequisite(nil), course.Prerequisites...),
		Content:        content,
		ContentFiles:   make(map[int]*Upload),
	}
	if len(w.draft.Benefits) == 0 {
		w.draft.Benefits = []models.Benefit{{}}
	}
	if len(w.draft.Prerequisites) == 0 {
		w.draft.Prerequisites = []models.Prerequisite{{}}
	}
	if len(w.draft.Content) == 0 {
		w.draft.Content = []models.CourseContent{emptyContentItem("Untitled Section")}
	}
	return w
}

func emptyContentItem(section string) models.CourseContent {
	return models.CourseContent{
		VideoSection: section,
		Links:        []models.CourseLink{{}},
	}
}

func (w *Wizard) Active() Step {
	return w.active
}

// EditID is the course being edited, empty for a fresh draft.
func (w *Wizard) EditID() string {
	return w.editID
}

// Draft returns a copy; mutations go through Dispatch. Uploads are shared —
// commands replace them whole, never mutate them in place.
func (w *Wizard) Draft() Draft {
	d := w.draft
	d.Benefits = append([]models.Benefit(nil), w.draft.Benefits...)
	d.Prerequisites = append([]models.Prerequisite(nil), w.draft.Prerequisites...)
	d.Content = append([]models.CourseContent(nil), w.draft.Content...)
	for i := range d.Content {
		d.Content[i].Links = append([]models.CourseLink(nil), d.Content[i].Links...)
	}
	d.ContentFiles = make(map[int]*Upload, len(w.draft.ContentFiles))
	for i, f := range w.draft.ContentFiles {
		d.ContentFiles[i] = f
	}
	return d
}

func (w *Wizard) Dispatch(cmd Command) error {
	return cmd.apply(w)
}

// fail emits the single validation toast and reports ErrValidation without
// touching state.
func (w *Wizard) fail(message string) error {
	w.toaster.Error(message)
	return ErrValidation
}

// lastContentComplete is the content-step gate: the trailing item must have
// a title, description, resolved video, one complete link and a positive
// length before anything may be appended or the step advanced.
func (w *Wizard) lastContentComplete() bool {
	if len(w.draft.Content) == 0 {
		return false
	}
	item := w.draft.Content[len(w.draft.Content)-1]
	if item.Title == "" || item.Description == "" || item.VideoURL.URL == "" {
		return false
	}
	if len(item.Links) == 0 || item.Links[0].Title == "" || item.Links[0].URL == "" {
		return false
	}
	return item.VideoLength > 0
}

// dataStepComplete gates leaving the benefits/prerequisites step.
func (w *Wizard) dataStepComplete() bool {
	if len(w.draft.Benefits) == 0 || len(w.draft.Prerequisites) == 0 {
		return false
	}
	if w.draft.Benefits[len(w.draft.Benefits)-1].Title == "" {
		return false
	}
	return w.draft.Prerequisites[len(w.draft.Prerequisites)-1].Title != ""
}

// informationComplete gates both leaving step 0 and the final submission.
func (w *Wizard) informationComplete() bool {
	return w.draft.Name != "" && w.draft.Description != "" && w.draft.Price != nil
}
