package consumption

import (
	"context"

	"github.com/neelammkw/elearning-client/api"
	"github.com/neelammkw/elearning-client/models"
	"github.com/neelammkw/elearning-client/notify"
	"github.com/neelammkw/elearning-client/session"
)

// Section is a consumption-side group of lectures.
type Section struct {
	Title   string
	Items   []models.CourseContent
	Indexes []int // positions in the flat server list
}

// GroupByFirstSeenSection groups lectures by VideoSection value in
// first-seen order. Unlike the authoring rule (adjacency — see
// authoring.GroupByAdjacentSection), equal section names always land in the
// same group regardless of position, because the server may return content
// in any order. The two rules are independent and must stay that way.
func GroupByFirstSeenSection(items []models.CourseContent) []Section {
	var sections []Section
	position := make(map[string]int)

	for i, item := range items {
		idx, seen := position[item.VideoSection]
		if !seen {
			idx = len(sections)
			position[item.VideoSection] = idx
			sections = append(sections, Section{Title: item.VideoSection})
		}
		sections[idx].Items = append(sections[idx].Items, item)
		sections[idx].Indexes = append(sections[idx].Indexes, i)
	}
	return sections
}

// Player renders a purchased course: it tracks the active lecture and
// issues engagement mutations against it. Every mutation is followed by an
// unconditional content refetch — the list itself is never updated
// optimistically, so a failed mutation leaves no stale inserted item.
type Player struct {
	Courses *api.CoursesAPI
	Client  *api.Client
	Session *session.Session
	Toaster notify.Toaster

	courseID string
	content  []models.CourseContent
	active   int
}

func (p *Player) Load(ctx context.Context, courseID string) error {
	p.courseID = courseID
	return p.refetch(ctx)
}

func (p *Player) refetch(ctx context.Context) error {
	// Drop the cached copy first so the refetch is a real round trip.
	p.Client.InvalidateTags(api.TagCourses)
	content, err := p.Courses.GetCourseContent(ctx, p.courseID)
	if err != nil {
		return err
	}
	p.content = content
	if p.active >= len(content) {
		p.active = 0
	}
	return nil
}

func (p *Player) Sections() []Section {
	return GroupByFirstSeenSection(p.content)
}

func (p *Player) ActiveIndex() int {
	return p.active
}

func (p *Player) Active() (models.CourseContent, bool) {
	if p.active < 0 || p.active >= len(p.content) {
		return models.CourseContent{}, false
	}
	return p.content[p.active], true
}

func (p *Player) SetActive(index int) {
	if index >= 0 && index < len(p.content) {
		p.active = index
	}
}

// Next advances to the following lecture, crossing section boundaries.
// No-op on the absolute last lecture.
func (p *Player) Next() {
	if p.active < len(p.content)-1 {
		p.active++
	}
}

// Prev steps back, crossing section boundaries. No-op on the first lecture.
func (p *Player) Prev() {
	if p.active > 0 {
		p.active--
	}
}
