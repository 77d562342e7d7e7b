package consumption

import (
	"context"

	"github.com/neelammkw/elearning-client/api"
)

// Liked/Disliked are re-derived from the server arrays on every read, never
// stored as separate local state.
func (p *Player) Liked() bool {
	return p.reactedBy("like")
}

func (p *Player) Disliked() bool {
	return p.reactedBy("dislike")
}

func (p *Player) reactedBy(kind string) bool {
	item, ok := p.Active()
	if !ok {
		return false
	}
	userID, ok := p.Session.UserID()
	if !ok {
		return false
	}
	list := item.Likes
	if kind == "dislike" {
		list = item.Dislikes
	}
	for _, id := range list {
		if id == userID {
			return true
		}
	}
	return false
}

// ToggleReaction flips a like or dislike. The two are mutually exclusive:
// liking while disliked clears the dislike optimistically on the toggle,
// but the authoritative arrays are whatever the mutation returns, and a
// refetch reconciles afterwards either way.
func (p *Player) ToggleReaction(ctx context.Context, kind string) error {
	item, ok := p.Active()
	if !ok {
		return nil
	}
	userID, ok := p.Session.UserID()
	if !ok {
		return nil
	}

	// Optimistic exclusive toggle on the local copy.
	local := &p.content[p.active]
	if kind == "like" {
		local.Dislikes = removeID(local.Dislikes, userID)
		if containsID(local.Likes, userID) {
			local.Likes = removeID(local.Likes, userID)
		} else {
			local.Likes = append(local.Likes, userID)
		}
	} else {
		local.Likes = removeID(local.Likes, userID)
		if containsID(local.Dislikes, userID) {
			local.Dislikes = removeID(local.Dislikes, userID)
		} else {
			local.Dislikes = append(local.Dislikes, userID)
		}
	}

	likes, dislikes, err := p.Courses.AddReaction(ctx, api.ReactionRequest{
		CourseID:  p.courseID,
		ContentID: item.ID,
		Reaction:  kind,
	})
	if err != nil {
		p.Toaster.Error(api.ErrorMessage(err, "Something went wrong"))
		return p.refetch(ctx)
	}

	local.Likes = likes
	local.Dislikes = dislikes
	return p.refetch(ctx)
}

func containsID(list []string, id string) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}

func removeID(list []string, id string) []string {
	out := list[:0]
	for _, v := range list {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// SubmitReview posts a course review: the input is cleared by the caller
// before the await, the outcome is toasted, and the content is refetched
// unconditionally.
func (p *Player) SubmitReview(ctx context.Context, rating int, comment string) error {
	err := p.Courses.AddReview(ctx, api.ReviewRequest{
		CourseID: p.courseID,
		Rating:   rating,
		Comment:  comment,
	})
	if err != nil {
		p.Toaster.Error(api.ErrorMessage(err, "Failed to submit the review"))
	} else {
		p.Toaster.Success("Review submitted successfully")
	}
	return p.refetch(ctx)
}

func (p *Player) SubmitReviewReply(ctx context.Context, reviewID, comment string) error {
	err := p.Courses.AddReviewReply(ctx, api.ReviewReplyRequest{
		CourseID: p.courseID,
		ReviewID: reviewID,
		Comment:  comment,
	})
	if err != nil {
		p.Toaster.Error(api.ErrorMessage(err, "Failed to submit the reply"))
	} else {
		p.Toaster.Success("Reply submitted successfully")
	}
	return p.refetch(ctx)
}

func (p *Player) SubmitQuestion(ctx context.Context, question string) error {
	item, ok := p.Active()
	if !ok {
		return nil
	}
	err := p.Courses.AddQuestion(ctx, api.QuestionRequest{
		CourseID:  p.courseID,
		ContentID: item.ID,
		Question:  question,
	})
	if err != nil {
		p.Toaster.Error(api.ErrorMessage(err, "Failed to submit the question"))
	} else {
		p.Toaster.Success("Question submitted successfully")
	}
	return p.refetch(ctx)
}

func (p *Player) SubmitAnswer(ctx context.Context, questionID, answer string) error {
	item, ok := p.Active()
	if !ok {
		return nil
	}
	err := p.Courses.AddAnswer(ctx, api.AnswerRequest{
		CourseID:   p.courseID,
		ContentID:  item.ID,
		QuestionID: questionID,
		Answer:     answer,
	})
	if err != nil {
		p.Toaster.Error(api.ErrorMessage(err, "Failed to submit the answer"))
	} else {
		p.Toaster.Success("Answer submitted successfully")
	}
	return p.refetch(ctx)
}
