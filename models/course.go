package models

import "time"

type Course struct {
	ID             string          `json:"_id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Categories     string          `json:"categories"`
	Price          float64         `json:"price"`
	EstimatedPrice float64         `json:"estimatedPrice"`
	Tags           string          `json:"tags"`
	Level          string          `json:"level"` // beginner, intermediate, advanced
	DemoURL        VideoRef        `json:"demoUrl"`
	Thumbnail      Thumbnail       `json:"thumbnail"`
	Benefits       []Benefit       `json:"benefits"`
	Prerequisites  []Prerequisite  `json:"prerequisites"`
	CourseData     []CourseContent `json:"courseData"`
	Ratings        float64         `json:"ratings"`
	Purchased      int             `json:"purchased"`
	Reviews        []Review        `json:"reviews"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// CourseContent is one lecture. Lectures belong to a section only through an
// equal VideoSection string; there is no section id, so section boundaries
// are a property of array order.
type CourseContent struct {
	ID           string       `json:"_id,omitempty"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	VideoSection string       `json:"videoSection"`
	VideoURL     VideoRef     `json:"videoUrl"`
	VideoLength  float64      `json:"videoLength"` // minutes
	Links        []CourseLink `json:"links"`
	Suggestion   string       `json:"suggestion,omitempty"`
	Questions    []Question   `json:"questions,omitempty"`
	Likes        []string     `json:"likes,omitempty"`    // user ids
	Dislikes     []string     `json:"dislikes,omitempty"` // user ids
}

type CourseLink struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type Benefit struct {
	Title string `json:"title"`
}

type Prerequisite struct {
	Title string `json:"title"`
}

type Thumbnail struct {
	PublicID string `json:"public_id"`
	URL      string `json:"url"`
}

type Review struct {
	ID        string        `json:"_id,omitempty"`
	UserID    string        `json:"userId"`
	UserName  string        `json:"userName"`
	Rating    int           `json:"rating"`
	Comment   string        `json:"comment"`
	Replies   []ReviewReply `json:"commentReplies,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
}

type ReviewReply struct {
	ID        string    `json:"_id,omitempty"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

type Question struct {
	ID        string    `json:"_id,omitempty"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Question  string    `json:"question"`
	Replies   []Answer  `json:"questionReplies,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type Answer struct {
	ID        string    `json:"_id,omitempty"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"createdAt"`
}
