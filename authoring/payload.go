package authoring

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"

	"github.com/neelammkw/elearning-client/models"
)

// courseData is the JSON-stringified field of the multipart submission:
// everything except binary assets.
type courseData struct {
	Name           string                 `json:"name"`
	Description    string                 `json:"description"`
	Categories     string                 `json:"categories"`
	Price          float64                `json:"price"`
	EstimatedPrice float64                `json:"estimatedPrice"`
	Tags           string                 `json:"tags"`
	Level          string                 `json:"level"`
	DemoURL        models.VideoRef        `json:"demoUrl"`
	Thumbnail      models.Thumbnail       `json:"thumbnail"`
	Benefits       []models.Benefit       `json:"benefits"`
	Prerequisites  []models.Prerequisite  `json:"prerequisites"`
	CourseContent  []models.CourseContent `json:"courseData"`
}

// BuildPayload assembles the multipart submission: one "courseData" JSON
// field plus separate thumbnail, demoUrl and video_<index> file parts.
func BuildPayload(d Draft) (contentType string, body *bytes.Buffer, err error) {
	price := 0.0
	if d.Price != nil {
		price = *d.Price
	}
	estimated := 0.0
	if d.EstimatedPrice != nil {
		estimated = *d.EstimatedPrice
	}

	data := courseData{
		Name:           d.Name,
		Description:    d.Description,
		Categories:     d.Categories,
		Price:          price,
		EstimatedPrice: estimated,
		Tags:           d.Tags,
		Level:          d.Level,
		DemoURL:        d.DemoURL,
		Thumbnail:      d.Thumbnail,
		Benefits:       d.Benefits,
		Prerequisites:  d.Prerequisites,
		CourseContent:  d.Content,
	}

	encoded, err := json.Marshal(data)
	if err != nil {
		return "", nil, err
	}

	body = &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	if err := writer.WriteField("courseData", string(encoded)); err != nil {
		return "", nil, err
	}

	if d.ThumbnailFile != nil {
		if err := writeFilePart(writer, "thumbnail", d.ThumbnailFile); err != nil {
			return "", nil, err
		}
	}
	if d.DemoFile != nil {
		if err := writeFilePart(writer, "demoUrl", d.DemoFile); err != nil {
			return "", nil, err
		}
	}
	for index, file := range d.ContentFiles {
		if file == nil {
			continue
		}
		field := fmt.Sprintf("video_%d", index)
		if err := writeFilePart(writer, field, file); err != nil {
			return "", nil, err
		}
	}

	if err := writer.Close(); err != nil {
		return "", nil, err
	}
	return writer.FormDataContentType(), body, nil
}

func writeFilePart(writer *multipart.Writer, field string, file *Upload) error {
	part, err := writer.CreateFormFile(field, file.Name)
	if err != nil {
		return err
	}
	_, err = part.Write(file.Data)
	return err
}
