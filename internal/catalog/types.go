// Package catalog defines the content domain model and the normalizers that
// turn parsed sheet rows into typed records.
package catalog

// ResourceItem is one displayable content unit: a video, ebook, lecture or
// document. JSON field names match what the web client expects.
type ResourceItem struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
	LinkURL      string `json:"linkUrl"`
	EmbedURL     string `json:"embedUrl,omitempty"`
	Category     string `json:"category,omitempty"`
	Author       string `json:"author,omitempty"`
	Date         string `json:"date,omitempty"`
	Grade        string `json:"grade,omitempty"`
}

// QuestionType is the kind of answer a question expects.
type QuestionType string

const (
	MultipleChoice QuestionType = "multiple-choice"
	FreeText       QuestionType = "text"
)

// Question is one quiz question belonging to a worksheet.
type Question struct {
	ID            string       `json:"id"`
	Text          string       `json:"text"`
	Type          QuestionType `json:"type"`
	Options       []string     `json:"options,omitempty"`
	CorrectAnswer string       `json:"correctAnswer"`
	Explanation   string       `json:"explanation,omitempty"`
}

// Worksheet is an ordered quiz unit. Question order follows source row order;
// the review UI indexes questions by position.
type Worksheet struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Subject   string     `json:"subject,omitempty"`
	Grade     string     `json:"grade,omitempty"`
	Questions []Question `json:"questions"`
}
