package domain

import "time"

// Canonical, engine-independent records. Every identifier that crosses the
// storage boundary is a string here; the active engine decides whether it
// parses to an integer key or an object id.

type Account struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	// PasswordHash is only populated on the GetByEmail path used for login
	// and duplicate-registration checks. It never serializes.
	PasswordHash string `json:"-"`
}

type MCQ struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Correct  int      `json:"correct"`
}

type Module struct {
	ID        string    `json:"id"`
	AccountID string    `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	PDFText   string    `json:"pdf_text,omitempty"`
	VideoID   string    `json:"video_id,omitempty"`
	MCQs      []MCQ     `json:"mcqs,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Result struct {
	ID             string    `json:"id"`
	AccountID      string    `json:"user_id"`
	ModuleID       string    `json:"module_id"`
	Score          float64   `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	TimeTaken      *int      `json:"time_taken,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
