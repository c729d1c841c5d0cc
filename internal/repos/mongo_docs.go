package repos

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	types "github.com/lumenlearn/lumenlearn-backend/internal/domain"
)

// Collection names for the document engine.
const (
	AccountCollection = "users"
	ModuleCollection  = "modules"
	ResultCollection  = "results"
)

// Engine-native document shapes. Keys are engine-generated object ids with
// embedded reference fields; the canonical records carry their hex form.

type accountDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"hashed_password"`
	FullName     string             `bson:"full_name,omitempty"`
	CreatedAt    time.Time          `bson:"created_at,omitempty"`
}

type moduleDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	AccountID primitive.ObjectID `bson:"user_id"`
	Title     string             `bson:"title"`
	Content   string             `bson:"content"`
	PDFText   string             `bson:"pdf_text,omitempty"`
	VideoID   string             `bson:"video_id,omitempty"`
	MCQs      []types.MCQ        `bson:"mcqs,omitempty"`
	CreatedAt time.Time          `bson:"created_at,omitempty"`
}

type resultDoc struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	AccountID      primitive.ObjectID `bson:"user_id"`
	ModuleID       primitive.ObjectID `bson:"module_id"`
	Score          float64            `bson:"score"`
	TotalQuestions int                `bson:"total_questions"`
	TimeTaken      *int               `bson:"time_taken,omitempty"`
	CreatedAt      time.Time          `bson:"created_at,omitempty"`
}
