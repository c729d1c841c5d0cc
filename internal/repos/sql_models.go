package repos

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Engine-native row shapes for the relational engine. Keys are integer
// auto-increment; the canonical records stringify them at the boundary.

type accountRow struct {
	ID           uint      `gorm:"primaryKey"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null;column:hashed_password"`
	FullName     string    `gorm:"column:full_name"`
	CreatedAt    time.Time `gorm:"not null"`
}

func (accountRow) TableName() string { return "accounts" }

type moduleRow struct {
	ID        uint           `gorm:"primaryKey"`
	AccountID uint           `gorm:"not null;index;column:user_id"`
	Title     string         `gorm:"not null"`
	Content   string         `gorm:"not null;type:text"`
	PDFText   string         `gorm:"column:pdf_text;type:text"`
	VideoID   string         `gorm:"column:video_id"`
	MCQs      datatypes.JSON `gorm:"column:mcqs"`
	CreatedAt time.Time      `gorm:"not null"`
}

func (moduleRow) TableName() string { return "modules" }

type resultRow struct {
	ID             uint      `gorm:"primaryKey"`
	AccountID      uint      `gorm:"not null;index;column:user_id"`
	ModuleID       uint      `gorm:"not null;index;column:module_id"`
	Score          float64   `gorm:"not null"`
	TotalQuestions int       `gorm:"not null"`
	TimeTaken      *int      `gorm:"column:time_taken"`
	CreatedAt      time.Time `gorm:"not null"`
}

func (resultRow) TableName() string { return "results" }

// AutoMigrate creates the relational schema objects once at process startup.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&accountRow{},
		&moduleRow{},
		&resultRow{},
	)
}
