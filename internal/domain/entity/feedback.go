package entity

import (
	"time"

	"github.com/google/uuid"
)

// Feedback is a client's rating of a doctor. One feedback per
// (author, doctor) pair, enforced by a unique constraint.
type Feedback struct {
	ID           int       `gorm:"primaryKey;autoIncrement" json:"id"`
	AuthorID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_feedbacks_author_doctor" json:"author_id"`
	DoctorID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_feedbacks_author_doctor;index" json:"doctor_id"`
	RatingStarID int       `gorm:"not null" json:"rating_star_id"`
	Text         string    `gorm:"type:text" json:"text"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Author     ClientProfile `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Doctor     DoctorProfile `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	RatingStar RatingStar    `gorm:"foreignKey:RatingStarID" json:"rating_star,omitempty"`
}

func (Feedback) TableName() string {
	return "feedbacks"
}
