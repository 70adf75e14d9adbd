package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is a client's rating of a hospital. One review per
// (author, hospital) pair, enforced by a unique constraint.
type Review struct {
	ID           int       `gorm:"primaryKey;autoIncrement" json:"id"`
	AuthorID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_author_hospital" json:"author_id"`
	HospitalID   int       `gorm:"not null;uniqueIndex:idx_reviews_author_hospital;index" json:"hospital_id"`
	RatingStarID int       `gorm:"not null" json:"rating_star_id"`
	Text         string    `gorm:"type:text" json:"text"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Author     ClientProfile `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Hospital   Hospital      `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
	RatingStar RatingStar    `gorm:"foreignKey:RatingStarID" json:"rating_star,omitempty"`
}

func (Review) TableName() string {
	return "reviews"
}
