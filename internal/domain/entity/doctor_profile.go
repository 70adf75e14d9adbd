package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DoctorProfile represents doctor-specific profile data.
// Rating and FeedbacksAmount are denormalized aggregates maintained by
// the rating service; DoctorLikesAmount is a plain counter.
type DoctorProfile struct {
	UserID            uuid.UUID        `gorm:"type:uuid;primaryKey" json:"user_id"`
	FirstName         string           `gorm:"type:varchar(255);not null" json:"first_name"`
	LastName          string           `gorm:"type:varchar(255);not null" json:"last_name"`
	HospitalID        *int             `gorm:"index" json:"hospital_id,omitempty"`
	Experience        int              `gorm:"not null;default:1" json:"experience"`
	Biography         string           `gorm:"type:text" json:"biography,omitempty"`
	Price             *decimal.Decimal `gorm:"type:numeric(5,2)" json:"price,omitempty"`
	VisitDuration     *int             `gorm:"" json:"visit_duration,omitempty"` // minutes, required for schedule generation
	DoctorLikesAmount int              `gorm:"not null;default:0" json:"doctor_likes_amount"`
	FeedbacksAmount   int              `gorm:"not null;default:0" json:"feedbacks_amount"`
	Rating            decimal.Decimal  `gorm:"type:numeric(3,2);not null;default:0" json:"rating"`

	// Relationships
	User            User             `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Hospital        *Hospital        `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
	Specializations []Specialization `gorm:"many2many:doctor_specializations;foreignKey:UserID;joinForeignKey:DoctorID" json:"specializations,omitempty"`
	Schedules       []Schedule       `gorm:"foreignKey:DoctorID" json:"schedules,omitempty"`
	Visits          []Visit          `gorm:"foreignKey:DoctorID" json:"visits,omitempty"`
	Feedbacks       []Feedback       `gorm:"foreignKey:DoctorID" json:"feedbacks,omitempty"`
}

func (DoctorProfile) TableName() string {
	return "doctor_profiles"
}

// FullName joins first and last name for display
func (d *DoctorProfile) FullName() string {
	return d.FirstName + " " + d.LastName
}
