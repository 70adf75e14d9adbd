package entity

import (
	"time"

	"hospital-booking-api/internal/scheduling"

	"github.com/google/uuid"
)

// Visit is the atomic bookable unit, derived mechanically from a
// schedule's window and the doctor's visit duration. No two visits exist
// at the same instant for the same doctor.
type Visit struct {
	ID       int                  `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID uuid.UUID            `gorm:"type:uuid;not null;uniqueIndex:idx_visits_doctor_date_time" json:"doctor_id"`
	Date     time.Time            `gorm:"type:date;not null;uniqueIndex:idx_visits_doctor_date_time;index" json:"date"`
	Time     scheduling.TimeOfDay `gorm:"type:time;not null;uniqueIndex:idx_visits_doctor_date_time" json:"time"`

	// Relationships
	Doctor  DoctorProfile `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Booking *Booking      `gorm:"foreignKey:VisitID;constraint:OnDelete:CASCADE" json:"booking,omitempty"`
}

func (Visit) TableName() string {
	return "visits"
}

// IsBooked reports whether the visit already carries a booking. Only
// meaningful when the Booking association was preloaded.
func (v *Visit) IsBooked() bool {
	return v.Booking != nil
}
