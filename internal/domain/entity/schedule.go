package entity

import (
	"time"

	"hospital-booking-api/internal/scheduling"

	"github.com/google/uuid"
)

// Schedule is one day's declared working window for a doctor. It is a
// template record only; bookability lives in the Visit rows generated
// from it. A doctor has at most one schedule per date.
type Schedule struct {
	ID          int                    `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID    uuid.UUID              `gorm:"type:uuid;not null;uniqueIndex:idx_schedules_doctor_date" json:"doctor_id"`
	Date        time.Time              `gorm:"type:date;not null;uniqueIndex:idx_schedules_doctor_date;index" json:"date"`
	TimeFrom    scheduling.TimeOfDay   `gorm:"type:time;not null" json:"time_from"`
	TimeTo      scheduling.TimeOfDay   `gorm:"type:time;not null" json:"time_to"`
	Periodicity scheduling.Periodicity `gorm:"type:varchar(32)" json:"periodicity"`

	// Relationships
	Doctor DoctorProfile `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Schedule) TableName() string {
	return "schedules"
}
