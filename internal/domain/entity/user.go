package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents the centralized authentication table. Role-specific
// data lives in exactly one profile table, resolved by RoleID.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RoleID    int       `gorm:"not null;index" json:"role_id"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	IsActive  *bool     `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Role                 Role                  `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	ClientProfile        *ClientProfile        `gorm:"foreignKey:UserID" json:"client_profile,omitempty"`
	DoctorProfile        *DoctorProfile        `gorm:"foreignKey:UserID" json:"doctor_profile,omitempty"`
	HospitalAdminProfile *HospitalAdminProfile `gorm:"foreignKey:UserID" json:"hospital_admin_profile,omitempty"`
}

func (User) TableName() string {
	return "users"
}
