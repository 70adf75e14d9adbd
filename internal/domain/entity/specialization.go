package entity

// Specialization is a doctor's area of practice
type Specialization struct {
	ID    int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Title string `gorm:"type:varchar(255);not null" json:"title"`
	URL   string `gorm:"type:varchar(255);uniqueIndex;not null" json:"url"`

	// Relationships
	Doctors []DoctorProfile `gorm:"many2many:doctor_specializations;joinForeignKey:SpecializationID;joinReferences:DoctorID" json:"doctors,omitempty"`
}

func (Specialization) TableName() string {
	return "specializations"
}
