package entity

// Service is a medical service provided by hospitals
type Service struct {
	ID    int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Title string `gorm:"type:varchar(255);not null" json:"title"`
	URL   string `gorm:"type:varchar(255);uniqueIndex;not null" json:"url"`

	// Relationships
	Hospitals []Hospital `gorm:"many2many:hospital_services" json:"hospitals,omitempty"`
}

func (Service) TableName() string {
	return "services"
}
