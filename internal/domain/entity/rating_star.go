package entity

// RatingStar is one of the discrete star values a review or feedback may
// reference. Ratings are always a reference to one of these rows, never a
// free-form number.
type RatingStar struct {
	ID    int `gorm:"primaryKey;autoIncrement" json:"id"`
	Value int `gorm:"type:smallint;not null" json:"value"`
}

func (RatingStar) TableName() string {
	return "rating_stars"
}
