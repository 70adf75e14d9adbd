package dto

// Request DTOs

type CreateHospitalRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	ShortTitle  string `json:"short_title" validate:"omitempty,max=255"`
	Type        string `json:"type" validate:"omitempty,max=255"`
	Description string `json:"description" validate:"omitempty"`
	Address     string `json:"address" validate:"required,max=255"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,e164"`
	OpeningTime string `json:"opening_time" validate:"required"` // Format: HH:MM:SS
	ClosingTime string `json:"closing_time" validate:"required"` // Format: HH:MM:SS
}

type UpdateHospitalRequest struct {
	Title       string `json:"title" validate:"omitempty,max=255"`
	ShortTitle  string `json:"short_title" validate:"omitempty,max=255"`
	Type        string `json:"type" validate:"omitempty,max=255"`
	Description string `json:"description" validate:"omitempty"`
	Address     string `json:"address" validate:"omitempty,max=255"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,e164"`
	OpeningTime string `json:"opening_time" validate:"omitempty"`
	ClosingTime string `json:"closing_time" validate:"omitempty"`
}

// Response DTOs

type HospitalResponse struct {
	ID                  int               `json:"id"`
	Title               string            `json:"title"`
	ShortTitle          string            `json:"short_title,omitempty"`
	Type                string            `json:"type,omitempty"`
	Description         string            `json:"description,omitempty"`
	Address             string            `json:"address"`
	PhoneNumber         string            `json:"phone_number,omitempty"`
	OpeningTime         string            `json:"opening_time"`
	ClosingTime         string            `json:"closing_time"`
	ReviewsAmount       int               `json:"reviews_amount"`
	HospitalLikesAmount int               `json:"hospital_likes_amount"`
	Rating              string            `json:"rating"`
	Services            []CatalogResponse `json:"services,omitempty"`
}

type HospitalListResponse struct {
	Hospitals []HospitalResponse `json:"hospitals"`
	Total     int                `json:"total"`
}
