package dto

type SearchResponse struct {
	Doctors         []DoctorResponse   `json:"doctors"`
	Hospitals       []HospitalResponse `json:"hospitals"`
	Specializations []CatalogResponse  `json:"specializations"`
	Services        []CatalogResponse  `json:"services"`
}
