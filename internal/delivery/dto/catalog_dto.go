package dto

type CatalogResponse struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

type CatalogListResponse struct {
	Items []CatalogResponse `json:"items"`
	Total int               `json:"total"`
}
