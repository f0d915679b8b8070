package gdto

type PaginationRequest struct {
	Page  int `json:"page" query:"page" validate:"omitempty,numeric,min=1"`
	Limit int `json:"limit" query:"limit" validate:"omitempty,numeric,min=1,max=100"`
}

type PaginationResponse struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}
