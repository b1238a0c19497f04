package dto

type GenerateRequest struct {
	Mood        string `json:"mood" validate:"required,oneof=relaxed energized romantic"`
	ProductType string `json:"product_type" validate:"required"`
}

type RecommendationResponse struct {
	Mood         string `json:"mood"`
	ProductType  string `json:"product_type"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	BlendFormula string `json:"blend_formula"`
	BestTime     string `json:"best_time"`
	CreatedAt    string `json:"created_at"`
}

type GenerateResponse struct {
	Recommendation RecommendationResponse `json:"recommendation"`
	Notes          NotesResponse          `json:"notes"`
	Saved          bool                   `json:"saved"`
}

type HistoryItem struct {
	ProductName string `json:"product_name"`
	Mood        string `json:"mood"`
	ProductType string `json:"product_type"`
	CreatedAt   string `json:"created_at"`
}

type HistoryResponse struct {
	Items       []HistoryItem `json:"items"`
	Unavailable bool          `json:"unavailable"`
}
