package dto

type CatalogResponse struct {
	Moods        []string `json:"moods"`
	ProductTypes []string `json:"product_types"`
}

type NotesResponse struct {
	Top    []string `json:"top"`
	Middle []string `json:"middle"`
	Base   []string `json:"base"`
}
