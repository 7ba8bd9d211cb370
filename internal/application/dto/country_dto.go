package dto

// CountryResponse is a country with its derived warehouse count.
type CountryResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Code           string `json:"code,omitempty"`
	WarehouseCount int    `json:"warehouse_count"`
}

// CountryListResponse lists all reference countries.
type CountryListResponse struct {
	Items []CountryResponse `json:"items"`
	Total int               `json:"total"`
}
