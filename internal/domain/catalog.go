package domain

// CatalogItem is a loosely typed listing row. It shares field names with
// Product so both render through the same list template.
type CatalogItem struct {
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description" yaml:"description"`
	Price       float64 `json:"price" yaml:"price"`
}
