package categories

// CreateCategoryRequest represents the data needed to create a new category
type CreateCategoryRequest struct {
	Name string `json:"nome"`
}
