package repository

// CreateListOptions holds parameters for inserting a new List.
type CreateListOptions struct {
	Name  string
	Color string
	Icon  string
}

// GetOneListOptions holds filter parameters for fetching a single List.
// All non-empty fields are applied as AND conditions. Name is matched
// case-insensitively.
type GetOneListOptions struct {
	ID   string
	Name string
}

// UpdateListOptions holds parameters for updating an existing List.
type UpdateListOptions struct {
	ID    string
	Name  string
	Color string
	Icon  string
}
