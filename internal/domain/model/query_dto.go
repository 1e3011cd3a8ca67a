package model

type CreateQueryDTO struct {
	Location  string `json:"location" validate:"required,min=2"`
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"required"`
}

// UpdateQueryDTO fields are optional; a nil field keeps the stored value.
type UpdateQueryDTO struct {
	Location  *string `json:"location,omitempty"`
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
}

type DeleteQueryResponse struct {
	Deleted bool `json:"deleted"`
}

// SortOrder is the id ordering of a record scan.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)
