package schema

// Subject is a taught discipline (e.g. ballet, contemporary).
type Subject struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	CreatedAt   string  `json:"created_at"`
}

// CreateSubjectRequest is the payload for POST /subjects.
type CreateSubjectRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// UpdateSubjectRequest is the payload for PUT /subjects/{id}.
type UpdateSubjectRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}
