package models

// Volunteer is a support volunteer record. Read-only from the client.
type Volunteer struct {
	ID                    int64    `json:"id"`
	Email                 string   `json:"email"`
	Role                  string   `json:"role"`
	EmotionsKw            []string `json:"emotions_kw"`
	AvailabilityDate      *string  `json:"availability_date"`
	AvailabilityStartTime *string  `json:"availability_start_time"`
	AvailabilityEndTime   *string  `json:"availability_end_time"`
	IsActive              bool     `json:"is_active"`
	CreatedAt             string   `json:"created_at"`
}

// VolunteerPage is one page of GET /volunteers/paginated.
type VolunteerPage struct {
	Volunteers []Volunteer `json:"volunteers"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
	Total      int         `json:"total"`
	TotalPages int         `json:"total_pages"`
	HasNext    bool        `json:"has_next"`
	HasPrev    bool        `json:"has_prev"`
}
