package entities

// Facility is the standing of a requesting site
type Facility struct {
	ID       FacilityID `json:"id" db:"id"`
	IsActive bool       `json:"is_active" db:"is_active"`
}
