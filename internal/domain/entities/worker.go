package entities

// Worker is the standing and qualification of a requester
type Worker struct {
	ID         WorkerID   `json:"id" db:"id"`
	Profession Profession `json:"profession" db:"profession"`
	IsActive   bool       `json:"is_active" db:"is_active"`
}
