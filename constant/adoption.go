package constant

// AdoptionStatus is the state of an adoption application.
type AdoptionStatus string

const (
	AdoptionStatusPending   AdoptionStatus = "pending"
	AdoptionStatusCompleted AdoptionStatus = "completed"
	AdoptionStatusCancelled AdoptionStatus = "cancelled"
)
