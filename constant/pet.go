package constant

// PetAdoptionStatus tracks where a pet is in the adoption lifecycle.
type PetAdoptionStatus string

const (
	PetStatusAvailable PetAdoptionStatus = "available"
	PetStatusPending   PetAdoptionStatus = "pending"
	PetStatusAdopted   PetAdoptionStatus = "adopted"
)
