package entity

// Health represents the liveness status of the system.
type Health struct {
	Status string
}
