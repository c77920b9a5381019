package entity

// Customer representa un cliente facturable.
type Customer struct {
	ID       string
	Name     string
	Email    string
	ImageURL string
}
