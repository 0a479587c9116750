package entity

// Flavor is a catalog entry identified by its unique name.
type Flavor struct {
	Name  string
	Image *string
}
