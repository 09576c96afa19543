package core

// Size describes the dimensions of a simulation field.
type Size struct {
	W int
	H int
}
