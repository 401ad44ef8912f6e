package main

type Position struct {
	X, Y float64
}

type Velocity struct {
	X, Y float64
}

// Lifetime destroys its entity once Age reaches MaxAge.
type Lifetime struct {
	MaxAge float64
	Age    float64
}
