package vector_math

import "math"

// ToRad is a helper function to turn degree to radians
func ToRad[T Float](deg T) T {
	return deg * (T(math.Pi) / 180)
}

// ToDeg is a helper function to turn radians to degree
func ToDeg[T Float](rad T) T {
	return rad * (180 / T(math.Pi))
}
