package turtle

import (
	"fmt"
	"math"
)

func Square(size float64) Routine {
	return func(p Pen) {
		p.SetPenDown(true)
		for i := 0; i < 4; i++ {
			p.Forward(size)
			p.Right(90)
		}
	}
}

func EquilateralTriangle(size float64) Routine {
	return func(p Pen) {
		p.SetPenDown(true)
		for i := 0; i < 3; i++ {
			p.Forward(size)
			p.Left(120)
		}
	}
}

// ValidTriangle reports whether a, b and c satisfy the strict triangle
// inequality.
func ValidTriangle(a, b, c float64) bool {
	return a+b > c && a+c > b && b+c > a
}

// Angles returns the interior angles in degrees opposite sides a, b and c,
// using the law of cosines.
func Angles(a, b, c float64) (angA, angB, angC float64) {
	radA := math.Acos((b*b + c*c - a*a) / (2 * b * c))
	radB := math.Acos((a*a + c*c - b*b) / (2 * a * c))
	radC := math.Pi - radA - radB
	deg := 180 / math.Pi
	return radA * deg, radB * deg, radC * deg
}

// Triangle draws the triangle with sides a, b and c. The walk goes along a,
// turns at B onto c, turns at A onto b and turns at C back to the starting
// heading; each turn is the exterior angle.
func Triangle(a, b, c float64) (Routine, error) {
	if !ValidTriangle(a, b, c) {
		return nil, fmt.Errorf("%w: %g %g %g", ErrInvalidTriangle, a, b, c)
	}
	angA, angB, _ := Angles(a, b, c)
	turnB := toHeading(180 - angB)
	turnA := toHeading(180 - angA)
	// The last turn closes the full rotation so the heading comes back
	// exactly.
	turnC := fullTurn - turnB - turnA
	return func(p Pen) {
		p.SetPenDown(true)
		p.Forward(a)
		p.Left(turnB.degrees())
		p.Forward(c)
		p.Left(turnA.degrees())
		p.Forward(b)
		p.Left(turnC.degrees())
	}, nil
}

func Circle(radius float64) Routine {
	return func(p Pen) {
		p.Circle(radius)
	}
}
