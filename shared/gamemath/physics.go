package gamemath

import "math"

// Point is a position on the playfield.
type Point struct {
	X, Y float64
}

// FlightParams is the projectile model used both for the live bird and for the
// trajectory preview, so the preview can never drift from the real flight.
type FlightParams struct {
	Gravity     float64
	Friction    float64
	Restitution float64
	GroundDamp  float64
	StopSpeed   float64
	GroundY     float64
	Radius      float64
}

// FlightState is the kinematic state of a projectile.
type FlightState struct {
	X, Y           float64
	SpeedX, SpeedY float64
}

// FlightEvent describes what happened during one StepFlight call.
type FlightEvent int

const (
	FlightAirborne FlightEvent = iota
	FlightBounced
	FlightStopped
)

// StepFlight advances a projectile by one frame: friction decay, gravity,
// integration and the ground bounce.
func StepFlight(s *FlightState, p FlightParams) FlightEvent {
	s.SpeedX *= p.Friction
	s.SpeedY *= p.Friction
	s.SpeedY += p.Gravity
	s.X += s.SpeedX
	s.Y += s.SpeedY

	if s.Y+p.Radius < p.GroundY {
		return FlightAirborne
	}

	s.Y = p.GroundY - p.Radius
	s.SpeedY = -s.SpeedY * p.Restitution
	s.SpeedX *= p.GroundDamp
	if math.Abs(s.SpeedX) < p.StopSpeed && math.Abs(s.SpeedY) < p.StopSpeed {
		return FlightStopped
	}
	return FlightBounced
}

// PredictTrajectory integrates a copy of the given state with StepFlight and
// returns the visited positions. It stops after steps frames, on the first
// ground contact or once the projectile leaves the left edge.
func PredictTrajectory(x, y, speedX, speedY float64, p FlightParams, steps int) []Point {
	s := FlightState{X: x, Y: y, SpeedX: speedX, SpeedY: speedY}
	points := make([]Point, 0, steps)
	for i := 0; i < steps; i++ {
		ev := StepFlight(&s, p)
		if ev != FlightAirborne || s.X+p.Radius < 0 {
			break
		}
		points = append(points, Point{X: s.X, Y: s.Y})
	}
	return points
}

// SettleParams is the reduced model for dislodged pigs and blocks.
type SettleParams struct {
	Gravity     float64
	Damping     float64
	Restitution float64
	GroundDamp  float64
	RestSpeed   float64
	GroundY     float64
}

// StepSettle advances a dislodged body whose lowest point sits halfH below its
// center. It reports whether the body came to rest on the ground.
func StepSettle(s *FlightState, halfH float64, p SettleParams) bool {
	s.SpeedY += p.Gravity
	s.SpeedX *= p.Damping
	s.SpeedY *= p.Damping
	s.X += s.SpeedX
	s.Y += s.SpeedY

	if s.Y+halfH < p.GroundY {
		return false
	}

	s.Y = p.GroundY - halfH
	s.SpeedY = -s.SpeedY * p.Restitution
	s.SpeedX *= p.GroundDamp
	if math.Abs(s.SpeedX) < p.RestSpeed && math.Abs(s.SpeedY) < p.RestSpeed {
		s.SpeedX = 0
		s.SpeedY = 0
		return true
	}
	return false
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Length returns the magnitude of (x, y).
func Length(x, y float64) float64 {
	return math.Sqrt(x*x + y*y)
}
