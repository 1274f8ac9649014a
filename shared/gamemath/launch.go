package gamemath

// LaunchParams configures the slingshot.
type LaunchParams struct {
	MaxPull         float64
	PowerMultiplier float64
	MaxSpeed        float64
}

// Launch is the result of converting a pull vector into a shot.
type Launch struct {
	SpeedX, SpeedY float64
	Power          float64 // 0..1, clamped pull distance over MaxPull
}

// ClampPull limits the pull vector to MaxPull while keeping its direction.
func ClampPull(dx, dy, maxPull float64) (float64, float64) {
	dist := Length(dx, dy)
	if dist <= maxPull || dist == 0 {
		return dx, dy
	}
	scale := maxPull / dist
	return dx * scale, dy * scale
}

// ComputeLaunch returns the launch velocity for a pull vector. The bird flies
// opposite to the pull; speeds above MaxSpeed are scaled down to it.
func ComputeLaunch(dx, dy float64, p LaunchParams) Launch {
	dist := Length(dx, dy)
	power := 1.0
	if dist < p.MaxPull {
		power = dist / p.MaxPull
	}

	vx := -dx * p.PowerMultiplier
	vy := -dy * p.PowerMultiplier
	if speed := Length(vx, vy); speed > p.MaxSpeed {
		scale := p.MaxSpeed / speed
		vx *= scale
		vy *= scale
	}

	return Launch{SpeedX: vx, SpeedY: vy, Power: power}
}
