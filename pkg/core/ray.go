package core

// Ray is a traced ray together with the shading state it carries between bounces
type Ray struct {
	Origin           V3
	Dir              V3 // Unit length by convention
	Color            Col3
	BouncesRemaining uint16
	StepsRemaining   uint16
	Gamma            float32 // Brightness gain of the last surface hit
}

// NewRay creates a ray with the given bounce and step budgets and no gain
func NewRay(origin, dir V3, color Col3, bounceDepth, maxSteps uint16) Ray {
	return Ray{
		Origin:           origin,
		Dir:              dir,
		Color:            color,
		BouncesRemaining: bounceDepth,
		StepsRemaining:   maxSteps,
	}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float32) V3 {
	return r.Origin.Add(r.Dir.Multiply(t))
}
