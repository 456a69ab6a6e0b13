package material

// WithSpecular returns a copy reflecting with probability rate.
// Roughness blends the mirror direction towards a random bounce.
func (m Material) WithSpecular(rate, roughness float64) Material {
	m.SpecularRate = rate
	m.Roughness = roughness
	return m
}
