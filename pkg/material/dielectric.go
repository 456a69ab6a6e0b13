package material

// WithRefraction returns a copy that refracts for samples in
// [SpecularRate, rate]. index is the ratio handed to the refraction and
// roughness blends the refracted direction towards a random one.
func (m Material) WithRefraction(rate, index, roughness float64) Material {
	m.RefractRate = rate
	m.RefractIndex = index
	m.RefractRoughness = roughness
	return m
}
