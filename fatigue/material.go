package fatigue

// Material holds the S-N curve parameters of a Basquin law N * S^k = C.
type Material struct {
	Name string
	C    float64 // fatigue strength coefficient [MPa^k]
	K    float64 // fatigue strength exponent
}

// Validate checks C > 0 and that Γ(1 + K/2) is defined.
func (m Material) Validate() error {
	return validateMaterial(m.C, m.K)
}
