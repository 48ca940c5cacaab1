package athlete

// Athlete is the canonical roster entry exposed by the service.
type Athlete struct {
	ID        string  `json:"id"`
	Provider  string  `json:"provider"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Sport     string  `json:"sport"`
	Position  string  `json:"position"`
	Squad     string  `json:"squad"`
	Age       int     `json:"age"`
	HeightCm  float64 `json:"height_cm"`
	WeightKg  float64 `json:"weight_kg"`
}

// FullName joins first and last name for display.
func (a Athlete) FullName() string {
	switch {
	case a.FirstName == "":
		return a.LastName
	case a.LastName == "":
		return a.FirstName
	default:
		return a.FirstName + " " + a.LastName
	}
}
