package model

// Person is a member of the on-call rotation.
type Person struct {
	// Name uniquely identifies the person within the rotation.
	Name string `json:"name"`
	// Location is the site the person works from, used for holiday weighting.
	Location string `json:"location"`
	// Unavailable marks a person as out of the rotation for the whole
	// scheduling window (long-term absence).
	Unavailable bool `json:"unavailable"`
}

// Rotation is the ordered set of people eligible for on-call duty. The order
// only affects variable indexing inside the model, never the semantics of the
// resulting roster.
type Rotation struct {
	Persons []Person `json:"persons"`
}

// Names returns the person names in rotation order.
func (r Rotation) Names() []string {
	names := make([]string, len(r.Persons))
	for i, p := range r.Persons {
		names[i] = p.Name
	}
	return names
}
