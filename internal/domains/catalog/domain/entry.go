package domain

// Entry is a pizza variant offered by the kitchen together with its base ingredients.
type Entry struct {
	ID          string
	Description string
	Ingredients []string
}

// Clone returns a copy that does not share the ingredient slice.
func (e Entry) Clone() Entry {
	e.Ingredients = append([]string(nil), e.Ingredients...)
	return e
}
