package mutagens

// All returns every analyzer in registration order. The set is closed:
// adding a category means adding it here.
func All() []Analyzer {
	return []Analyzer{
		Arithmetic(),
		Comparison(),
		Bitwise(),
		Branch(),
		Constant(),
		Array(),
		Variable(),
	}
}
