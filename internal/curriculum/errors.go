package curriculum

// ErrResearchFailed indicates the grounded research stage failed; nothing
// was generated.
type ErrResearchFailed struct {
	Err error
}

func (e *ErrResearchFailed) Error() string {
	return "failed to research and generate grounded curriculum content"
}

func (e *ErrResearchFailed) Unwrap() error { return e.Err }

// ErrStructuringFailed indicates the research text could not be converted
// into a schema-conforming certification.
type ErrStructuringFailed struct {
	Err error
}

func (e *ErrStructuringFailed) Error() string {
	return "failed to structure the generated content into the required format"
}

func (e *ErrStructuringFailed) Unwrap() error { return e.Err }
