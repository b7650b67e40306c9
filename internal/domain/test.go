package domain

// TestID identifies a test within its suite
type TestID struct {
	Suite string `json:"suite"`
	Name  string `json:"name"`
}

// String returns the dotted Suite.Name form used in reports
func (id TestID) String() string {
	return id.Suite + "." + id.Name
}

// TestCase is a registered test: its identity and the zero-argument action that runs it
type TestCase struct {
	ID     TestID
	Action func()
}
