package document

// BuildError reports a failed document assembly or rendering. Export is
// aborted without partial output when one surfaces.
type BuildError struct {
	Op  string
	Err error
}

func (e *BuildError) Error() string {
	return "document build: " + e.Op + ": " + e.Err.Error()
}

func (e *BuildError) Unwrap() error { return e.Err }
