package constraint

// Solver is the port to an external constraint-solving layout system.
// Activate applies a batch atomically: either every constraint in it becomes
// active or none does.
type Solver interface {
	Activate(batch []Constraint) error
}

// SolverFunc adapts a plain function to the Solver interface.
type SolverFunc func(batch []Constraint) error

// Activate calls f(batch).
func (f SolverFunc) Activate(batch []Constraint) error {
	return f(batch)
}

// Recorder is an in-memory Solver that keeps every activated batch.
// It is what the CLI and the tests attach engines to.
type Recorder struct {
	batches [][]Constraint
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Activate stores a copy of batch.
func (r *Recorder) Activate(batch []Constraint) error {
	r.batches = append(r.batches, append([]Constraint(nil), batch...))
	return nil
}

// Batches returns the number of Activate calls seen.
func (r *Recorder) Batches() int {
	return len(r.batches)
}

// Active returns every activated constraint in activation order.
func (r *Recorder) Active() []Constraint {
	var out []Constraint
	for _, b := range r.batches {
		out = append(out, b...)
	}
	return out
}
