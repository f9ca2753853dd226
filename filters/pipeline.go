package filters

// Pipeline is an ordered, append-only collection of filters.
//
// Insertion order is execution order: Apply concatenates each filter's
// tokens in the order the filters were added, never reordering or
// de-duplicating. A Pipeline is owned by a single operation and must not
// be mutated while that operation is executing.
type Pipeline struct {
	filters []Filter
}

// NewPipeline creates an empty pipeline.
func NewPipeline() *Pipeline {
	return &Pipeline{}
}

// Add appends a filter and returns the pipeline for chaining.
//
// Example:
//
//	p := filters.NewPipeline().
//		Add(filters.Resample(48000)).
//		Add(filters.Downmix(2))
func (p *Pipeline) Add(f Filter) *Pipeline {
	p.filters = append(p.filters, f)
	return p
}

// Len returns the number of registered filters.
func (p *Pipeline) Len() int {
	return len(p.filters)
}

// Apply invokes each filter once, in registration order, and returns the
// concatenated token sequence.
func (p *Pipeline) Apply(c *Context) []string {
	var args []string
	for _, f := range p.filters {
		args = append(args, f.Apply(c)...)
	}
	return args
}
