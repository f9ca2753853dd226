// Package filters provides composable command-line filters for media
// operations.
//
// A filter contributes zero or more argument tokens to the assembled ffmpeg
// command. Filters are collected in a Pipeline and applied strictly in
// registration order, since ffmpeg parses many flags positionally relative
// to the input and output declarations.
package filters

// Context carries the in-progress operation state a filter may consult when
// producing its tokens. Filters must treat it as read-only.
type Context struct {
	// Source is the input file path of the operation.
	Source string

	// Width and Height are the target dimensions, when the operation has
	// any (waveform rendering, frame extraction). Zero when not applicable.
	Width  int
	Height int

	// SourceDuration is the probed source duration in seconds, or 0 when
	// the source was not probed.
	SourceDuration float64
}

// Filter contributes argument tokens to an operation's command line.
//
// Apply is called exactly once per operation, in registration order. The
// returned tokens are appended to the command as-is; returning an empty
// slice is legal and contributes nothing.
type Filter interface {
	Apply(c *Context) []string
}

// Func adapts a plain function to the Filter interface.
type Func func(c *Context) []string

// Apply implements Filter.
func (f Func) Apply(c *Context) []string {
	return f(c)
}
