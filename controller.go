package tree23

// ControllerResult reports the outcome of one Controller operation. Err is
// nil unless the input text failed to parse; ClearInput is always true,
// because the reference UI clears its key field on every submit, successful
// or not, rather than leaving a stale value behind for the user to retype.
type ControllerResult struct {
	ClearInput bool
	Err        error
}

// Controller is the thin façade a GUI's insert/erase/search buttons call
// into: it turns raw text into a key, and only touches the tree if that
// parse succeeds. Parsing is supplied by the caller, since the tree's key
// type is generic and this package has no business guessing a text format
// for it.
type Controller[K Key] struct {
	tree  *Tree[K]
	parse func(string) (K, error)
	busy  bool
}

// NewController creates a Controller over tree, using parse to turn a
// submitted string into a K.
func NewController[K Key](tree *Tree[K], parse func(string) (K, error)) *Controller[K] {
	return &Controller[K]{tree: tree, parse: parse}
}

// Busy reports whether a tree operation is currently in progress. Since
// Tree's operations are synchronous, this is only ever true for the
// duration of a single call from Insert/Erase/Search — it exists so a GUI
// can disable its buttons for the (typically imperceptible) duration of
// the call, matching the reference controller's button-disable-then-
// re-enable bracket around each action.
func (c *Controller[K]) Busy() bool {
	return c.busy
}

// Insert parses input and, if it parses, inserts the resulting key.
func (c *Controller[K]) Insert(input string) ControllerResult {
	k, err := c.parse(input)
	if err != nil {
		return ControllerResult{ClearInput: true, Err: err}
	}
	c.busy = true
	c.tree.Insert(k)
	c.busy = false
	return ControllerResult{ClearInput: true}
}

// Erase parses input and, if it parses, erases the resulting key.
func (c *Controller[K]) Erase(input string) ControllerResult {
	k, err := c.parse(input)
	if err != nil {
		return ControllerResult{ClearInput: true, Err: err}
	}
	c.busy = true
	c.tree.Erase(k)
	c.busy = false
	return ControllerResult{ClearInput: true}
}

// Search parses input and, if it parses, reports whether the resulting key
// is present in the tree. found is only meaningful when Err is nil.
func (c *Controller[K]) Search(input string) (result ControllerResult, found bool) {
	k, err := c.parse(input)
	if err != nil {
		return ControllerResult{ClearInput: true, Err: err}, false
	}
	c.busy = true
	found = c.tree.Contains(k)
	c.busy = false
	return ControllerResult{ClearInput: true}, found
}
