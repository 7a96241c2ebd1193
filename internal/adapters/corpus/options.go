package corpus

// Option configures an FSWriter.
type Option func(*FSWriter)

// WithRoot places the corpus beneath the given directory instead of
// the default "out".
func WithRoot(root string) Option {
	return func(w *FSWriter) {
		if root != "" {
			w.root = root
		}
	}
}
