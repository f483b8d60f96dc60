package core

// Apply applies zero or more options to cfg and returns the result.
// Nil options are skipped. Options are not validated here; each stage's
// Config.Validate rejects out-of-range values.
func Apply[C any, O ~func(*C)](cfg C, opts ...O) C {
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
