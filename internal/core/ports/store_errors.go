package ports

// ErrorClassifier turns a store failure into one of the errs kinds so callers
// can tell a retryable outage from a constraint violation. op names the
// statement for the message.
type ErrorClassifier interface {
	Classify(op string, err error) error
}

type ErrorClassifierFunc func(op string, err error) error

func (f ErrorClassifierFunc) Classify(op string, err error) error {
	return f(op, err)
}
