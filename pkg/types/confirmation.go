package types

// ConfirmationGate is a yes/no prompt invoked exactly once before a
// destructive operation. Declining is not an error.
type ConfirmationGate interface {
	Confirm(title, message string) (bool, error)
}

// ConfirmFunc adapts a function to ConfirmationGate.
type ConfirmFunc func(title, message string) (bool, error)

// Confirm implements ConfirmationGate
func (f ConfirmFunc) Confirm(title, message string) (bool, error) {
	return f(title, message)
}
