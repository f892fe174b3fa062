package flip

import "fmt"

// ConfigurationError reports invalid game parameters. It only occurs at
// board setup and is fatal to game creation.
type ConfigurationError struct {
	message string
}

// [ConfigurationError] implements [error]
func (e ConfigurationError) Error() string {
	return e.message
}

// IndexOutOfRange reports a slot lookup outside [0, N). Under a correctly
// driven controller it never occurs.
type IndexOutOfRange struct {
	Index, Size int
}

// [IndexOutOfRange] implements [error]
func (e IndexOutOfRange) Error() string {
	return fmt.Sprintf("slot index %d out of range [0, %d)", e.Index, e.Size)
}
