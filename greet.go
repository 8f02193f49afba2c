package recordkit

import "fmt"

const greetingFormat = "Hello, %s! You've been greeted!"

// Greet returns the greeting for name.
func Greet(name string) string {
	return fmt.Sprintf(greetingFormat, name)
}
