package cli

import "fmt"

// Output is a message ueberzug writes to stderr.
type Output struct {
	Message string `json:"message"`
	Name    string `json:"name"`
	Type    string `json:"type"`
}

// Err returns nil for anything but error messages.
func (o Output) Err() error {
	if o.Type != "error" {
		return nil
	}
	return fmt.Errorf("ueberzug: [%s] %s", o.Name, o.Message)
}
