package scanner

import "fmt"

// NotADirectoryError reports that the scan root exists but is not a
// directory
type NotADirectoryError struct {
	Path string
}

func (e *NotADirectoryError) Error() string {
	return fmt.Sprintf("not a directory: %s", e.Path)
}
