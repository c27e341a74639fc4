package runner

import "fmt"

// PathErrorKind classifies a discovery failure.
type PathErrorKind int

const (
	NotFileOrDir PathErrorKind = iota
)

// PathError is returned when the input path is neither a regular .ax
// file nor a directory.
type PathError struct {
	Kind PathErrorKind
	Path string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s is not a file or directory", e.Path)
}
