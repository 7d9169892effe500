package locate

import "errors"

var (
	ErrNoDescriptor = errors.New("no package descriptor found")
	ErrNoArchive    = errors.New("no matching source archive found")
)
