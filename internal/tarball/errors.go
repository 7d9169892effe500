package tarball

import "errors"

var (
	ErrExtension = errors.New("archive extension mismatch")
	ErrExtract   = errors.New("extraction failed")
	ErrPack      = errors.New("packaging failed")
)
