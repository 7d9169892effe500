package service

import "errors"

var ErrVendor = errors.New("vendoring failed")
