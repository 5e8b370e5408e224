package container

import "errors"

var ErrEngine = errors.New("container engine failed")
