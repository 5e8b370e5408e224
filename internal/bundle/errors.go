package bundle

import "errors"

var ErrBundle = errors.New("bundle creation failed")
