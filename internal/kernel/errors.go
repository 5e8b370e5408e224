package kernel

import "errors"

var ErrKernel = errors.New("kernel build failed")
