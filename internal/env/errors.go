package env

import "errors"

var ErrSetup = errors.New("environment setup failed")
