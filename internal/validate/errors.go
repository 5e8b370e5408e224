package validate

import "errors"

var (
	ErrUnsupportedPlatform = errors.New("unsupported platform")
	ErrUnsupportedDevice   = errors.New("unsupported device codename")
	ErrInvalidArguments    = errors.New("invalid argument combination")
)
