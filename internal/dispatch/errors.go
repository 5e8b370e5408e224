package dispatch

import "errors"

var ErrDispatch = errors.New("dispatch failed")
