package fileops

import "errors"

var ErrTransfer = errors.New("transfer failed")
