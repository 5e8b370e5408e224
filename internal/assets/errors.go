package assets

import "errors"

var ErrAssets = errors.New("asset collection failed")
