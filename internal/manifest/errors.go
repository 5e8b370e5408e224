package manifest

import "errors"

var ErrManifest = errors.New("manifest load failed")
