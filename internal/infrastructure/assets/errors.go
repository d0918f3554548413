// Package assets loads the sprite sheets and font faces the renderer draws
// with.
package assets

import (
	"errors"
	"fmt"
)

// ErrAssetLoad is matched by every LoadError.
var ErrAssetLoad = errors.New("asset load failed")

// LoadError reports an asset that could not be read or decoded.
type LoadError struct {
	Key  string
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load asset %q from %s: %v", e.Key, e.Path, e.Err)
}

// Unwrap exposes both ErrAssetLoad and the underlying cause.
func (e *LoadError) Unwrap() []error {
	return []error{ErrAssetLoad, e.Err}
}
