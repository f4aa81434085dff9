package core

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidContent = errors.New("invalid site content")
	ErrAssetNotFound  = errors.New("asset not found")
)

// AssetError reports a stylesheet, image or video that could not be read
// while rendering.
type AssetError struct {
	Kind string
	Name string
	Err  error
}

func (e *AssetError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Kind, e.Name, e.Err)
}

func (e *AssetError) Unwrap() error {
	return e.Err
}

func (e *AssetError) Is(target error) bool {
	return target == ErrAssetNotFound
}
