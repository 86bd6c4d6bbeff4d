package list

import "errors"

var (
	// ErrEmpty is returned by operations which require at least one node when
	// they are applied to an empty list.
	ErrEmpty = errors.New("list: empty list")
)
