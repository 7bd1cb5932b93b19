package index

import "errors"

var ErrNotRegular = errors.New("not a regular file")
