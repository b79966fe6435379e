package mesh

import "errors"

// ErrMalformedModel reports empty or structurally invalid geometry
var ErrMalformedModel = errors.New("malformed model")
