package gmlio

import "errors"

// ErrMalformedGML is returned, wrapped with line-number context, when
// the input does not conform to the expected graph/node/edge block
// structure.
var ErrMalformedGML = errors.New("gmlio: malformed GML input")
