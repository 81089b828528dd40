package partsql

import "github.com/zoobzio/partsql/internal/render"

// InvalidConstructionError is returned by the Try* constructors when a
// part is built with a missing or unsafe attribute.
type InvalidConstructionError = render.InvalidConstructionError

// MalformedTreeError is returned at render time when a required child
// reference is absent.
type MalformedTreeError = render.MalformedTreeError

// UnsupportedFeatureError is returned by dialect renderers for features
// the target engine cannot express.
type UnsupportedFeatureError = render.UnsupportedFeatureError
