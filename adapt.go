package frame

import (
	errors "github.com/go-frame/frame/errors"
)

// AsDataFrame normalizes an arbitrary value into a DataFrame. A value which
// implements the Framer capability is adopted via its AsFrame hook, so a
// consumer can treat "a frame" and "an object adaptable to the frame
// contract" uniformly without inspecting which it received. Values without
// the capability fail with a NotImplementedError.
func AsDataFrame(v any) (DataFrame, error) {
	if f, ok := v.(Framer); ok {
		return f.AsFrame(), nil
	}
	return nil, errors.NotImplementedError{Op: "AsFrame"}
}
