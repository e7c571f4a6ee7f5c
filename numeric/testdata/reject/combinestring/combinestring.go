package combinestring

import "github.com/marcodamonte/templates/numeric"

func concat(a int, b string) int { return a + len(b) }

var _ = numeric.With(numeric.New(3), concat, "text")
