package newstring

import "github.com/marcodamonte/templates/numeric"

var _ = numeric.New("text")
