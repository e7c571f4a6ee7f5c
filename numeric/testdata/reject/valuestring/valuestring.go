package valuestring

import "github.com/marcodamonte/templates/numeric"

var _ numeric.Value[string]
