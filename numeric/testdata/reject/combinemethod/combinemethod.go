package combinemethod

import "github.com/marcodamonte/templates/numeric"

var _ = numeric.New(3).Combine(numeric.Add[int], "x")
