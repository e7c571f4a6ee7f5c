package accept

import "github.com/marcodamonte/templates/numeric"

type celsius float64

var (
	_ = numeric.New(3).Combine(numeric.Add[int], 3)
	_ = numeric.New(celsius(20)).Combine(numeric.Sub[celsius], 5)
	_ = numeric.With(numeric.New(int64(1)), func(a int64, b uint8) int64 { return a << b }, uint8(4))
)
