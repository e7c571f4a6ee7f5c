package badop

import "github.com/marcodamonte/templates/numeric"

func half(a, b int) float64 { return float64(a+b) / 2 }

var _ = numeric.New(3).Combine(half, 3)
