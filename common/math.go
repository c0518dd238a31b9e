package common

func Abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
