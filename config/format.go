package config

import "strconv"

func floatText(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func vectorText(v []float64) string {
	out := "["
	for i, x := range v {
		if i > 0 {
			out += " "
		}
		out += floatText(x)
	}

	return out + "]"
}
