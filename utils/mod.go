package utils

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

func Contains[T comparable](slice []T, item T) bool {
	return FindIndex(slice, item) >= 0
}

// ArgMax returns the indices of every element sharing the highest score.
func ArgMax[T any](slice []T, score func(T) int) []int {
	var best []int
	bestScore := 0
	for i, v := range slice {
		s := score(v)
		switch {
		case len(best) == 0 || s > bestScore:
			best = append(best[:0], i)
			bestScore = s
		case s == bestScore:
			best = append(best, i)
		}
	}
	return best
}
