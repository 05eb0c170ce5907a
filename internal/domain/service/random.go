package service

// RandomSource breaks ties during rider selection. *math/rand/v2.Rand satisfies it.
type RandomSource interface {
	Shuffle(n int, swap func(i, j int))
}
