package utils

type Pair[F any, S any] struct {
	First  F
	Second S
}
