package model

type RatingInfo struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// KeyValueStore is the persistence port used by the rating store. A missing
// key is reported through ok, not an error; errors mean the backend itself
// failed and the caller is expected to degrade to in-memory operation.
type KeyValueStore interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// Sampler supplies the uniform randomness used when seeding review data.
// *rand.Rand satisfies it; tests substitute a fixed sequence.
type Sampler interface {
	Float64() float64
}
