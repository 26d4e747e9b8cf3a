// Package jitter добавляет случайную составляющую к интервалам повторов,
// чтобы переподключения к брокеру и хранилищу не совпадали по времени.
package jitter

import (
	"math/rand"
	"sync"
	"time"
)

// DefaultJitter — стандартный коэффициент джиттера (50%)
const DefaultJitter = 0.5

var (
	mu  sync.Mutex
	rng = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// Duration возвращает d с джиттером в диапазоне [d, d*(1+factor)].
func Duration(d time.Duration, factor float64) time.Duration {
	mu.Lock()
	f := rng.Float64()
	mu.Unlock()

	return d + time.Duration(f*factor*float64(d))
}

// Backoff возвращает base*2^attempt, ограниченное max, без джиттера.
func Backoff(base, max time.Duration, attempt int) time.Duration {
	d := base
	for i := 0; i < attempt; i++ {
		d *= 2
		if d >= max {
			return max
		}
	}
	return d
}

// ExponentialBackoff — Backoff с применённым джиттером.
// attempt нумеруется с нуля.
func ExponentialBackoff(base, max time.Duration, attempt int, factor float64) time.Duration {
	return Duration(Backoff(base, max, attempt), factor)
}
