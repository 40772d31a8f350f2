// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"

	"go-tower-grid/pkg/tilemap"
)

// PRNGService - обертка над генератором случайных чисел, чтобы повторять
// прогоны с одним и тем же сидом.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{rng: rand.New(rand.NewSource(seed))}
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// CellIn returns a uniformly chosen tile of a. a must not be empty.
func (s *PRNGService) CellIn(a tilemap.Area) tilemap.Cell {
	return tilemap.Cell{
		X: a.Position.X + s.Intn(a.Size.X),
		Y: a.Position.Y + s.Intn(a.Size.Y),
	}
}

// ChooseWeighted returns an index into weights with probability
// proportional to its weight, or -1 if nothing can be chosen.
func (s *PRNGService) ChooseWeighted(weights []int) int {
	total := 0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total == 0 {
		return -1
	}

	r := s.Intn(total)
	upto := 0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if upto+w > r {
			return i
		}
		upto += w
	}
	return -1
}
