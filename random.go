package kana

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/samber/lo"
)

// Sampler draws random valid Mora from tables.
type Sampler struct {
	intN func(n int) int
}

// NewSampler returns a Sampler drawing from src. A nil src uses the
// process-wide generator.
func NewSampler(src rand.Source) *Sampler {
	if src == nil {
		return &Sampler{intN: rand.IntN}
	}
	return &Sampler{intN: rand.New(src).IntN}
}

var defaultSampler = NewSampler(nil)

// Random draws one valid Mora from t with the process-wide generator.
func Random(t Table) (Mora, error) {
	return defaultSampler.Random(t)
}

// RandomN draws count valid Mora from t with the process-wide generator.
func RandomN(t Table, count int, uniq bool) ([]Mora, error) {
	return defaultSampler.RandomN(t, count, uniq)
}

// RandomFromColumns builds the table for columns and draws one Mora.
func RandomFromColumns(columns []Column) (Mora, error) {
	return Random(GetTable(columns))
}

// RandomNFromColumns builds the table for columns and draws count Mora.
func RandomNFromColumns(columns []Column, count int, uniq bool) ([]Mora, error) {
	return RandomN(GetTable(columns), count, uniq)
}

// Random draws cells uniformly until it hits a valid Mora. It fails with
// ErrSamplerExhausted when t has no valid Mora.
func (s *Sampler) Random(t Table) (Mora, error) {
	if len(t.Valid()) == 0 {
		return Mora{}, ErrSamplerExhausted
	}
	return s.draw(t), nil
}

// RandomN draws count valid Mora. With uniq false the draws are independent
// and may repeat; with uniq true the result holds count distinct Mora, and t
// must contain at least that many.
func (s *Sampler) RandomN(t Table, count int, uniq bool) ([]Mora, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}
	if count == 0 {
		return []Mora{}, nil
	}

	if len(t.Valid()) == 0 {
		return nil, fmt.Errorf("%w: want %d, have 0", ErrSamplerExhausted, count)
	}
	if uniq {
		if available := len(t.Distinct()); available < count {
			return nil, fmt.Errorf("%w: want %d, have %d", ErrSamplerExhausted, count, available)
		}
	}

	result := make([]Mora, 0, count)
	if !uniq {
		for range count {
			result = append(result, s.draw(t))
		}
		return result, nil
	}

	seen := make(map[Mora]struct{}, count)
	for len(result) < count {
		m := s.draw(t)
		if _, dup := seen[m]; dup {
			continue
		}
		seen[m] = struct{}{}
		result = append(result, m)
	}
	return result, nil
}

// draw assumes t holds at least one valid Mora.
func (s *Sampler) draw(t Table) Mora {
	for {
		m := t.At(s.intN(t.Rows()), s.intN(t.Cols()))
		if m.IsValid() {
			return m
		}
	}
}

// Shuffle returns a copy of moras in random order.
func (s *Sampler) Shuffle(moras []Mora) []Mora {
	shuffled := slices.Clone(moras)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := s.intN(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

// Choose draws count Mora from the valid entries of moras, following the
// rules of RandomN: with uniq the result holds count distinct Mora, without
// it entries may repeat.
func (s *Sampler) Choose(moras []Mora, count int, uniq bool) ([]Mora, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}
	valid := lo.Filter(moras, func(m Mora, _ int) bool { return m.IsValid() })
	if count == 0 {
		return []Mora{}, nil
	}
	if len(valid) == 0 {
		return nil, fmt.Errorf("%w: want %d, have 0", ErrSamplerExhausted, count)
	}

	if uniq {
		distinct := lo.Uniq(valid)
		if len(distinct) < count {
			return nil, fmt.Errorf("%w: want %d, have %d", ErrSamplerExhausted, count, len(distinct))
		}
		return s.Shuffle(distinct)[:count], nil
	}

	result := make([]Mora, count)
	for i := range result {
		result[i] = valid[s.intN(len(valid))]
	}
	return result, nil
}
