package seatmap

import "slices"

// Selection is an ordered set of seat numbers; toggling keeps first-selection order.
type Selection struct {
	numbers []string
}

func NewSelection(numbers ...string) Selection {
	s := Selection{numbers: make([]string, 0, len(numbers))}

	for _, number := range numbers {
		if !s.Contains(number) {
			s.numbers = append(s.numbers, number)
		}
	}

	return s
}

func (s Selection) Contains(seatNumber string) bool {
	return slices.Contains(s.numbers, seatNumber)
}

func (s Selection) Len() int {
	return len(s.numbers)
}

func (s Selection) Numbers() []string {
	return slices.Clone(s.numbers)
}

func (s *Selection) toggle(seatNumber string) (selected bool) {
	if i := slices.Index(s.numbers, seatNumber); i >= 0 {
		s.numbers = slices.Delete(s.numbers, i, i+1)

		return false
	}

	s.numbers = append(s.numbers, seatNumber)

	return true
}

func (s Selection) clone() Selection {
	return Selection{numbers: slices.Clone(s.numbers)}
}
