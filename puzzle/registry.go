package puzzle

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

var numberNames = []string{
	"", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
	"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen",
	"seventeen", "eighteen", "nineteen", "twenty", "twentyone", "twentytwo",
	"twentythree", "twentyfour", "twentyfive",
}

// Registry maps day names to their solvers.
type Registry struct {
	byName map[string]int
	days   []Day
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: map[string]int{}}
}

// Register adds d under its number, its english name and each of d.Names.
// Nothing is registered if any of those keys is already taken.
func (r *Registry) Register(d Day) error {
	if d.Number < 1 || d.Number >= len(numberNames) {
		return fmt.Errorf("%w: %d", ErrInvalidDay, d.Number)
	}
	if d.PartOne == nil || d.PartTwo == nil {
		return fmt.Errorf("puzzle: day %d is missing a solver", d.Number)
	}

	keys := append([]string{strconv.Itoa(d.Number), numberNames[d.Number]}, d.Names...)
	for i, k := range keys {
		k = normalizeName(k)
		if _, ok := r.byName[k]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateDay, k)
		}
		if slices.Contains(keys[:i], k) {
			return fmt.Errorf("%w: %q listed twice", ErrDuplicateDay, k)
		}
		keys[i] = k
	}

	r.days = append(r.days, d)
	for _, k := range keys {
		r.byName[k] = len(r.days) - 1
	}
	return nil
}

// Lookup finds a day by number or name, ignoring case and surrounding space.
func (r *Registry) Lookup(name string) (Day, error) {
	i, ok := r.byName[normalizeName(name)]
	if !ok {
		return Day{}, fmt.Errorf("%w: %q", ErrUnknownDay, name)
	}
	return r.days[i], nil
}

// Days returns the registered days ordered by number.
func (r *Registry) Days() []Day {
	days := slices.Clone(r.days)
	slices.SortStableFunc(days, func(a, b Day) int { return a.Number - b.Number })
	return days
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Default returns a registry holding every implemented day.
func Default() *Registry {
	r := NewRegistry()
	if err := r.Register(DaySixteen); err != nil {
		panic(err)
	}
	return r
}
