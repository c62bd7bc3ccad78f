package directory

import "context"

// Finder exposes partner lookup for the menu engine. Implementations
// return exactly three candidates ordered by proximity.
type Finder interface {
	FindNearby(ctx context.Context, landmark string) []Mechanic
}

// StaticFinder implements Finder with a fixed list, suitable for the demo
// deployment where no proximity index exists yet.
type StaticFinder struct {
	items []Mechanic
}

// NewStaticFinder returns a StaticFinder preloaded with the supplied records.
func NewStaticFinder(items []Mechanic) *StaticFinder {
	return &StaticFinder{items: append([]Mechanic(nil), items...)}
}

// FindNearby returns the preloaded candidates regardless of landmark.
func (f *StaticFinder) FindNearby(_ context.Context, _ string) []Mechanic {
	return append([]Mechanic(nil), f.items...)
}

// Seed provides the demo partner records.
func Seed() []Mechanic {
	return []Mechanic{
		{Name: "Musa Workshop", Phone: "08010000001", ETAMinutes: 15},
		{Name: "Tunde's Motors", Phone: "08010000002", ETAMinutes: 20},
		{Name: "Akin Garage", Phone: "08010000003", ETAMinutes: 25},
	}
}
