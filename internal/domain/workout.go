// Package domain contains the core data types for the workout map application.
// It is imported by every other internal package (repo, service, handler,
// client, mapview) and depends on nothing inside this module.
package domain

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Kind is the closed set of workout variants. The kind decides which of the
// conditional fields (Cadence or ElevationGain) a workout must carry.
type Kind string

const (
	KindRunning Kind = "running"
	KindCycling Kind = "cycling"
)

// ParseKind returns the Kind named by s, or a ValidationError on field "kind".
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindRunning, KindCycling:
		return k, nil
	}
	return "", invalid("kind", fmt.Sprintf("must be one of %q or %q, got %q", KindRunning, KindCycling, s))
}

// Title returns the kind with its first letter upper-cased ("Running").
func (k Kind) Title() string {
	if k == "" {
		return ""
	}
	return strings.ToUpper(string(k[:1])) + string(k[1:])
}

// Workout is a single recorded activity. Exactly one of Cadence and
// ElevationGain is non-nil, chosen by Kind.
//
// Coordinates is a pointer only so that documents read back from older
// stores can be represented on the client; every workout built by
// NewWorkout has it set.
type Workout struct {
	ID            uuid.UUID
	Kind          Kind
	Distance      float64 // km
	Duration      float64 // min
	Coordinates   *Coordinates
	Cadence       *float64 // steps per minute, running only
	ElevationGain *float64 // metres, cycling only
	CustomMetrics map[string]any
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Description is the display label "<Kind> on <Month> <Day>", derived from
// Kind and CreatedAt. Neither changes after creation, so neither does the label.
func (w Workout) Description() string {
	return fmt.Sprintf("%s on %s %d", w.Kind.Title(), w.CreatedAt.Month(), w.CreatedAt.Day())
}

// HasLocation reports whether the workout can be placed on a map.
func (w Workout) HasLocation() bool {
	return w.Coordinates != nil
}

// Fields carries the raw values a workout is constructed from.
// Nil pointers mean "not supplied".
type Fields struct {
	Kind          Kind
	Distance      float64
	Duration      float64
	Coordinates   *Coordinates
	Cadence       *float64
	ElevationGain *float64
	CustomMetrics map[string]any
	CreatedAt     *time.Time
}

// NewWorkout validates f and returns the workout it describes.
// Coordinates are checked first: a workout cannot exist without a location.
// The returned workout has a zero ID until the store assigns one.
func NewWorkout(f Fields) (Workout, error) {
	if f.Coordinates == nil {
		return Workout{}, invalid("coordinates", "latitude and longitude are required")
	}
	if err := f.Coordinates.Validate(); err != nil {
		return Workout{}, err
	}

	kind, err := ParseKind(string(f.Kind))
	if err != nil {
		return Workout{}, err
	}

	if !finite(f.Distance) || f.Distance <= 0 {
		return Workout{}, invalid("distance", "must be a positive number")
	}
	if !finite(f.Duration) || f.Duration <= 0 {
		return Workout{}, invalid("duration", "must be a positive number")
	}

	switch kind {
	case KindRunning:
		if f.Cadence == nil {
			return Workout{}, invalid("cadence", "is required for running workouts")
		}
		if !finite(*f.Cadence) || *f.Cadence <= 0 {
			return Workout{}, invalid("cadence", "must be a positive number")
		}
		if f.ElevationGain != nil {
			return Workout{}, invalid("elevationGain", "is not allowed for running workouts")
		}
	case KindCycling:
		if f.ElevationGain == nil {
			return Workout{}, invalid("elevationGain", "is required for cycling workouts")
		}
		if !finite(*f.ElevationGain) {
			return Workout{}, invalid("elevationGain", "must be a finite number")
		}
		if f.Cadence != nil {
			return Workout{}, invalid("cadence", "is not allowed for cycling workouts")
		}
	}

	created := time.Now().UTC()
	if f.CreatedAt != nil && !f.CreatedAt.IsZero() {
		created = f.CreatedAt.UTC()
	}

	metrics := f.CustomMetrics
	if metrics == nil {
		metrics = map[string]any{}
	}

	coords := *f.Coordinates
	return Workout{
		Kind:          kind,
		Distance:      f.Distance,
		Duration:      f.Duration,
		Coordinates:   &coords,
		Cadence:       copyFloat(f.Cadence),
		ElevationGain: copyFloat(f.ElevationGain),
		CustomMetrics: metrics,
		CreatedAt:     created,
	}, nil
}

// Patch is a partial update. Nil fields keep the stored value.
type Patch struct {
	Kind          *Kind
	Distance      *float64
	Duration      *float64
	Coordinates   *Coordinates
	Cadence       *float64
	ElevationGain *float64
	CustomMetrics map[string]any
}

// Apply overlays p on w and re-validates the merged document.
// When p switches the kind, the counterpart field inherited from w is dropped,
// so the patch itself must supply the field the new kind requires.
// ID and CreatedAt are carried over unchanged.
func (w Workout) Apply(p Patch) (Workout, error) {
	f := Fields{
		Kind:          w.Kind,
		Distance:      w.Distance,
		Duration:      w.Duration,
		Coordinates:   w.Coordinates,
		Cadence:       w.Cadence,
		ElevationGain: w.ElevationGain,
		CustomMetrics: w.CustomMetrics,
		CreatedAt:     &w.CreatedAt,
	}

	if p.Kind != nil && *p.Kind != w.Kind {
		f.Kind = *p.Kind
		f.Cadence = nil
		f.ElevationGain = nil
	}
	if p.Distance != nil {
		f.Distance = *p.Distance
	}
	if p.Duration != nil {
		f.Duration = *p.Duration
	}
	if p.Coordinates != nil {
		f.Coordinates = p.Coordinates
	}
	if p.Cadence != nil {
		f.Cadence = p.Cadence
	}
	if p.ElevationGain != nil {
		f.ElevationGain = p.ElevationGain
	}
	if p.CustomMetrics != nil {
		f.CustomMetrics = p.CustomMetrics
	}

	merged, err := NewWorkout(f)
	if err != nil {
		return Workout{}, err
	}
	merged.ID = w.ID
	merged.UpdatedAt = w.UpdatedAt
	return merged, nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func copyFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}
