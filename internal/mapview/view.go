// Package mapview keeps an interactive map and a workout list in step with
// the client store. Rendering is delegated to the Map, ListView and FormView
// collaborators; this package owns only the state that ties them together.
package mapview

import (
	"context"

	"github.com/google/uuid"
	"github.com/paulmach/orb"

	"github.com/pkordes/workout-map/internal/domain"
)

// Map is the interactive map surface.
type Map interface {
	SetView(center domain.Coordinates, zoom int)
	AddMarker(at domain.Coordinates, popup Popup) Marker
	FitBounds(b orb.Bound)
}

// Marker is a placed map marker.
type Marker interface {
	OpenPopup()
	Remove()
}

// Popup is the content bound to a marker.
type Popup struct {
	Content   string
	ClassName string
}

// ListView is the workout list next to the map.
type ListView interface {
	AddRow(r Row)
	RemoveRow(id uuid.UUID)
}

// FormView is the new-workout form.
type FormView interface {
	Open()
	// Reset clears every input and hides the form.
	Reset()
}

// Notifier shows a short message to the user.
type Notifier interface {
	Notify(msg string)
}

// Locator resolves the user's current position once.
type Locator interface {
	Locate(ctx context.Context) (domain.Coordinates, error)
}

// Store is the subset of client.Store the controller uses.
type Store interface {
	LoadAll(ctx context.Context) error
	Create(ctx context.Context, f domain.Fields) (domain.Workout, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Get(id uuid.UUID) (domain.Workout, bool)
	All() []domain.Workout
}

// Row is one entry of the workout list.
type Row struct {
	ID          uuid.UUID
	Kind        domain.Kind
	Title       string
	Icon        string
	Distance    float64 // km
	Duration    float64 // min
	Metric      *float64
	MetricUnit  string // "spm" or "m"
	HasLocation bool
}

// Icon returns the emoji shown next to a workout of kind k.
func Icon(k domain.Kind) string {
	if k == domain.KindRunning {
		return "🏃‍♂️"
	}
	return "🚴‍♀️"
}

func rowFor(w domain.Workout) Row {
	r := Row{
		ID:          w.ID,
		Kind:        w.Kind,
		Title:       w.Description(),
		Icon:        Icon(w.Kind),
		Distance:    w.Distance,
		Duration:    w.Duration,
		HasLocation: w.HasLocation(),
	}
	if w.Kind == domain.KindRunning {
		r.Metric, r.MetricUnit = w.Cadence, "spm"
	} else {
		r.Metric, r.MetricUnit = w.ElevationGain, "m"
	}
	return r
}

func popupFor(w domain.Workout) Popup {
	return Popup{
		Content:   Icon(w.Kind) + " " + w.Description(),
		ClassName: string(w.Kind) + "-popup",
	}
}
