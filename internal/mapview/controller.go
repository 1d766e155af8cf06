package mapview

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/paulmach/orb"

	"github.com/pkordes/workout-map/internal/domain"
)

// Zoom is the map zoom used when centering on the user or a workout.
const Zoom = 13

// Notices shown to the user.
const (
	NoticeNoLocation     = "Could not get your location"
	NoticeLoadFailed     = "Failed to fetch workouts."
	NoticeClickMapFirst  = "Click on the map to set a location first."
	NoticeBadDistance    = "Distance and duration must be positive numbers."
	NoticeBadCadence     = "Cadence must be a positive number."
	NoticeBadElevation   = "Elevation gain must be a number."
	NoticeBadKind        = "Choose running or cycling."
	NoticeSubmitInFlight = "A workout is already being saved."
	NoticeCreateFailed   = "Failed to create workout."
	NoticeDeleteFailed   = "Failed to delete workout."
	NoticeMapLoading     = "The map is still loading."
)

// State is the controller's position in the add-workout flow.
type State int

const (
	Idle State = iota
	AwaitingLocation
	FormOpen
	Submitting
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case AwaitingLocation:
		return "awaiting-location"
	case FormOpen:
		return "form-open"
	case Submitting:
		return "submitting"
	}
	return "unknown"
}

// ErrStarted is returned by Start on a controller that already left Idle.
var ErrStarted = errors.New("mapview: already started")

// ErrRejected is returned by Submit when the submission was refused
// locally; the user has already been notified.
var ErrRejected = errors.New("mapview: submission rejected")

// Form holds the raw form inputs.
type Form struct {
	Kind      string
	Distance  string
	Duration  string
	Cadence   string
	Elevation string
}

// Deps are the collaborators a Controller drives.
//
// Map, List and the Markers it returns are called with the controller's lock
// held and must not call back into the Controller synchronously. Form, Notify
// and Store are always called with the lock released.
type Deps struct {
	Map    Map
	List   ListView
	Form   FormView
	Notify Notifier
	Store  Store
	Logger *slog.Logger
}

type placed struct {
	marker Marker
	at     orb.Point
}

// Controller ties map clicks, the form, the list and the markers to the
// store. Every entity is keyed by its server id; the controller never
// renders a workout the server has not confirmed.
//
// The mutex guards state, the cursor, markers and rows. It is never held
// across a Locator or Store call.
type Controller struct {
	d Deps

	mu      sync.Mutex
	state   State
	pending *domain.Coordinates
	markers map[uuid.UUID]placed
	rows    map[uuid.UUID]struct{}
}

// New constructs an idle Controller.
func New(d Deps) *Controller {
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	return &Controller{
		d:       d,
		markers: make(map[uuid.UUID]placed),
		rows:    make(map[uuid.UUID]struct{}),
	}
}

// State returns the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Pending returns the location picked by the last map click, if any.
func (c *Controller) Pending() (domain.Coordinates, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending == nil {
		return domain.Coordinates{}, false
	}
	return *c.pending, true
}

// Start locates the user once, centers the map on them and renders every
// stored workout. A failed location lookup leaves the controller Idle. A
// failed load still makes the map usable; the user is notified either way.
func (c *Controller) Start(ctx context.Context, loc Locator) error {
	c.mu.Lock()
	if c.state != Idle {
		c.mu.Unlock()
		return ErrStarted
	}
	c.mu.Unlock()

	at, err := loc.Locate(ctx)
	if err != nil {
		c.d.Logger.WarnContext(ctx, "geolocation failed", "error", err)
		c.d.Notify.Notify(NoticeNoLocation)
		return fmt.Errorf("mapview.Controller.Start: %w", err)
	}

	c.mu.Lock()
	c.d.Map.SetView(at, Zoom)
	c.state = AwaitingLocation
	c.mu.Unlock()

	if err := c.d.Store.LoadAll(ctx); err != nil {
		c.d.Logger.WarnContext(ctx, "load workouts failed", "error", err)
		c.d.Notify.Notify(NoticeLoadFailed)
		return fmt.Errorf("mapview.Controller.Start: %w", err)
	}

	all := c.d.Store.All()
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, w := range all {
		c.render(w)
	}
	return nil
}

// MapClicked records the clicked location as the pending cursor and opens
// the form. The last click wins, including during a submission.
func (c *Controller) MapClicked(at domain.Coordinates) {
	c.mu.Lock()
	if c.state == Idle {
		c.mu.Unlock()
		c.d.Notify.Notify(NoticeMapLoading)
		return
	}
	cursor := at
	c.pending = &cursor
	if c.state == Submitting {
		c.mu.Unlock()
		return
	}
	c.state = FormOpen
	c.mu.Unlock()

	c.d.Form.Open()
}

// Submit checks the form locally, creates the workout through the store and
// renders it. Local rejections return ErrRejected without any network call.
// On success the form is reset and the cursor cleared; on failure the cursor
// is kept so the user can retry.
func (c *Controller) Submit(ctx context.Context, f Form) (domain.Workout, error) {
	c.mu.Lock()
	if c.state == Submitting {
		c.mu.Unlock()
		c.d.Notify.Notify(NoticeSubmitInFlight)
		return domain.Workout{}, ErrRejected
	}
	if c.pending == nil {
		c.mu.Unlock()
		c.d.Notify.Notify(NoticeClickMapFirst)
		return domain.Workout{}, ErrRejected
	}
	fields, notice := parseForm(f)
	if notice != "" {
		c.mu.Unlock()
		c.d.Notify.Notify(notice)
		return domain.Workout{}, ErrRejected
	}
	submitted := *c.pending
	fields.Coordinates = &submitted
	c.state = Submitting
	c.mu.Unlock()

	created, err := c.d.Store.Create(ctx, fields)

	c.mu.Lock()
	if err != nil {
		c.state = FormOpen
		c.mu.Unlock()
		c.d.Logger.WarnContext(ctx, "create workout failed", "error", err)
		c.d.Notify.Notify(NoticeCreateFailed)
		return domain.Workout{}, fmt.Errorf("mapview.Controller.Submit: %w", err)
	}

	c.render(created)
	// Clicked elsewhere while saving: keep that location for the next workout.
	reopen := c.pending != nil && *c.pending != submitted
	if reopen {
		c.state = FormOpen
	} else {
		c.pending = nil
		c.state = AwaitingLocation
	}
	c.mu.Unlock()

	c.d.Form.Reset()
	if reopen {
		c.d.Form.Open()
	}
	return created, nil
}

// Select centers the map on a listed workout and re-opens its popup.
// Workouts without a marker are ignored.
func (c *Controller) Select(id uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, ok := c.markers[id]
	if !ok {
		return
	}
	c.d.Map.SetView(domain.CoordinatesFromPoint(p.at), Zoom)
	p.marker.OpenPopup()
}

// Delete removes a workout through the store, then drops its row and marker.
// A workout the server no longer has is removed from the view too.
func (c *Controller) Delete(ctx context.Context, id uuid.UUID) error {
	err := c.d.Store.Delete(ctx, id)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		c.d.Logger.WarnContext(ctx, "delete workout failed", "id", id, "error", err)
		c.d.Notify.Notify(NoticeDeleteFailed)
		return fmt.Errorf("mapview.Controller.Delete: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if p, ok := c.markers[id]; ok {
		p.marker.Remove()
		delete(c.markers, id)
	}
	if _, ok := c.rows[id]; ok {
		c.d.List.RemoveRow(id)
		delete(c.rows, id)
	}
	return nil
}

// FitAll zooms the map to the bounding box of every marker.
// Returns false when there is nothing to fit.
func (c *Controller) FitAll() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.markers) == 0 {
		return false
	}
	points := make(orb.MultiPoint, 0, len(c.markers))
	for _, p := range c.markers {
		points = append(points, p.at)
	}
	c.d.Map.FitBounds(points.Bound())
	return true
}

// render adds the list row and, when the workout has a location, the marker.
// Each id is rendered at most once. Caller holds c.mu.
func (c *Controller) render(w domain.Workout) {
	if _, ok := c.rows[w.ID]; !ok {
		c.d.List.AddRow(rowFor(w))
		c.rows[w.ID] = struct{}{}
	}
	if !w.HasLocation() {
		return
	}
	if _, ok := c.markers[w.ID]; ok {
		return
	}
	m := c.d.Map.AddMarker(*w.Coordinates, popupFor(w))
	m.OpenPopup()
	c.markers[w.ID] = placed{marker: m, at: w.Coordinates.Point()}
}

// parseForm applies the same checks the server will, so obviously bad input
// never costs a request. It returns the notice to show on rejection.
func parseForm(f Form) (domain.Fields, string) {
	kind, err := domain.ParseKind(strings.TrimSpace(f.Kind))
	if err != nil {
		return domain.Fields{}, NoticeBadKind
	}

	distance, okDist := parsePositive(f.Distance)
	duration, okDur := parsePositive(f.Duration)
	if !okDist || !okDur {
		return domain.Fields{}, NoticeBadDistance
	}

	fields := domain.Fields{Kind: kind, Distance: distance, Duration: duration}
	switch kind {
	case domain.KindRunning:
		cadence, ok := parsePositive(f.Cadence)
		if !ok {
			return domain.Fields{}, NoticeBadCadence
		}
		fields.Cadence = &cadence
	case domain.KindCycling:
		elevation, ok := parseFinite(f.Elevation)
		if !ok {
			return domain.Fields{}, NoticeBadElevation
		}
		fields.ElevationGain = &elevation
	}
	return fields, ""
}

func parseFinite(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func parsePositive(s string) (float64, bool) {
	v, ok := parseFinite(s)
	return v, ok && v > 0
}
