package dashboard

import (
	"errors"
	"log"

	"github.com/nyc-taxis/dashboard/models"
)

// State of the statistics panel
type State string

const (
	StateIdle     State = "idle"     // nothing selected yet
	StateSelected State = "selected" // a region was resolved and aggregated
)

// View is what the display surface renders after one click
type View struct {
	State      State                 `json:"state"`
	Region     *models.Region        `json:"region,omitempty"`
	Statistics *models.Statistics    `json:"statistics,omitempty"`
	Blocks     []models.DisplayBlock `json:"blocks"`
}

// Recorder receives interaction outcomes, e.g. for metrics
type Recorder interface {
	Click()
	InvalidSelection()
	EmptyAggregate()
}

type nopRecorder struct{}

func (nopRecorder) Click()            {}
func (nopRecorder) InvalidSelection() {}
func (nopRecorder) EmptyAggregate()   {}

// Controller turns click events into views. It keeps no state between
// calls, so the same event always produces the same view.
type Controller struct {
	session  *Session
	logger   *log.Logger
	recorder Recorder
}

// Option configures a Controller
type Option func(*Controller)

// WithLogger sets the logger used for invalid-selection faults
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithRecorder sets the outcome recorder
func WithRecorder(r Recorder) Option {
	return func(c *Controller) {
		if r != nil {
			c.recorder = r
		}
	}
}

// NewController creates a controller over an immutable session
func NewController(session *Session, opts ...Option) *Controller {
	c := &Controller{
		session:  session,
		logger:   log.Default(),
		recorder: nopRecorder{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Session returns the session the controller reads from
func (c *Controller) Session() *Session {
	return c.session
}

// Handle processes one click. A nil event is the idle state. An unknown
// region code is logged and answered with the idle view.
func (c *Controller) Handle(ev *models.ClickEvent) View {
	if ev == nil {
		return IdleView()
	}
	c.recorder.Click()

	name, err := c.session.ResolveRegion(ev.RegionCode)
	if err != nil {
		if errors.Is(err, ErrInvalidSelection) {
			c.recorder.InvalidSelection()
		}
		c.logger.Printf("Warning: %v, falling back to idle view", err)
		return IdleView()
	}

	return c.selected(c.session.regions[c.session.byCode[ev.RegionCode]], name)
}

// HandleLocation selects the region containing the lon/lat point
func (c *Controller) HandleLocation(lon, lat float64) View {
	c.recorder.Click()

	region, err := c.session.LocateRegion(lon, lat)
	if err != nil {
		c.recorder.InvalidSelection()
		c.logger.Printf("Warning: %v, falling back to idle view", err)
		return IdleView()
	}

	return c.selected(region, region.Name)
}

func (c *Controller) selected(region models.Region, name string) View {
	stats := c.session.Statistics(name)
	if !stats.HasTrips() {
		c.recorder.EmptyAggregate()
	}

	return View{
		State:      StateSelected,
		Region:     &region,
		Statistics: &stats,
		Blocks:     FormatStatistics(stats),
	}
}

// IdleView is the view before any valid selection
func IdleView() View {
	return View{
		State:  StateIdle,
		Blocks: FormatIdle(),
	}
}
