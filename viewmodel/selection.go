// Package viewmodel holds the storefront's page state: the product detail
// selection (color, storage tier, EMI plan) and the loaders that feed it.
package viewmodel

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-faster/errors"

	"github.com/Madhav-Gupta-28/emi-store-backend-go/models"
	"github.com/Madhav-Gupta-28/emi-store-backend-go/pricing"
)

var (
	ErrNoProduct      = errors.New("no product loaded")
	ErrNoPlanSelected = errors.New("no EMI plan selected")
	ErrOutOfRange     = errors.New("selection out of range")
	ErrClosed         = errors.New("view model closed")
)

// DefaultTransitionDelay is how long the product image stays hidden while the
// displayed color swaps.
const DefaultTransitionDelay = 300 * time.Millisecond

// NoPlan is the PlanIndex of a state without a selected plan.
const NoPlan = -1

// State is a snapshot of the selection.
//
// ColorIndex is what the user picked; DisplayedColorIndex is the image being
// shown. They differ while an image transition is pending.
type State struct {
	ColorIndex          int
	StorageIndex        int
	PlanIndex           int
	DisplayedColorIndex int
	ImageVisible        bool
}

func (s State) HasPlan() bool { return s.PlanIndex != NoPlan }

func initialState() State {
	return State{PlanIndex: NoPlan, ImageVisible: true}
}

type SelectionOption func(*Selection)

func WithScheduler(s Scheduler) SelectionOption {
	return func(sel *Selection) { sel.sched = s }
}

func WithTransitionDelay(d time.Duration) SelectionOption {
	return func(sel *Selection) { sel.delay = d }
}

// Selection is the detail-page state machine for one loaded product. The
// product is never mutated. Close must be called when the page goes away so a
// pending image transition cannot fire into a dead view.
type Selection struct {
	product *models.Product
	sched   Scheduler
	delay   time.Duration

	mu         sync.Mutex
	state      State
	pending    Timer
	transition uint64
	closed     bool
}

func NewSelection(product *models.Product, opts ...SelectionOption) (*Selection, error) {
	if product == nil {
		return nil, ErrNoProduct
	}
	s := &Selection{
		product: product,
		sched:   timeScheduler{},
		delay:   DefaultTransitionDelay,
		state:   initialState(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Selection) Product() *models.Product { return s.product }

func (s *Selection) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SelectColor picks a color. Re-selecting the current color does nothing.
// Otherwise the plan is cleared, the image hides, and after the transition
// delay the new color is displayed.
func (s *Selection) SelectColor(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	if i < 0 || i >= len(s.product.Colors) {
		return errors.Wrapf(ErrOutOfRange, "color %d of %d", i, len(s.product.Colors))
	}
	if i == s.state.ColorIndex {
		return nil
	}

	s.state.ColorIndex = i
	s.state.PlanIndex = NoPlan
	s.state.ImageVisible = false

	s.stopPending()
	s.transition++
	gen := s.transition
	s.pending = s.sched.AfterFunc(s.delay, func() { s.showColor(gen, i) })
	return nil
}

func (s *Selection) showColor(gen uint64, i int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	// stale: superseded by a newer color or torn down
	if s.closed || gen != s.transition {
		return
	}
	s.state.DisplayedColorIndex = i
	s.state.ImageVisible = true
	s.pending = nil
}

// SelectStorage picks a storage tier and always clears the plan, even when i is
// the current tier.
func (s *Selection) SelectStorage(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	if i < 0 || i >= len(s.product.StorageOptions) {
		return errors.Wrapf(ErrOutOfRange, "storage %d of %d", i, len(s.product.StorageOptions))
	}
	s.state.StorageIndex = i
	s.state.PlanIndex = NoPlan
	return nil
}

// SelectPlan picks the i-th plan of the current storage tier. Plans are
// identified by position, so equal-valued plans are distinct choices.
func (s *Selection) SelectPlan(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	plans := s.product.StorageOptions[s.state.StorageIndex].EmiPlans
	if i < 0 || i >= len(plans) {
		return errors.Wrapf(ErrOutOfRange, "plan %d of %d", i, len(plans))
	}
	s.state.PlanIndex = i
	return nil
}

// Color is the selected color, which may not be displayed yet.
func (s *Selection) Color() models.Color {
	st := s.State()
	return s.product.Colors[st.ColorIndex]
}

// DisplayedColor is the color whose image is on screen.
func (s *Selection) DisplayedColor() models.Color {
	st := s.State()
	return s.product.Colors[st.DisplayedColorIndex]
}

func (s *Selection) Storage() models.StorageOption {
	st := s.State()
	return s.product.StorageOptions[st.StorageIndex]
}

// Plans lists the derived plan views of the current tier only.
func (s *Selection) Plans() []pricing.PlanView {
	return pricing.PlanViews(s.Storage())
}

func (s *Selection) SelectedPlan() (models.EmiPlan, bool) {
	st := s.State()
	if !st.HasPlan() {
		return models.EmiPlan{}, false
	}
	return s.product.StorageOptions[st.StorageIndex].EmiPlans[st.PlanIndex], true
}

// Proceed returns the confirmation for the selected plan. It changes nothing.
func (s *Selection) Proceed() (string, error) {
	s.mu.Lock()
	st, closed := s.state, s.closed
	s.mu.Unlock()
	if closed {
		return "", ErrClosed
	}
	if !st.HasPlan() {
		return "", ErrNoPlanSelected
	}
	storage := s.product.StorageOptions[st.StorageIndex]
	plan := storage.EmiPlans[st.PlanIndex]
	color := s.product.Colors[st.ColorIndex]
	return fmt.Sprintf("Proceeding with %s/mo x %d months plan for %s %s %s",
		pricing.FormatRupees(plan.MonthlyAmount), plan.Tenure, s.product.Name, color.Name, storage.Size), nil
}

// Close cancels any pending image transition. Further selections fail with ErrClosed.
func (s *Selection) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.stopPending()
}

func (s *Selection) stopPending() {
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
}
