package domain

import "github.com/pkg/errors"

// PrizeKind classifies what a wheel segment awards.
type PrizeKind string

const (
	PrizePoints   PrizeKind = "points"
	PrizeDiscount PrizeKind = "discount"
	PrizeGift     PrizeKind = "gift"
	PrizeNothing  PrizeKind = "nothing"
)

// WheelSegment is one slice of the spin wheel.
type WheelSegment struct {
	Label string
	Kind  PrizeKind
	Value int64 // points for PrizePoints, percent for PrizeDiscount
	Color string
}

// AwardsPoints returns true if landing here credits the loyalty account.
func (s WheelSegment) AwardsPoints() bool {
	return s.Kind == PrizePoints && s.Value > 0
}

// RandomSource picks an index in [0, n). *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	IntN(n int) int
}

// SpinWheel is the rewards wheel of the game zone.
type SpinWheel struct {
	segments []WheelSegment
}

// DefaultWheelSegments returns the game zone's wheel.
func DefaultWheelSegments() []WheelSegment {
	return []WheelSegment{
		{Label: "50 Points", Kind: PrizePoints, Value: 50, Color: "#FF6B6B"},
		{Label: "10% Off", Kind: PrizeDiscount, Value: 10, Color: "#4ECDC4"},
		{Label: "Try Again", Kind: PrizeNothing, Value: 0, Color: "#45B7D1"},
		{Label: "100 Points", Kind: PrizePoints, Value: 100, Color: "#96CEB4"},
		{Label: "Free Gift", Kind: PrizeGift, Value: 0, Color: "#FFEAA7"},
		{Label: "200 Points", Kind: PrizePoints, Value: 200, Color: "#DDA0DD"},
		{Label: "Jackpot!", Kind: PrizePoints, Value: 500, Color: "#FFD700"},
		{Label: "20% Off", Kind: PrizeDiscount, Value: 20, Color: "#98D8C8"},
	}
}

// NewSpinWheel validates the segments.
func NewSpinWheel(segments []WheelSegment) (*SpinWheel, error) {
	if len(segments) == 0 {
		return nil, errors.New("spin wheel needs at least one segment")
	}
	for i, s := range segments {
		if s.Label == "" {
			return nil, errors.Errorf("segment %d has no label", i)
		}
		if s.Value < 0 {
			return nil, errors.Wrapf(ErrInvalidAmount, "segment %s", s.Label)
		}
		switch s.Kind {
		case PrizePoints, PrizeDiscount, PrizeGift, PrizeNothing:
		default:
			return nil, errors.Errorf("segment %s has unknown kind %q", s.Label, s.Kind)
		}
	}

	out := make([]WheelSegment, len(segments))
	copy(out, segments)
	return &SpinWheel{segments: out}, nil
}

// Segments returns the wheel segments in order.
func (w *SpinWheel) Segments() []WheelSegment {
	out := make([]WheelSegment, len(w.segments))
	copy(out, w.segments)
	return out
}

// Spin lands on a segment chosen uniformly by rng.
func (w *SpinWheel) Spin(rng RandomSource) (int, WheelSegment) {
	i := rng.IntN(len(w.segments))
	return i, w.segments[i]
}
