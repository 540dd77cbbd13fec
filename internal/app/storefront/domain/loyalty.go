package domain

import (
	"github.com/pkg/errors"
)

// MembershipTier is a named loyalty level unlocked at MinPoints.
type MembershipTier struct {
	Name      string
	MinPoints int64
	Perks     []string
}

// TierProgress describes how far a point total is toward the next tier.
type TierProgress struct {
	Current                   MembershipTier
	Next                      *MembershipTier // nil at the highest tier
	PointsIntoCurrentTier     int64
	PointsRequiredForNextTier int64 // span between current and next thresholds; 0 at the highest tier
	PointsToNextTier          int64
	Percentage                float64
}

// IsTopTier returns true when there is no next tier.
func (p TierProgress) IsTopTier() bool {
	return p.Next == nil
}

// TierTable is an ordered, ascending threshold table.
type TierTable struct {
	tiers []MembershipTier
}

// DefaultTiers returns the storefront's membership levels.
func DefaultTiers() []MembershipTier {
	return []MembershipTier{
		{Name: "Bronze", MinPoints: 0, Perks: []string{"Basic game access", "5% welcome coupon"}},
		{Name: "Silver", MinPoints: 1000, Perks: []string{"Free shipping over $100", "Birthday discount"}},
		{Name: "Gold", MinPoints: 2500, Perks: []string{"Free shipping on all orders", "10% member discount", "Early access to sales"}},
		{Name: "Platinum", MinPoints: 7500, Perks: []string{"15% member discount", "Free express shipping", "Exclusive AI features"}},
	}
}

// NewTierTable validates and copies tiers. An empty table is allowed;
// lookups on it fail with ErrNoTiersConfigured.
func NewTierTable(tiers []MembershipTier) (*TierTable, error) {
	table := &TierTable{tiers: make([]MembershipTier, 0, len(tiers))}

	for i, t := range tiers {
		if t.Name == "" {
			return nil, errors.Wrapf(ErrInvalidTierTable, "tier %d has no name", i)
		}
		if i == 0 && t.MinPoints != 0 {
			return nil, errors.Wrapf(ErrInvalidTierTable, "lowest tier %s starts at %d", t.Name, t.MinPoints)
		}
		if i > 0 && t.MinPoints <= tiers[i-1].MinPoints {
			return nil, errors.Wrapf(ErrInvalidTierTable, "tier %s threshold %d does not exceed %d",
				t.Name, t.MinPoints, tiers[i-1].MinPoints)
		}

		perks := make([]string, len(t.Perks))
		copy(perks, t.Perks)
		table.tiers = append(table.tiers, MembershipTier{Name: t.Name, MinPoints: t.MinPoints, Perks: perks})
	}

	return table, nil
}

// Tiers returns the tiers in ascending order.
func (tt *TierTable) Tiers() []MembershipTier {
	out := make([]MembershipTier, len(tt.tiers))
	copy(out, tt.tiers)
	return out
}

// Len returns the number of tiers.
func (tt *TierTable) Len() int {
	return len(tt.tiers)
}

// CurrentTier returns the last tier whose threshold is <= points.
func (tt *TierTable) CurrentTier(points int64) (MembershipTier, error) {
	i, err := tt.index(points)
	if err != nil {
		return MembershipTier{}, err
	}
	return tt.tiers[i], nil
}

// ProgressToNextTier reports progress from the current tier toward the next one.
// Percentage = min(100, into / required * 100); 100 at the highest tier.
func (tt *TierTable) ProgressToNextTier(points int64) (TierProgress, error) {
	i, err := tt.index(points)
	if err != nil {
		return TierProgress{}, err
	}

	current := tt.tiers[i]
	progress := TierProgress{
		Current:               current,
		PointsIntoCurrentTier: points - current.MinPoints,
		Percentage:            100,
	}

	if i == len(tt.tiers)-1 {
		return progress, nil
	}

	next := tt.tiers[i+1]
	required := next.MinPoints - current.MinPoints
	progress.Next = &next
	progress.PointsRequiredForNextTier = required
	progress.PointsToNextTier = next.MinPoints - points
	progress.Percentage = min(100, float64(progress.PointsIntoCurrentTier)/float64(required)*100)

	return progress, nil
}

func (tt *TierTable) index(points int64) (int, error) {
	if len(tt.tiers) == 0 {
		return 0, ErrNoTiersConfigured
	}

	idx := 0
	for i, t := range tt.tiers {
		if t.MinPoints <= points {
			idx = i
		}
	}
	return idx, nil
}

// LoyaltyAccount accumulates points. The tier is always derived, never stored.
type LoyaltyAccount struct {
	points int64
}

// NewLoyaltyAccount creates an account starting at zero points.
func NewLoyaltyAccount() *LoyaltyAccount {
	return &LoyaltyAccount{}
}

// Points returns the current point total.
func (a *LoyaltyAccount) Points() int64 {
	return a.points
}

// AddPoints increments the point total. Zero is accepted and changes nothing.
func (a *LoyaltyAccount) AddPoints(amount int64) error {
	if amount < 0 {
		return errors.Wrapf(ErrInvalidAmount, "got %d", amount)
	}
	a.points += amount
	return nil
}
