package loyalty

import (
	"math"

	"github.com/shopspring/decimal"
)

const (
	// BonusThreshold is the cart total that must be exceeded to earn the bonus.
	BonusThreshold = 200
	// BonusPoints is awarded once per cart above the threshold.
	BonusPoints = 10
	// PointsDivisor is the amount spent per point.
	PointsDivisor = 10

	premiumType = "premium"
)

// Item is a priced cart line. A nil Price marks a line without a usable price.
type Item struct {
	Type  string           `json:"type" yaml:"type"`
	Price *decimal.Decimal `json:"price" yaml:"price"`
}

// Result describes how the points were obtained.
type Result struct {
	TotalPoints  int  `json:"totalPoints"`
	BonusApplied bool `json:"bonusApplied"`
}

var (
	divisor   = decimal.NewFromInt(PointsDivisor)
	threshold = decimal.NewFromInt(BonusThreshold)
	bonus     = decimal.NewFromInt(BonusPoints)
	maxPoints = decimal.NewFromInt(math.MaxInt)
)

// pointsAndTotal accrues base points and sums the prices of valid lines.
func pointsAndTotal(items []Item) (decimal.Decimal, decimal.Decimal) {
	points := decimal.Zero
	total := decimal.Zero
	for _, it := range items {
		if it.Price == nil || it.Price.IsNegative() {
			continue
		}
		rate := decimal.NewFromInt(1)
		if it.Type == premiumType {
			rate = decimal.NewFromInt(2)
		}
		points = points.Add(rate.Mul(it.Price.Div(divisor).Floor()))
		total = total.Add(*it.Price)
	}
	return points, total
}

// toInt saturates at math.MaxInt so oversized carts never wrap negative.
func toInt(points decimal.Decimal) int {
	if points.GreaterThan(maxPoints) {
		return math.MaxInt
	}
	return int(points.IntPart())
}

// CalculatePoints returns the loyalty points earned by the cart.
func CalculatePoints(items []Item) int {
	return Analyze(items).TotalPoints
}

// Analyze returns the points together with whether the bonus was applied.
func Analyze(items []Item) Result {
	points, total := pointsAndTotal(items)
	applied := total.GreaterThan(threshold)
	if applied {
		points = points.Add(bonus)
	}
	return Result{TotalPoints: toInt(points), BonusApplied: applied}
}
