package game

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/DMailloux03/DominosMemoryGame/internal/catalog"
	"github.com/DMailloux03/DominosMemoryGame/internal/order"
)

// Scoring constants. A field counts as correct within the tolerance;
// the speed bonus decays linearly between the two cutoffs.
const (
	Tolerance           = 0.05
	PointsPerCorrect    = 8
	PenaltyPerIncorrect = 4
	SpeedBonusMax       = 20
	SpeedBonusFastSecs  = 20.0
	SpeedBonusSlowSecs  = 90.0
	OrdersPerRound      = 20
)

// ErrIncompleteSubmission aborts a check with no state mutated. It is
// not a wrong answer: the trainee just has to fill every field in.
var ErrIncompleteSubmission = errors.New("fill in every field before checking")

// FieldResult is the per-field outcome of a check.
type FieldResult struct {
	ID        string  `json:"id"`
	Submitted float64 `json:"submitted"`
	Correct   bool    `json:"correct"`

	// Answer carries the formatted expected value for missed fields.
	Answer string `json:"answer,omitempty"`
}

// CheckResult is the outcome of scoring one submission.
type CheckResult struct {
	Fields    []FieldResult `json:"fields"`
	Correct   int           `json:"correct"`
	Incorrect int           `json:"incorrect"`
	Base      int           `json:"base_points"`
	Bonus     int           `json:"speed_bonus"`
	Earned    int           `json:"earned"`
	Perfect   bool          `json:"perfect"`
}

// rawSpeedBonus maps elapsed seconds onto the unscaled bonus: full
// bonus at or under the fast cutoff, zero at or past the slow one.
func rawSpeedBonus(elapsedSecs float64) float64 {
	if elapsedSecs <= SpeedBonusFastSecs {
		return SpeedBonusMax
	}
	if elapsedSecs >= SpeedBonusSlowSecs {
		return 0
	}
	return SpeedBonusMax * (SpeedBonusSlowSecs - elapsedSecs) / (SpeedBonusSlowSecs - SpeedBonusFastSecs)
}

// SpeedBonus is the raw bonus scaled by accuracy and rounded.
func SpeedBonus(elapsed time.Duration, correct, total int) int {
	if total == 0 {
		return 0
	}
	raw := rawSpeedBonus(elapsed.Seconds())
	return int(math.Round(raw * float64(correct) / float64(total)))
}

// Score compares a submission against the round's fields. The whole
// submission is atomic: any missing or non-numeric value aborts with
// ErrIncompleteSubmission and no partial credit.
func Score(fields []order.Field, submitted map[string]string, elapsed time.Duration) (*CheckResult, error) {
	values := make(map[string]float64, len(fields))
	for _, field := range fields {
		raw, ok := submitted[field.ID]
		if !ok {
			return nil, ErrIncompleteSubmission
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, ErrIncompleteSubmission
		}
		values[field.ID] = value
	}

	result := &CheckResult{}
	for _, field := range fields {
		value := values[field.ID]
		fr := FieldResult{ID: field.ID, Submitted: value}

		if math.Abs(value-field.Expected) <= Tolerance {
			fr.Correct = true
			result.Correct++
		} else {
			fr.Answer = catalog.FormatAmount(field.Expected) + " " + field.Unit
			result.Incorrect++
		}
		result.Fields = append(result.Fields, fr)
	}

	result.Base = result.Correct*PointsPerCorrect - result.Incorrect*PenaltyPerIncorrect
	result.Bonus = SpeedBonus(elapsed, result.Correct, len(fields))
	if earned := result.Base + result.Bonus; earned > 0 {
		result.Earned = earned
	}
	result.Perfect = result.Incorrect == 0

	return result, nil
}
