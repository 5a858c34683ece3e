package game

import (
	"errors"
	"testing"
	"time"

	"github.com/DMailloux03/DominosMemoryGame/internal/order"
)

func threeFields() []order.Field {
	return []order.Field{
		{ID: "sauce", Expected: 3.0, Unit: "oz"},
		{ID: "cheese-bottom", Expected: 4.5, Unit: "oz"},
		{ID: "provolone", Expected: 4.0, Unit: "oz"},
	}
}

func TestSpeedBonusBounds(t *testing.T) {
	if got := SpeedBonus(10*time.Second, 3, 3); got != SpeedBonusMax {
		t.Fatalf("bonus at 10s = %d, want %d", got, SpeedBonusMax)
	}
	if got := SpeedBonus(20*time.Second, 3, 3); got != SpeedBonusMax {
		t.Fatalf("bonus at 20s = %d, want %d", got, SpeedBonusMax)
	}
	if got := SpeedBonus(90*time.Second, 3, 3); got != 0 {
		t.Fatalf("bonus at 90s = %d, want 0", got)
	}
	if got := SpeedBonus(300*time.Second, 3, 3); got != 0 {
		t.Fatalf("bonus at 300s = %d, want 0", got)
	}
}

func TestSpeedBonusIsMonotone(t *testing.T) {
	prev := SpeedBonusMax
	for secs := 0; secs <= 120; secs++ {
		got := SpeedBonus(time.Duration(secs)*time.Second, 1, 1)
		if got > prev {
			t.Fatalf("bonus increased at %ds: %d -> %d", secs, prev, got)
		}
		prev = got
	}
}

func TestSpeedBonusScalesWithAccuracy(t *testing.T) {
	full := SpeedBonus(10*time.Second, 3, 3)
	partial := SpeedBonus(10*time.Second, 1, 3)

	if full != 20 {
		t.Fatalf("full-accuracy bonus = %d, want 20", full)
	}
	if partial != 7 {
		// 20 * 1/3 rounded
		t.Fatalf("one-of-three bonus = %d, want 7", partial)
	}
}

func TestScorePerfectSubmission(t *testing.T) {
	result, err := Score(threeFields(), map[string]string{
		"sauce":         "3.0",
		"cheese-bottom": "4.5",
		"provolone":     "4.0",
	}, 10*time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Correct != 3 || result.Incorrect != 0 {
		t.Fatalf("counts = %d/%d, want 3/0", result.Correct, result.Incorrect)
	}
	if result.Base != 24 {
		t.Fatalf("base = %d, want 24", result.Base)
	}
	if result.Bonus != 20 {
		t.Fatalf("bonus = %d, want 20", result.Bonus)
	}
	if result.Earned != 44 {
		t.Fatalf("earned = %d, want 44", result.Earned)
	}
	if !result.Perfect {
		t.Fatalf("perfect submission not marked perfect")
	}
}

func TestScoreWithinTolerance(t *testing.T) {
	result, err := Score(threeFields(), map[string]string{
		"sauce":         "3.04",
		"cheese-bottom": "4.46",
		"provolone":     "4.0",
	}, 10*time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Correct != 3 {
		t.Fatalf("tolerance not applied: %d correct", result.Correct)
	}
}

func TestScoreOneFieldOff(t *testing.T) {
	result, err := Score(threeFields(), map[string]string{
		"sauce":         "3.2",
		"cheese-bottom": "4.5",
		"provolone":     "4.0",
	}, 95*time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Correct != 2 || result.Incorrect != 1 {
		t.Fatalf("counts = %d/%d, want 2/1", result.Correct, result.Incorrect)
	}
	if result.Base != 12 {
		t.Fatalf("base = %d, want 12", result.Base)
	}
	if result.Bonus != 0 {
		t.Fatalf("bonus past the slow cutoff = %d, want 0", result.Bonus)
	}
	if result.Earned != 12 {
		t.Fatalf("earned = %d, want 12", result.Earned)
	}
	if result.Perfect {
		t.Fatalf("imperfect submission marked perfect")
	}

	// The missed field carries the formatted answer.
	for _, fr := range result.Fields {
		if fr.ID == "sauce" {
			if fr.Correct {
				t.Fatalf("sauce off by 0.2 marked correct")
			}
			if fr.Answer != "3 oz" {
				t.Fatalf("answer = %q, want %q", fr.Answer, "3 oz")
			}
		}
	}
}

func TestScoreNeverGoesNegative(t *testing.T) {
	result, err := Score(threeFields(), map[string]string{
		"sauce":         "0",
		"cheese-bottom": "0",
		"provolone":     "0",
	}, 120*time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Base != -12 {
		t.Fatalf("base = %d, want -12", result.Base)
	}
	if result.Earned != 0 {
		t.Fatalf("earned = %d, want 0", result.Earned)
	}
}

func TestScoreIsAtomic(t *testing.T) {
	// Missing field.
	_, err := Score(threeFields(), map[string]string{
		"sauce":         "3.0",
		"cheese-bottom": "4.5",
	}, time.Second)
	if !errors.Is(err, ErrIncompleteSubmission) {
		t.Fatalf("missing field: got %v", err)
	}

	// Non-numeric field.
	_, err = Score(threeFields(), map[string]string{
		"sauce":         "3.0",
		"cheese-bottom": "a lot",
		"provolone":     "4.0",
	}, time.Second)
	if !errors.Is(err, ErrIncompleteSubmission) {
		t.Fatalf("non-numeric field: got %v", err)
	}
}
