package lockbox

import (
	"testing"
	"time"

	"github.com/giansalex/cw-lockbox/testutil"
	"github.com/giansalex/cw-lockbox/types"
)

var baseTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestConditionMet_TimeAxis(t *testing.T) {
	cond := types.ReleaseCondition{Kind: types.ConditionTime, ReleaseAt: baseTime.Add(10 * time.Second)}

	testutil.AssertFalse(t, conditionMet(cond, baseTime, 0), "before threshold")
	testutil.AssertFalse(t, conditionMet(cond, baseTime.Add(5*time.Second), 0), "still before threshold")
	testutil.AssertTrue(t, conditionMet(cond, baseTime.Add(10*time.Second), 0), "exactly at threshold")
	testutil.AssertTrue(t, conditionMet(cond, baseTime.Add(20*time.Second), 0), "after threshold")
}

func TestConditionMet_HeightAxis(t *testing.T) {
	cond := types.ReleaseCondition{Kind: types.ConditionHeight, ReleaseHeight: 100}

	testutil.AssertFalse(t, conditionMet(cond, baseTime, 99))
	testutil.AssertTrue(t, conditionMet(cond, baseTime, 100), "exactly at threshold height")
	testutil.AssertTrue(t, conditionMet(cond, baseTime, 500))
}

func TestConditionMet_IsMonotonic(t *testing.T) {
	cond := types.ReleaseCondition{Kind: types.ConditionTime, ReleaseAt: baseTime.Add(time.Minute)}

	met := false
	for i := 0; i <= 120; i += 10 {
		now := baseTime.Add(time.Duration(i) * time.Second)
		current := conditionMet(cond, now, 0)
		if met && !current {
			t.Fatalf("condition regressed from met to unmet at +%ds", i)
		}
		met = current
	}
	testutil.AssertTrue(t, met, "condition must eventually be met")
}

func TestConditionMet_UnknownKind(t *testing.T) {
	cond := types.ReleaseCondition{Kind: types.ConditionKind(9)}
	testutil.AssertFalse(t, conditionMet(cond, baseTime, 1000), "unknown axis never satisfies")
}

func TestValidateCondition_Time(t *testing.T) {
	maxDur := time.Hour

	valid := types.ReleaseCondition{Kind: types.ConditionTime, ReleaseAt: baseTime.Add(10 * time.Minute)}
	testutil.AssertNoError(t, validateCondition(valid, baseTime, 0, maxDur, 0))

	past := types.ReleaseCondition{Kind: types.ConditionTime, ReleaseAt: baseTime.Add(-time.Second)}
	testutil.AssertErrorIs(t, validateCondition(past, baseTime, 0, maxDur, 0), ErrInvalidReleaseCondition)

	exactlyNow := types.ReleaseCondition{Kind: types.ConditionTime, ReleaseAt: baseTime}
	testutil.AssertErrorIs(t, validateCondition(exactlyNow, baseTime, 0, maxDur, 0), ErrInvalidReleaseCondition,
		"a condition at the current block time is not in the future")

	zero := types.ReleaseCondition{Kind: types.ConditionTime}
	testutil.AssertErrorIs(t, validateCondition(zero, baseTime, 0, maxDur, 0), ErrInvalidReleaseCondition)

	tooFar := types.ReleaseCondition{Kind: types.ConditionTime, ReleaseAt: baseTime.Add(2 * time.Hour)}
	testutil.AssertErrorIs(t, validateCondition(tooFar, baseTime, 0, maxDur, 0), ErrConditionTooFar)

	// Zero max duration disables the bound
	testutil.AssertNoError(t, validateCondition(tooFar, baseTime, 0, 0, 0))
}

func TestValidateCondition_Height(t *testing.T) {
	valid := types.ReleaseCondition{Kind: types.ConditionHeight, ReleaseHeight: 150}
	testutil.AssertNoError(t, validateCondition(valid, baseTime, 100, 0, 1000))

	atCurrent := types.ReleaseCondition{Kind: types.ConditionHeight, ReleaseHeight: 100}
	testutil.AssertErrorIs(t, validateCondition(atCurrent, baseTime, 100, 0, 1000), ErrInvalidReleaseCondition)

	behind := types.ReleaseCondition{Kind: types.ConditionHeight, ReleaseHeight: 50}
	testutil.AssertErrorIs(t, validateCondition(behind, baseTime, 100, 0, 1000), ErrInvalidReleaseCondition)

	tooFar := types.ReleaseCondition{Kind: types.ConditionHeight, ReleaseHeight: 5000}
	testutil.AssertErrorIs(t, validateCondition(tooFar, baseTime, 100, 0, 1000), ErrConditionTooFar)
}

func TestValidateCondition_UnknownKind(t *testing.T) {
	cond := types.ReleaseCondition{Kind: types.ConditionKind(7)}
	testutil.AssertErrorIs(t, validateCondition(cond, baseTime, 0, 0, 0), ErrInvalidReleaseCondition)
}
