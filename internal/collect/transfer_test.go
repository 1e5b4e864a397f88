package collect_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/autocollect/internal/collect"
	"github.com/cory-johannsen/autocollect/internal/farm"
)

func milk(q farm.Quality, stack int) *farm.Item {
	return farm.NewItem("(O)184", "Milk", "Animal Product", q, stack)
}

func TestDeposit_AppendsCopy(t *testing.T) {
	chest := farm.NewChest(36)
	src := milk(farm.QualityHigh, 2)

	outcome, err := collect.Deposit(src, []*farm.Chest{chest})
	require.NoError(t, err)
	assert.Equal(t, collect.Appended, outcome)
	require.Equal(t, 1, chest.Len())

	stored := chest.Items()[0]
	assert.NotEqual(t, src.InstanceID, stored.InstanceID, "slot must hold a copy")

	src.Stack = 0
	assert.Equal(t, 2, chest.Items()[0].Stack, "mutating the source must not affect the stored copy")
}

func TestDeposit_MergesIntoCompatibleSlot(t *testing.T) {
	chest := farm.NewChest(36, milk(farm.QualityLow, 1), milk(farm.QualityHigh, 4))
	outcome, err := collect.Deposit(milk(farm.QualityHigh, 2), []*farm.Chest{chest})
	require.NoError(t, err)
	assert.Equal(t, collect.Merged, outcome)
	assert.Equal(t, 2, chest.Len())
	assert.Equal(t, 6, chest.Items()[1].Stack)
}

func TestDeposit_MergesBareAndQualifiedIDs(t *testing.T) {
	chest := farm.NewChest(1, &farm.Item{ID: "176", Name: "Egg", Quality: farm.QualityLow, Stack: 3})
	egg := farm.NewItem("(O)176", "Egg", "Animal Product", farm.QualityLow, 1)

	outcome, err := collect.Deposit(egg, []*farm.Chest{chest})
	require.NoError(t, err)
	assert.Equal(t, collect.Merged, outcome)
	assert.Equal(t, 4, chest.Items()[0].Stack)
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "merged", collect.Merged.String())
	assert.Equal(t, "appended", collect.Appended.String())
	assert.Equal(t, "not_deposited", collect.NotDeposited.String())
}

func TestDeposit_FirstFitAcrossChests(t *testing.T) {
	first := farm.NewChest(36)
	second := farm.NewChest(36, milk(farm.QualityLow, 1))

	outcome, err := collect.Deposit(milk(farm.QualityLow, 1), []*farm.Chest{first, second})
	require.NoError(t, err)
	assert.Equal(t, collect.Appended, outcome, "first chest with room wins even without a compatible stack")
	assert.Equal(t, 1, first.Len())
	assert.Equal(t, 1, second.TotalQuantity())
}

// Scenario C: the only chest is full.
func TestDeposit_AllFull(t *testing.T) {
	chest := fillChest(36, "(O)390")
	outcome, err := collect.Deposit(milk(farm.QualityLow, 1), []*farm.Chest{chest})
	assert.NoError(t, err)
	assert.Equal(t, collect.NotDeposited, outcome)
	assert.False(t, outcome.OK())
	assert.Equal(t, 36, chest.Len())
}

func TestDeposit_FullChestWithCompatibleStackIsSkipped(t *testing.T) {
	full := fillChest(2, "(O)184")
	outcome, _ := collect.Deposit(farm.NewItem("(O)184", "Stone", "Resource", farm.QualityLow, 1), []*farm.Chest{full})
	assert.Equal(t, collect.NotDeposited, outcome)
	assert.Equal(t, 2, full.TotalQuantity())
}

// Scenario E: first chest full, second holds a compatible stack.
func TestDeposit_ScenarioE(t *testing.T) {
	full := fillChest(36, "(O)390")
	second := farm.NewChest(36, milk(farm.QualityHigh, 3))

	outcome, err := collect.Deposit(milk(farm.QualityHigh, 1), []*farm.Chest{full, second})
	require.NoError(t, err)
	assert.Equal(t, collect.Merged, outcome)
	assert.Equal(t, 1, second.Len(), "no new slot")
	assert.Equal(t, 4, second.Items()[0].Stack)
}

func TestDeposit_MalformedChestIsSkipped(t *testing.T) {
	good := farm.NewChest(36)
	outcome, err := collect.Deposit(milk(farm.QualityLow, 1), []*farm.Chest{nil, good})
	assert.Equal(t, collect.Appended, outcome)
	require.Error(t, err)
	assert.True(t, errors.Is(err, farm.ErrMalformedChest))
	assert.Equal(t, 1, good.Len())
}

func TestDeposit_OnlyMalformed(t *testing.T) {
	outcome, err := collect.Deposit(milk(farm.QualityLow, 1), []*farm.Chest{nil})
	assert.Equal(t, collect.NotDeposited, outcome)
	assert.Error(t, err)
}

func TestDeposit_EmptyInputs(t *testing.T) {
	outcome, err := collect.Deposit(milk(farm.QualityLow, 1), nil)
	assert.NoError(t, err)
	assert.Equal(t, collect.NotDeposited, outcome)

	outcome, err = collect.Deposit(nil, []*farm.Chest{farm.NewChest(36)})
	assert.Error(t, err)
	assert.Equal(t, collect.NotDeposited, outcome)
}

func TestProperty_DepositConservesAndRespectsCapacity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		nChests := rapid.IntRange(0, 4).Draw(t, "chests")
		chests := make([]*farm.Chest, nChests)
		for i := range chests {
			capacity := rapid.IntRange(1, 6).Draw(t, "capacity")
			pre := rapid.IntRange(0, capacity).Draw(t, "prefill")
			chests[i] = farm.NewChest(capacity)
			for j := 0; j < pre; j++ {
				q := farm.QualityFromTier(rapid.SampledFrom([]int{0, 1, 2, 4}).Draw(t, "q"))
				_ = chests[i].Append(milk(q, rapid.IntRange(1, 5).Draw(t, "s")))
			}
		}
		total := func() int {
			sum := 0
			for _, c := range chests {
				sum += c.TotalQuantity()
			}
			return sum
		}

		attempts := rapid.IntRange(1, 20).Draw(t, "attempts")
		for i := 0; i < attempts; i++ {
			q := farm.QualityFromTier(rapid.SampledFrom([]int{0, 1, 2, 4}).Draw(t, "q"))
			src := milk(q, rapid.IntRange(1, 5).Draw(t, "stack"))
			before := total()
			srcBefore := src.Stack

			outcome, _ := collect.Deposit(src, chests)

			if src.Stack != srcBefore {
				t.Fatalf("source stack mutated: %d -> %d", srcBefore, src.Stack)
			}
			want := before
			if outcome.OK() {
				want += srcBefore
			}
			if got := total(); got != want {
				t.Fatalf("outcome %s: destination total %d, want %d", outcome, got, want)
			}
			for _, c := range chests {
				if c.Len() > c.Capacity {
					t.Fatalf("chest len %d exceeds capacity %d", c.Len(), c.Capacity)
				}
			}
		}
	})
}
