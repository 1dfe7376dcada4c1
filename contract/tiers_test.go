package contract

import (
	"testing"

	"donatio_fund/sdk"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func units(n uint64) *uint256.Int {
	return new(uint256.Int).Mul(uint256.NewInt(n), uint256.NewInt(AmountScale))
}

func TestResolveRewardTierBoundaries(t *testing.T) {
	cases := []struct {
		units uint64
		tier  string
	}{
		{0, ""},
		{1, ""},
		{10, ""},
		{11, "d-3"},
		{49, "d-3"},
		{50, "d-2"},
		{69, "d-2"},
		{70, "d-1"},
		{99, "d-1"},
		{100, "s"},
		{499, "s"},
		{500, "elite"},
		{12_000_000, "elite"},
	}
	for _, c := range cases {
		tier := resolveRewardTier(units(c.units))
		if c.tier == "" {
			assert.Nil(t, tier, "units=%d", c.units)
			continue
		}
		require.NotNil(t, tier, "units=%d", c.units)
		assert.Equal(t, c.tier, tier.ID, "units=%d", c.units)
	}
}

func TestResolveRewardTierFloorsPartialUnits(t *testing.T) {
	// 10.999999 whole units stays below the lowest bound
	below := new(uint256.Int).Sub(units(11), uint256.NewInt(1))
	assert.Nil(t, resolveRewardTier(below))

	// 49.999999 does not reach the next tier up
	almostFifty := new(uint256.Int).Sub(units(50), uint256.NewInt(1))
	tier := resolveRewardTier(almostFifty)
	require.NotNil(t, tier)
	assert.Equal(t, "d-3", tier.ID)
}

func TestResolveRewardTierHugeAmountHitsTopTier(t *testing.T) {
	huge := new(uint256.Int).Lsh(uint256.NewInt(1), 127)
	tier := resolveRewardTier(huge)
	require.NotNil(t, tier)
	assert.Equal(t, "elite", tier.ID)
}

func TestRewardEligibleDenom(t *testing.T) {
	assert.True(t, rewardEligibleDenom(sdk.AssetHive))
	assert.True(t, rewardEligibleDenom(sdk.AssetHbd))
	assert.False(t, rewardEligibleDenom(sdk.Asset("uxion")))
}
