package contract

import (
	"donatio_fund/sdk"

	"github.com/holiman/uint256"
)

////////////////////////////////////////////////////////////////////////////////
// Reward Tier Resolver: static range table over normalized whole units
////////////////////////////////////////////////////////////////////////////////

// RewardTier is one row of the static tier table. Bounds are inclusive whole
// units; MaxUnits == 0 marks the open-ended top tier.
type RewardTier struct {
	MinUnits    uint64
	MaxUnits    uint64
	ID          string
	MetadataURI string
}

// rewardTiers is checked in order, ranges are disjoint and ascending.
// Donations below the lowest bound earn nothing, that is not an error.
var rewardTiers = []RewardTier{
	{MinUnits: 11, MaxUnits: 49, ID: "d-3", MetadataURI: "ipfs://bafybeidonatiotierd3meta2f7zqk4lhw3a"},
	{MinUnits: 50, MaxUnits: 69, ID: "d-2", MetadataURI: "ipfs://bafybeidonatiotierd2meta6c4rvm5nxu7q"},
	{MinUnits: 70, MaxUnits: 99, ID: "d-1", MetadataURI: "ipfs://bafybeidonatiotierd1metavszw2e3hqjle"},
	{MinUnits: 100, MaxUnits: 499, ID: "s", MetadataURI: "ipfs://bafybeidonatiotiersmeta4tj6p2yrqhbxi"},
	{MinUnits: 500, MaxUnits: 0, ID: "elite", MetadataURI: "ipfs://bafybeidonatiotierelitemetawq5gcrrn"},
}

// resolveRewardTier maps a raw donation amount (minimal units) to its tier.
// Normalization is floor division by AmountScale, so partial units never
// bump a donation into the next tier. Returns nil for no reward.
func resolveRewardTier(amount *uint256.Int) *RewardTier {
	units := new(uint256.Int).Div(amount, uint256.NewInt(AmountScale))
	if !units.IsUint64() {
		// beyond uint64 whole units, this is far past the top bound
		return &rewardTiers[len(rewardTiers)-1]
	}
	n := units.Uint64()
	for i := range rewardTiers {
		t := &rewardTiers[i]
		if n < t.MinUnits {
			return nil
		}
		if t.MaxUnits == 0 || n <= t.MaxUnits {
			return t
		}
	}
	return nil
}

// rewardEligibleDenom gates issuance on the fund currency, independent of the
// tier match.
func rewardEligibleDenom(denom sdk.Asset) bool {
	for _, a := range rewardAssets {
		if a == denom {
			return true
		}
	}
	return false
}
