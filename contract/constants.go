package contract

import "donatio_fund/sdk"

// -----------------------------------------------------------------------------
// Supported Assets
// -----------------------------------------------------------------------------

// validAssets lists the asset types the host can attach to a request at all.
var validAssets = []string{
	sdk.AssetHive.String(),
	sdk.AssetHbd.String(),
}

// rewardAssets gates reward issuance: only funds denominated in one of these
// currencies mint reward tokens, independent of the tier match.
var rewardAssets = []sdk.Asset{
	sdk.AssetHive,
	sdk.AssetHbd,
}

// -----------------------------------------------------------------------------
// Amount Scaling
// -----------------------------------------------------------------------------

// AmountScale is the smallest-whole-unit factor of the accepted currencies.
// Tier lookup works on whole units, so raw amounts are floor-divided by this.
const AmountScale = 1_000_000

// -----------------------------------------------------------------------------
// Reward Collection
// -----------------------------------------------------------------------------

// RewardCollectionContract is the reward token collection this fund mints
// into. Static deployment configuration, not caller input.
const RewardCollectionContract = "contract:donatio-nfts"

// RewardMintMethod is the entry point on the collection contract.
const RewardMintMethod = "mint"
