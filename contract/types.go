package contract

import (
	"donatio_fund/sdk"

	"github.com/holiman/uint256"
)

// Owner identifies who may withdraw the raised funds. Set once at
// instantiation, never updated.
type Owner struct {
	Address  sdk.Address
	Email    string
	FullName string
}

// FundDetails is the immutable configuration of the single fund this contract
// instance represents.
type FundDetails struct {
	Owner       Owner
	Title       string
	Description string
	GoalAmount  *uint256.Int
	Denom       sdk.Asset
	ImageURL    string
}

// Donation is one accepted contribution. Amounts are minimal currency units
// and always > 0, zero-amount donations never reach the ledger.
type Donation struct {
	Participant sdk.Address
	Message     string
	Amount      *uint256.Int
}

// DonationList is the persisted append-only ledger.
type DonationList []Donation

// InstantiateArgs carries the decoded instantiate payload.
type InstantiateArgs struct {
	Title       string
	Description string
	Email       string
	FullName    string
	GoalAmount  string
	Denom       sdk.Asset
	ImageURL    string
	Owner       sdk.Address // optional, falls back to the caller
}

// RewardIssuance instructs the host to mint a reward token for a participant.
// The contract only decides the parameters, the reward collection contract
// does the minting.
type RewardIssuance struct {
	Recipient sdk.Address
	TokenID   string
	TokenURI  string
	Contract  string
}

// ValueTransfer instructs the host to move native currency.
type ValueTransfer struct {
	To     sdk.Address
	Amount *uint256.Int
	Asset  sdk.Asset
}

// DonateResult reports what a donation request actually did. Amount is zero
// for the valid no-op case.
type DonateResult struct {
	Participant sdk.Address
	Message     string
	Amount      *uint256.Int
	Closed      bool
	Reward      *RewardIssuance
}

// WithdrawResult carries the single full-balance transfer towards the owner.
type WithdrawResult struct {
	Transfer ValueTransfer
}
