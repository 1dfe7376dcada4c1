package contract

// Persisted state layout: one record per key, fixed well-known names so
// explorers can read the raw objects directly.
const (
	// KeyFundDetails stores the serialized FundDetails record.
	KeyFundDetails = "fund_details"
	// KeyFundDonations stores the ordered donation ledger.
	KeyFundDonations = "fund_donations"
	// KeyContractState stores the lifecycle state tag.
	KeyContractState = "contract_state"
)
