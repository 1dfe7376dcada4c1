package contract

////////////////////////////////////////////////////////////////////////////////
// Query Handlers: read-only views, never mutate anything
////////////////////////////////////////////////////////////////////////////////

// handleGetDetails returns the fund configuration as stored at instantiation.
func handleGetDetails() string {
	return marshalToString(*loadFundDetails())
}

// handleGetDonations returns the full ordered ledger.
func handleGetDonations() string {
	return marshalToString(loadDonations())
}

// handleGetTotal folds the ledger on every call instead of reading a cached
// counter, so the answer can never disagree with the entries.
func handleGetTotal() (string, error) {
	total, err := donationTotal(loadDonations())
	if err != nil {
		return "", err
	}
	return total.Dec(), nil
}
