package contract

import (
	"donatio_fund/sdk"

	"github.com/holiman/uint256"
)

////////////////////////////////////////////////////////////////////////////////
// Fund Details Store: create once, read forever
////////////////////////////////////////////////////////////////////////////////

// isFundInitialized returns true once instantiate has persisted the details.
func isFundInitialized() bool {
	ptr := getState().Get(KeyFundDetails)
	return ptr != nil && *ptr != ""
}

// createFundDetails validates the instantiate args and builds the immutable
// details record. The goal amount must parse as a non-negative integer that
// fits 128 bits, anything else is InvalidAmount and instantiation dies.
func createFundDetails(args *InstantiateArgs, caller sdk.Address) (*FundDetails, error) {
	goal, err := uint256.FromDecimal(args.GoalAmount)
	if err != nil || goal.BitLen() > 128 {
		return nil, errInvalidAmount(args.GoalAmount)
	}

	owner := args.Owner
	if owner == "" {
		owner = caller
	}

	details := &FundDetails{
		Owner: Owner{
			Address:  owner,
			Email:    args.Email,
			FullName: args.FullName,
		},
		Title:       args.Title,
		Description: args.Description,
		GoalAmount:  goal,
		Denom:       args.Denom,
		ImageURL:    args.ImageURL,
	}
	return details, nil
}

// saveFundDetails persists the record under its fixed key. Called exactly once.
func saveFundDetails(d *FundDetails) {
	getState().Set(KeyFundDetails, marshalToString(*d))
}

// loadFundDetails aborts when the fund was never instantiated, every handler
// needs the details so there is no sane fallback.
func loadFundDetails() *FundDetails {
	ptr := getState().Get(KeyFundDetails)
	if ptr == nil || *ptr == "" {
		sdk.Abort("fund not instantiated")
	}
	var d FundDetails
	unmarshalFromString(*ptr, &d, "fund details")
	return &d
}
