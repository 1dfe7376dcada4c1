package contract

import (
	"donatio_fund/sdk"
)

////////////////////////////////////////////////////////////////////////////////
// Entry Points
////////////////////////////////////////////////////////////////////////////////

// The exported functions decode the raw payload, run the matching handler and
// execute whatever effects the handler described. Caller mistakes revert with
// a symbol, internal faults abort.

// Instantiate sets up the one fund this instance manages. Runs exactly once.
// Example payload: "Clean Water|Well for the village|ow@mail.io|Owen Ner|5000000|hive|ipfs://bafy...|hive:owen"
func Instantiate(payload *string) *string {
	if isFundInitialized() {
		sdk.Abort("fund already initialized")
	}
	args := decodeInstantiateArgs(payload)
	details, err := createFundDetails(args, getSenderAddress())
	if err != nil {
		return fail(err)
	}

	saveFundDetails(details)
	saveDonations(DonationList{})
	saveFundState(FundOpen)
	return strptr(marshalToString(*details))
}

// Donate records an attached payment under the sender, pulls the funds in and
// mints the matching reward. Without an attached payment it is a valid no-op.
// Example payload: "keep up the good work"
func Donate(payload *string) *string {
	message := unwrapOptionalPayload(payload)
	result, err := handleDonate(message)
	if err != nil {
		return fail(err)
	}

	if result.Amount != nil && !result.Amount.IsZero() {
		denom := loadFundDetails().Denom
		sdk.HiveDraw(result.Amount.Dec(), denom)
	}
	if result.Reward != nil {
		sdk.ContractCall(result.Reward.Contract, RewardMintMethod, marshalToString(*result.Reward), nil)
	}
	return strptr(marshalToString(*result))
}

// Withdraw moves the full held balance to the owner once the goal is met.
func Withdraw(_ *string) *string {
	result, err := handleWithdraw()
	if err != nil {
		return fail(err)
	}

	t := result.Transfer
	sdk.HiveTransfer(t.To, t.Amount.Dec(), t.Asset)
	return strptr(marshalToString(*result))
}

// GetDetails returns the stored fund configuration.
func GetDetails(_ *string) *string {
	return strptr(handleGetDetails())
}

// GetDonations returns the ordered donation ledger.
func GetDonations(_ *string) *string {
	return strptr(handleGetDonations())
}

// GetTotal returns the summed donation total as a decimal string.
func GetTotal(_ *string) *string {
	total, err := handleGetTotal()
	if err != nil {
		return fail(err)
	}
	return strptr(total)
}

// fail routes a handler error to the host: rule violations revert with their
// symbol, arithmetic faults abort because no caller can fix those.
func fail(err error) *string {
	if cerr, ok := err.(*ContractError); ok {
		if cerr == ErrArithmeticOverflow {
			sdk.Abort(cerr.Msg)
		}
		sdk.Revert(cerr.Msg, cerr.Symbol)
		return nil
	}
	sdk.Abort(err.Error())
	return nil
}
