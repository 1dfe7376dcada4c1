package contract

import (
	"fmt"

	"donatio_fund/sdk"

	"github.com/holiman/uint256"
)

// ContractError is a caller-visible failure. The export layer surfaces it via
// sdk.Revert so the host rolls the whole request back, nothing is ever
// half-applied.
type ContractError struct {
	Symbol string
	Msg    string
}

func (e *ContractError) Error() string {
	return e.Msg
}

var (
	ErrFundraiserClosed   = &ContractError{Symbol: "fundraiser_closed", Msg: "fundraiser closed"}
	ErrFundraiserPending  = &ContractError{Symbol: "fundraiser_pending", Msg: "fundraiser pending, please wait"}
	ErrFundraiserCanceled = &ContractError{Symbol: "fundraiser_canceled", Msg: "this fundraiser has been canceled"}
	ErrUnauthorized       = &ContractError{Symbol: "unauthorized", Msg: "unauthorized"}

	// ErrArithmeticOverflow is an internal fault: the ledger fold left 128 bits.
	// The export layer aborts on it instead of reverting.
	ErrArithmeticOverflow = &ContractError{Symbol: "arithmetic_overflow", Msg: "donation total overflows 128 bits"}
)

// errInvalidAmount flags an instantiate goal that does not parse as an
// unsigned 128 bit integer.
func errInvalidAmount(raw string) *ContractError {
	return &ContractError{
		Symbol: "invalid_amount",
		Msg:    fmt.Sprintf("invalid goal amount %q, expected unsigned 128-bit integer", raw),
	}
}

// errCurrencyMismatch rejects donations attached in the wrong currency.
func errCurrencyMismatch(got, want sdk.Asset) *ContractError {
	return &ContractError{
		Symbol: "currency_mismatch",
		Msg:    fmt.Sprintf("donation attached in %s but this fund accepts %s", got, want),
	}
}

// errWithdrawalNotExpected reports the expected/current amounts so the owner
// can see how far off the goal still is.
func errWithdrawalNotExpected(expected, current *uint256.Int, denom sdk.Asset) *ContractError {
	return &ContractError{
		Symbol: "withdrawal_not_expected",
		Msg: fmt.Sprintf("cannot withdraw, fundraiser holds %s %s and needs %s",
			current.Dec(), denom, expected.Dec()),
	}
}
