package contract

import (
	"donatio_fund/sdk"

	"github.com/holiman/uint256"
)

////////////////////////////////////////////////////////////////////////////////
// Withdrawal Handler
////////////////////////////////////////////////////////////////////////////////

// handleWithdraw checks authorization first, then the goal threshold against
// the balance the host actually holds, and describes a single transfer of the
// entire balance to the owner. Lifecycle state never gates withdrawal. There
// is no partial withdrawal and no repeat bookkeeping: after draining, the
// balance sits below the goal and the threshold check fails naturally.
func handleWithdraw() (*WithdrawResult, error) {
	details := loadFundDetails()
	sender := getSenderAddress()

	if sender != details.Owner.Address {
		return nil, ErrUnauthorized
	}

	balance := heldBalance(details.Denom)
	if balance.Lt(details.GoalAmount) {
		return nil, errWithdrawalNotExpected(details.GoalAmount, balance, details.Denom)
	}

	result := &WithdrawResult{
		Transfer: ValueTransfer{
			To:     details.Owner.Address,
			Amount: balance,
			Asset:  details.Denom,
		},
	}
	emitWithdrawalEvent(details.Owner.Address.String(), balance.Dec(), details.Denom.String())
	return result, nil
}

// heldBalance asks the value transfer service what this instance holds in the
// configured currency. A balance the host reports must parse, anything else
// is a corrupt host answer.
func heldBalance(denom sdk.Asset) *uint256.Int {
	raw := sdk.GetBalance(contractAddress(), denom)
	balance, err := uint256.FromDecimal(raw)
	if err != nil || balance.BitLen() > 128 {
		sdk.Abort("host returned unusable balance: " + raw)
	}
	return balance
}
