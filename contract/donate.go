package contract

import (
	"strings"

	"donatio_fund/sdk"

	"github.com/holiman/uint256"
)

////////////////////////////////////////////////////////////////////////////////
// Donation Handler
////////////////////////////////////////////////////////////////////////////////

// handleDonate runs the full donation flow: lifecycle gate, currency check,
// ledger append, closure evaluation and reward resolution. It only describes
// outbound effects (draw, mint) in the result, the export layer hands them to
// the host so the whole request stays one atomic unit.
func handleDonate(message string) (*DonateResult, error) {
	details := loadFundDetails()
	sender := getSenderAddress()

	fundState := loadFundState()
	if err := donationGate(fundState); err != nil {
		return nil, err
	}

	payment := attachedPayment()
	if payment != nil && payment.Asset != details.Denom {
		return nil, errCurrencyMismatch(payment.Asset, details.Denom)
	}

	result := &DonateResult{
		Participant: sender,
		Message:     message,
		Amount:      uint256.NewInt(0),
	}
	if payment == nil || payment.Amount.IsZero() {
		// valid no-op: nothing recorded, nothing rewarded
		emitDonationEvent(sender.String(), "0")
		return result, nil
	}

	donation := Donation{
		Participant: sender,
		Message:     message,
		Amount:      payment.Amount,
	}
	list := appendDonation(donation)
	result.Amount = payment.Amount

	total, err := donationTotal(list)
	if err != nil {
		return nil, err
	}
	newState := evaluateClosure(fundState, total, details.GoalAmount)
	result.Closed = newState == FundClosed

	if tier := resolveRewardTier(payment.Amount); tier != nil && rewardEligibleDenom(details.Denom) {
		result.Reward = &RewardIssuance{
			Recipient: sender,
			TokenID:   rewardTokenID(tier.ID, sender),
			TokenURI:  tier.MetadataURI,
			Contract:  RewardCollectionContract,
		}
	}

	emitDonationEvent(sender.String(), payment.Amount.Dec())
	if result.Closed {
		emitFundClosedEvent(total.Dec())
	}
	if result.Reward != nil {
		emitRewardEvent(result.Reward.TokenID, sender.String())
	}
	return result, nil
}

// rewardTokenID composes tier, per-tx ordering token and sender into a
// deterministic token id that stays unique even for repeat donors at the
// same tier in the same block.
func rewardTokenID(tierID string, sender sdk.Address) string {
	return strings.Join([]string{tierID, orderingToken(), sender.String()}, "-")
}
