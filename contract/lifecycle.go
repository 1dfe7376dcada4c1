package contract

import (
	"github.com/holiman/uint256"
)

////////////////////////////////////////////////////////////////////////////////
// Fund Lifecycle State Machine
////////////////////////////////////////////////////////////////////////////////

// FundState captures the fund's lifecycle phase.
type FundState uint8

const (
	// FundOpen accepts donations. Initial state at instantiation.
	FundOpen FundState = 0
	// FundClosed is entered automatically once the goal is met. One-way.
	FundClosed FundState = 1
	// FundPending and FundCanceled are terminal-input states reserved for
	// administrative host actions. Donate always fails in them.
	FundPending  FundState = 2
	FundCanceled FundState = 3
)

// String prints the state as lower-case text for storage and logs.
// Example payload: FundClosed.String()
func (s FundState) String() string {
	switch s {
	case FundOpen:
		return "open"
	case FundClosed:
		return "closed"
	case FundPending:
		return "pending"
	case FundCanceled:
		return "canceled"
	default:
		return "open"
	}
}

func fundStateFromString(tag string) FundState {
	switch tag {
	case "closed":
		return FundClosed
	case "pending":
		return FundPending
	case "canceled":
		return FundCanceled
	default:
		return FundOpen
	}
}

func loadFundState() FundState {
	ptr := getState().Get(KeyContractState)
	if ptr == nil || *ptr == "" {
		return FundOpen
	}
	return fundStateFromString(*ptr)
}

func saveFundState(s FundState) {
	getState().Set(KeyContractState, s.String())
}

// donationGate maps the current state to the matching donation rejection.
// Withdraw is deliberately not gated here: donation-gating and
// withdrawal-gating are separate rules.
func donationGate(s FundState) error {
	switch s {
	case FundOpen:
		return nil
	case FundClosed:
		return ErrFundraiserClosed
	case FundPending:
		return ErrFundraiserPending
	default:
		return ErrFundraiserCanceled
	}
}

// evaluateClosure flips Open to Closed once the post-append total meets the
// goal. The crossing donation is already recorded at this point, only later
// ones get rejected. Closed is never left again.
func evaluateClosure(current FundState, total, goal *uint256.Int) FundState {
	if current != FundOpen {
		return current
	}
	if total.Cmp(goal) >= 0 {
		saveFundState(FundClosed)
		return FundClosed
	}
	return current
}
