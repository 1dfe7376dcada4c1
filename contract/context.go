package contract

import (
	"strconv"

	"donatio_fund/sdk"

	"github.com/holiman/uint256"
)

// cachedEnv/cachedPayment are scoped to the currently executing transaction.
// Whenever the tx.id changes we refresh sdk.GetEnv() and drop any memoized
// data to keep reads consistent.
var (
	cachedEnv       sdk.Env
	cachedEnvLoaded bool
	cachedPayment   *AttachedPayment
	paymentResolved bool
)

// currentEnv caches the env per tx.id so we dont poke the host api every few
// lines and ensures subsequent helper calls always see the same snapshot.
func currentEnv() *sdk.Env {
	var currentTx string
	if txPtr := sdk.GetEnvKey("tx.id"); txPtr != nil {
		currentTx = *txPtr
	}
	if !cachedEnvLoaded || cachedEnv.TxId != currentTx {
		cachedEnv = sdk.GetEnv()
		cachedEnvLoaded = true
		cachedPayment = nil
		paymentResolved = false
	}
	return &cachedEnv
}

// getSenderAddress returns the address of the current transaction sender.
func getSenderAddress() sdk.Address {
	return currentEnv().Sender.Address
}

// contractAddress is where the host books the funds this instance holds.
func contractAddress() sdk.Address {
	return sdk.Address(currentEnv().ContractId)
}

// orderingToken identifies the current operation for reward token ids. The
// tx id is unique per transaction, the op index disambiguates repeat calls
// inside one transaction, so repeat donors in the same block still get
// distinct ids.
func orderingToken() string {
	env := currentEnv()
	token := env.TxId
	if token == "" {
		if tPtr := sdk.GetEnvKey("tx.id"); tPtr != nil {
			token = *tPtr
		}
	}
	if env.OpIndex > 0 {
		token += "-" + strconv.FormatInt(env.OpIndex, 10)
	}
	return token
}

// AttachedPayment is the value the caller attached to the request via a
// transfer.allow intent: an amount of minimal units in one currency.
type AttachedPayment struct {
	Amount *uint256.Int
	Asset  sdk.Asset
}

// attachedPayment scans the tx intents for the first transfer.allow and
// returns nil when the caller attached nothing. A malformed intent aborts,
// that is a broken request envelope and not a fund rule: the currency
// mismatch error downstream only applies to assets the host knows at all.
func attachedPayment() *AttachedPayment {
	currentEnv()
	if paymentResolved {
		return cachedPayment
	}
	paymentResolved = true
	for _, intent := range currentEnv().Intents {
		if intent.Type != "transfer.allow" {
			continue
		}
		token := intent.Args["token"]
		if !isValidAsset(token) {
			sdk.Abort("invalid intent asset")
		}
		amount, err := uint256.FromDecimal(intent.Args["limit"])
		if err != nil || amount.BitLen() > 128 {
			sdk.Abort("invalid intent limit")
		}
		cachedPayment = &AttachedPayment{
			Amount: amount,
			Asset:  sdk.Asset(token),
		}
		return cachedPayment
	}
	return nil
}
