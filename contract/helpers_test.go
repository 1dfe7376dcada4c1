package contract

import (
	"testing"

	"donatio_fund/sdk"
)

// refreshContext drops the per-tx caches so a test can change the mock sender
// or intents without bumping the block.
func refreshContext() {
	cachedEnvLoaded = false
	cachedPayment = nil
	paymentResolved = false
}

// setupFund resets the mock host, switches to in-memory state and instantiates
// a fund owned by hive:owner with the given goal and denom.
func setupFund(t *testing.T, goal string, denom string) *sdk.MockHost {
	t.Helper()
	host := sdk.MockReset()
	InitState(true)
	refreshContext()
	host.Sender = "hive:owner"
	Instantiate(strptr("Clean Water|Well for the village|owner@mail.io|Owen Ner|" + goal + "|" + denom + "|ipfs://bafyfundimage|"))
	return host
}

// donateAs runs a donation as addr with an attached transfer.allow payment.
// Each call happens in a fresh block so repeat donors stay distinguishable.
func donateAs(t *testing.T, host *sdk.MockHost, addr string, amount string, token string, message string) *string {
	t.Helper()
	host.NextBlock()
	host.Sender = addr
	host.Intents = []sdk.Intent{{
		Type: "transfer.allow",
		Args: map[string]string{"token": token, "limit": amount},
	}}
	refreshContext()
	return Donate(strptr(message))
}

// callAs runs fn as addr with no attached payment.
func callAs(host *sdk.MockHost, addr string, fn func()) {
	host.NextBlock()
	host.Sender = addr
	host.Intents = nil
	refreshContext()
	fn()
}

// catchRevert runs fn and returns the revert it raised, nil when it ran clean.
// Anything that is not a revert keeps panicking.
func catchRevert(fn func()) (rev *sdk.HostRevert) {
	defer func() {
		if r := recover(); r != nil {
			if hr, ok := r.(*sdk.HostRevert); ok {
				rev = hr
				return
			}
			panic(r)
		}
	}()
	fn()
	return nil
}

// catchAbort is the abort-flavored twin of catchRevert.
func catchAbort(fn func()) (ab *sdk.HostAbort) {
	defer func() {
		if r := recover(); r != nil {
			if ha, ok := r.(*sdk.HostAbort); ok {
				ab = ha
				return
			}
			panic(r)
		}
	}()
	fn()
	return nil
}
