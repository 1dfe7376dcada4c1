package contract

import (
	"testing"

	"donatio_fund/sdk"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithdrawRejectsNonOwnerFirst(t *testing.T) {
	host := setupFund(t, "5000000", "hive")
	// balance below goal on purpose: authorization is checked before funds
	rev := catchRevert(func() {
		callAs(host, "hive:mallory", func() { Withdraw(nil) })
	})
	require.NotNil(t, rev)
	assert.Equal(t, "unauthorized", rev.Symbol)
}

func TestWithdrawBelowGoalFails(t *testing.T) {
	host := setupFund(t, "5000000", "hive")
	host.Deposit("contract:donatio-fund", "4999999", sdk.AssetHive)

	rev := catchRevert(func() {
		callAs(host, "hive:owner", func() { Withdraw(nil) })
	})
	require.NotNil(t, rev)
	assert.Equal(t, "withdrawal_not_expected", rev.Symbol)
	assert.Contains(t, rev.Msg, "4999999")
	assert.Contains(t, rev.Msg, "5000000")
	assert.Equal(t, "4999999", host.BalanceOf("contract:donatio-fund", sdk.AssetHive))
}

func TestWithdrawDrainsFullBalanceToOwner(t *testing.T) {
	host := setupFund(t, "5000000", "hive")
	// overshoot: the owner gets everything held, not just the goal
	host.Deposit("contract:donatio-fund", "7500000", sdk.AssetHive)

	var res *string
	callAs(host, "hive:owner", func() { res = Withdraw(nil) })

	require.NotNil(t, res)
	assert.Contains(t, *res, `"to":"hive:owner"`)
	assert.Contains(t, *res, `"amount":"7500000"`)
	assert.Contains(t, *res, `"denom":"hive"`)

	require.Len(t, host.Transfers, 1)
	assert.Equal(t, "7500000", host.BalanceOf("hive:owner", sdk.AssetHive))
	assert.Equal(t, "0", host.BalanceOf("contract:donatio-fund", sdk.AssetHive))
	assert.Contains(t, host.Logs, "wd|to:hive:owner|am:7500000|as:hive")
}

func TestWithdrawIgnoresLifecycleState(t *testing.T) {
	host := setupFund(t, "5000000", "hive")
	host.Deposit("contract:donatio-fund", "5000000", sdk.AssetHive)
	saveFundState(FundCanceled)

	callAs(host, "hive:owner", func() { Withdraw(nil) })
	assert.Equal(t, "5000000", host.BalanceOf("hive:owner", sdk.AssetHive))
}

func TestWithdrawTwiceFailsAfterDraining(t *testing.T) {
	host := setupFund(t, "5000000", "hive")
	host.Deposit("contract:donatio-fund", "5000000", sdk.AssetHive)

	callAs(host, "hive:owner", func() { Withdraw(nil) })
	rev := catchRevert(func() {
		callAs(host, "hive:owner", func() { Withdraw(nil) })
	})
	require.NotNil(t, rev)
	assert.Equal(t, "withdrawal_not_expected", rev.Symbol)
}

func TestWithdrawZeroGoalAlwaysPasses(t *testing.T) {
	host := setupFund(t, "0", "hive")
	var res *string
	callAs(host, "hive:owner", func() { res = Withdraw(nil) })
	require.NotNil(t, res)
	assert.Contains(t, *res, `"amount":"0"`)
}
