package contract

import (
	"testing"

	"donatio_fund/sdk"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDonateWithoutPaymentIsANoOp(t *testing.T) {
	host := setupFund(t, "5000000", "hive")

	var res *string
	callAs(host, "hive:alice", func() {
		res = Donate(strptr("just cheering"))
	})

	require.NotNil(t, res)
	assert.Contains(t, *res, `"amount":"0"`)
	assert.Contains(t, *res, `"closed":false`)
	assert.Empty(t, loadDonations())
	assert.Empty(t, host.Draws)
	assert.Contains(t, host.Logs, "dn|by:hive:alice|am:0")
}

func TestDonateZeroLimitIsANoOp(t *testing.T) {
	host := setupFund(t, "5000000", "hive")
	donateAs(t, host, "hive:alice", "0", "hive", "empty handed")
	assert.Empty(t, loadDonations())
	assert.Empty(t, host.Draws)
}

func TestDonateRecordsEntryAndDrawsFunds(t *testing.T) {
	host := setupFund(t, "100000000", "hive")
	host.Deposit("hive:alice", "30000000", sdk.AssetHive)

	res := donateAs(t, host, "hive:alice", "30000000", "hive", "good luck")
	require.NotNil(t, res)
	assert.Contains(t, *res, `"amount":"30000000"`)

	list := loadDonations()
	require.Len(t, list, 1)
	assert.Equal(t, "hive:alice", list[0].Participant.String())
	assert.Equal(t, "good luck", list[0].Message)
	assert.Equal(t, "30000000", list[0].Amount.Dec())

	require.Len(t, host.Draws, 1)
	assert.Equal(t, "30000000", host.Draws[0].Amount)
	assert.Equal(t, "30000000", host.BalanceOf("contract:donatio-fund", sdk.AssetHive))
	assert.Equal(t, "0", host.BalanceOf("hive:alice", sdk.AssetHive))
	assert.Contains(t, host.Logs, "dn|by:hive:alice|am:30000000")
}

func TestDonateMintsTierReward(t *testing.T) {
	host := setupFund(t, "1000000000", "hive")
	host.Deposit("hive:alice", "50000000", sdk.AssetHive)

	donateAs(t, host, "hive:alice", "50000000", "hive", "fifty units")

	require.Len(t, host.Calls, 1)
	call := host.Calls[0]
	assert.Equal(t, RewardCollectionContract, call.ContractId)
	assert.Equal(t, RewardMintMethod, call.Method)
	assert.Contains(t, call.Payload, `"token_id":"d-2-tx-2-hive:alice"`)
	assert.Contains(t, call.Payload, `"recipient":"hive:alice"`)
	assert.Contains(t, host.Logs, "rw|id:d-2-tx-2-hive:alice|to:hive:alice")
}

func TestDonateBelowTierThresholdMintsNothing(t *testing.T) {
	host := setupFund(t, "1000000000", "hive")
	host.Deposit("hive:alice", "10000000", sdk.AssetHive)

	donateAs(t, host, "hive:alice", "10000000", "hive", "ten units")

	require.Len(t, loadDonations(), 1)
	assert.Empty(t, host.Calls)
}

func TestDonateRewardTokenIdsStayUniqueAcrossBlocks(t *testing.T) {
	host := setupFund(t, "1000000000", "hive")
	host.Deposit("hive:alice", "100000000", sdk.AssetHive)

	donateAs(t, host, "hive:alice", "50000000", "hive", "round one")
	donateAs(t, host, "hive:alice", "50000000", "hive", "round two")

	require.Len(t, host.Calls, 2)
	assert.NotEqual(t, host.Calls[0].Payload, host.Calls[1].Payload)
	assert.Contains(t, host.Calls[0].Payload, `"token_id":"d-2-tx-2-hive:alice"`)
	assert.Contains(t, host.Calls[1].Payload, `"token_id":"d-2-tx-3-hive:alice"`)
}

func TestDonateRewardTokenIdsStayUniqueWithinOneBlock(t *testing.T) {
	host := setupFund(t, "1000000000", "hive")
	host.Deposit("hive:alice", "100000000", sdk.AssetHive)

	donateAs(t, host, "hive:alice", "50000000", "hive", "round one")

	// second tx lands in the same block, only the tx id differs
	host.TxId = "tx-2b"
	host.Intents = []sdk.Intent{{
		Type: "transfer.allow",
		Args: map[string]string{"token": "hive", "limit": "50000000"},
	}}
	refreshContext()
	Donate(strptr("round two"))

	require.Len(t, host.Calls, 2)
	assert.Contains(t, host.Calls[0].Payload, `"token_id":"d-2-tx-2-hive:alice"`)
	assert.Contains(t, host.Calls[1].Payload, `"token_id":"d-2-tx-2b-hive:alice"`)
	assert.NotEqual(t, host.Calls[0].Payload, host.Calls[1].Payload)
}

func TestDonateCurrencyMismatchLeavesLedgerUntouched(t *testing.T) {
	host := setupFund(t, "5000000", "hive")
	host.Deposit("hive:alice", "5000000", sdk.AssetHbd)

	rev := catchRevert(func() {
		donateAs(t, host, "hive:alice", "5000000", "hbd", "wrong coin")
	})
	require.NotNil(t, rev)
	assert.Equal(t, "currency_mismatch", rev.Symbol)
	assert.Empty(t, loadDonations())
	assert.Empty(t, host.Draws)
	assert.Equal(t, "5000000", host.BalanceOf("hive:alice", sdk.AssetHbd))
}

func TestDonateGatesOnPendingAndCanceled(t *testing.T) {
	cases := []struct {
		state  FundState
		symbol string
	}{
		{FundPending, "fundraiser_pending"},
		{FundCanceled, "fundraiser_canceled"},
	}
	for _, c := range cases {
		host := setupFund(t, "5000000", "hive")
		host.Deposit("hive:alice", "1000000", sdk.AssetHive)
		saveFundState(c.state)

		rev := catchRevert(func() {
			donateAs(t, host, "hive:alice", "1000000", "hive", "knocking")
		})
		require.NotNil(t, rev, "state=%s", c.state)
		assert.Equal(t, c.symbol, rev.Symbol)
		assert.Empty(t, loadDonations())
	}
}

func TestDonateCrossingTheGoalClosesOnce(t *testing.T) {
	host := setupFund(t, "5000000", "hive")
	host.Deposit("hive:alice", "3000000", sdk.AssetHive)
	host.Deposit("hive:bob", "4000000", sdk.AssetHive)

	res := donateAs(t, host, "hive:alice", "3000000", "hive", "halfway")
	assert.Contains(t, *res, `"closed":false`)
	assert.Equal(t, FundOpen, loadFundState())

	// bob overshoots, his donation is still accepted in full
	res = donateAs(t, host, "hive:bob", "4000000", "hive", "over the top")
	assert.Contains(t, *res, `"closed":true`)
	assert.Equal(t, FundClosed, loadFundState())
	require.Len(t, loadDonations(), 2)
	assert.Contains(t, host.Logs, "fc|total:7000000")
}

func TestDonateInvalidIntentAssetAborts(t *testing.T) {
	host := setupFund(t, "5000000", "hive")
	ab := catchAbort(func() {
		donateAs(t, host, "hive:alice", "1000000", "doge", "what coin")
	})
	require.NotNil(t, ab)
	assert.Contains(t, ab.Msg, "invalid intent asset")
}
