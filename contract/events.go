package contract

import (
	"fmt"

	"donatio_fund/sdk"
)

////////////////////////////////////////////////////////////////////////////////
// Event Logs
////////////////////////////////////////////////////////////////////////////////

// Events use short pipe-delimited codes so indexers can filter cheaply:
//   dn - donation recorded
//   fc - fund closed (goal met)
//   rw - reward token issued
//   wd - balance withdrawn

func emitDonationEvent(by string, amount string) {
	sdk.Log(fmt.Sprintf("dn|by:%s|am:%s", by, amount))
}

func emitFundClosedEvent(total string) {
	sdk.Log(fmt.Sprintf("fc|total:%s", total))
}

func emitRewardEvent(tokenID string, to string) {
	sdk.Log(fmt.Sprintf("rw|id:%s|to:%s", tokenID, to))
}

func emitWithdrawalEvent(to string, amount string, asset string) {
	sdk.Log(fmt.Sprintf("wd|to:%s|am:%s|as:%s", to, amount, asset))
}
