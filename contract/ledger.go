package contract

import (
	"github.com/holiman/uint256"
)

////////////////////////////////////////////////////////////////////////////////
// Donation Ledger: append-only, total is always a fold over the entries
////////////////////////////////////////////////////////////////////////////////

// loadDonations returns the ordered ledger, empty before the first donation.
func loadDonations() DonationList {
	ptr := getState().Get(KeyFundDonations)
	if ptr == nil || *ptr == "" {
		return DonationList{}
	}
	var list DonationList
	unmarshalFromString(*ptr, &list, "donation ledger")
	return list
}

func saveDonations(list DonationList) {
	getState().Set(KeyFundDonations, marshalToString(list))
}

// appendDonation adds an entry at the end, preserving insertion order. Only
// the donation handler calls this, and only with amount > 0.
func appendDonation(d Donation) DonationList {
	list := append(loadDonations(), d)
	saveDonations(list)
	return list
}

// donationTotal folds the ledger into the running total. There is no cached
// counter on purpose, a stored total and the entries could drift apart.
// Overflow past 128 bits is an internal fault, never a wrapped value.
func donationTotal(list DonationList) (*uint256.Int, error) {
	sum := new(uint256.Int)
	for i := range list {
		if _, overflow := sum.AddOverflow(sum, list[i].Amount); overflow || sum.BitLen() > 128 {
			return nil, ErrArithmeticOverflow
		}
	}
	return sum, nil
}
