////////////////////////////////////////////////////////////////////////////////
// Donatio Fund: a single-fund crowdfunding contract for the vsc network
////////////////////////////////////////////////////////////////////////////////

package main

import (
	"donatio_fund/contract"
)

func main() {
	debug := true
	contract.InitState(debug) // true = use MockState
}
