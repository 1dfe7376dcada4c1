//go:build wasm

package contract

// Thin wasm wrappers so the host can dispatch by export name. All logic lives
// in the portable entry points.

//go:wasmexport contract_init
func wasmInstantiate(payload *string) *string {
	return Instantiate(payload)
}

//go:wasmexport donate
func wasmDonate(payload *string) *string {
	return Donate(payload)
}

//go:wasmexport withdraw
func wasmWithdraw(payload *string) *string {
	return Withdraw(payload)
}

//go:wasmexport get_details
func wasmGetDetails(payload *string) *string {
	return GetDetails(payload)
}

//go:wasmexport get_donations
func wasmGetDonations(payload *string) *string {
	return GetDonations(payload)
}

//go:wasmexport get_total
func wasmGetTotal(payload *string) *string {
	return GetTotal(payload)
}
