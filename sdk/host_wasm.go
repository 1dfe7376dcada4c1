//go:build wasm

package sdk

// Host runtime imports. These only exist when building the wasm artifact;
// native builds (tests, tooling) use the mock host instead.

//go:wasmimport sdk console.log
func hostLog(s *string) *string

//go:wasmimport sdk db.set_object
func hostStateSet(key *string, value *string) *string

//go:wasmimport sdk db.get_object
func hostStateGet(key *string) *string

//go:wasmimport sdk db.rm_object
func hostStateDelete(key *string) *string

//go:wasmimport sdk system.get_env
func hostGetEnv(arg *string) *string

//go:wasmimport sdk system.get_env_key
func hostGetEnvKey(arg *string) *string

//go:wasmimport sdk hive.get_balance
func hostGetBalance(arg1 *string, arg2 *string) *string

//go:wasmimport sdk hive.draw
func hostDraw(arg1 *string, arg2 *string) *string

//go:wasmimport sdk hive.transfer
func hostTransfer(arg1 *string, arg2 *string, arg3 *string) *string

//go:wasmimport sdk contracts.call
func hostContractCall(contractId *string, method *string, payload *string, options *string) *string

//go:wasmimport env abort
func wasmAbort(msg, file *string, line, column *int32)

//go:wasmimport env revert
func wasmRevert(msg, symbol *string)

func hostAbort(msg *string) {
	ln := int32(0)
	wasmAbort(msg, nil, &ln, &ln)
}

func hostRevert(msg, symbol *string) {
	wasmRevert(msg, symbol)
}
