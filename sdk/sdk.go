package sdk

import (
	"github.com/CosmWasm/tinyjson/jlexer"
	"github.com/CosmWasm/tinyjson/jwriter"
)

// Log writes a message to the host console so we can trace contract steps.
// Example payload: sdk.Log("hello fund")
func Log(s string) {
	hostLog(&s)
}

// Abort stops execution immediately and surfaces the message to the chain, so use sparingly.
// Example payload: sdk.Abort("ledger corrupt")
func Abort(msg string) {
	hostAbort(&msg)
	panic(msg)
}

// Revert throws a named error back to the caller (like revert in solidity) with a short symbol.
// Example payload: sdk.Revert("fundraiser closed", "fundraiser_closed")
func Revert(msg string, symbol string) {
	hostRevert(&msg, &symbol)
}

// StateSetObject stores a key/value string pair into contract kv storage.
// Example payload: sdk.StateSetObject("fund_details", "{...}")
func StateSetObject(key string, value string) {
	hostStateSet(&key, &value)
}

// StateGetObject fetches a key and returns nil when missing.
// Example payload: sdk.StateGetObject("fund_details")
func StateGetObject(key string) *string {
	return hostStateGet(&key)
}

// StateDeleteObject removes the key entirely, handy for cleanup.
// Example payload: sdk.StateDeleteObject("fund_details")
func StateDeleteObject(key string) {
	hostStateDelete(&key)
}

// GetEnv pulls the JSON env blob from the chain and maps it to the Env struct.
// Example payload: sdk.GetEnv()
func GetEnv() Env {
	envStr := *hostGetEnv(nil)
	env := Env{}
	l := jlexer.Lexer{Data: []byte(envStr)}
	env.UnmarshalTinyJSON(&l)
	if l.Error() != nil {
		Abort("malformed host env: " + l.Error().Error())
	}
	return env
}

// GetEnvKey pulls a single env key (like tx.id) to avoid parsing the whole struct.
// Example payload: sdk.GetEnvKey("block.height")
func GetEnvKey(key string) *string {
	return hostGetEnvKey(&key)
}

// GetBalance queries the held balance for the given account+asset combo.
// The host answers with a plain decimal string, callers parse it into whatever
// width they need.
// Example payload: sdk.GetBalance(sdk.Address("contract:donatio-fund"), sdk.AssetHive)
func GetBalance(address Address, asset Asset) string {
	addr := address.String()
	as := asset.String()
	return *hostGetBalance(&addr, &as)
}

// HiveDraw pulls tokens from the caller to the contract within the transfer.allow limit.
// Amount is a decimal string of minimal units.
// Example payload: sdk.HiveDraw("5000000", sdk.AssetHive)
func HiveDraw(amount string, asset Asset) {
	as := asset.String()
	hostDraw(&amount, &as)
}

// HiveTransfer sends tokens from the contract towards a user address.
// Amount is a decimal string of minimal units.
// Example payload: sdk.HiveTransfer(sdk.Address("hive:foo"), "5000000", sdk.AssetHive)
func HiveTransfer(to Address, amount string, asset Asset) {
	toaddr := to.String()
	as := asset.String()
	hostTransfer(&toaddr, &amount, &as)
}

// ContractCall performs a synchronous call into another contract with optional intents.
// Example payload: sdk.ContractCall("contract:donatio-nfts", "mint", "{}", nil)
func ContractCall(contractId string, method string, payload string, options *ContractCallOptions) *string {
	optStr := ""
	if options != nil {
		w := jwriter.Writer{}
		options.MarshalTinyJSON(&w)
		optBytes, err := w.BuildBytes()
		if err != nil {
			Revert("could not serialize options", "sdk_error")
		}
		optStr = string(optBytes)
	}
	return hostContractCall(&contractId, &method, &payload, &optStr)
}
