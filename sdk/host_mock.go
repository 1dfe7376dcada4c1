//go:build !wasm

package sdk

import (
	"encoding/json"
	"fmt"

	"github.com/holiman/uint256"
)

// MockHost emulates the vsc runtime for native builds. It keeps the kv store,
// balances and the env snapshot in memory and records every outbound effect so
// tests can assert on draws, transfers and contract calls the same way the
// wasm harness would.
type MockHost struct {
	Objects     map[string]string
	Balances    map[string]string
	ContractId  string
	TxId        string
	BlockId     string
	BlockHeight uint64
	Timestamp   string
	Sender      string
	Intents     []Intent
	Logs        []string
	Draws       []TransferRecord
	Transfers   []TransferRecord
	Calls       []ContractCallRecord
}

type TransferRecord struct {
	From   string
	To     string
	Amount string
	Asset  string
}

type ContractCallRecord struct {
	ContractId string
	Method     string
	Payload    string
	Options    string
}

// HostRevert is the panic value raised by the mock when the contract reverts.
type HostRevert struct {
	Msg    string
	Symbol string
}

func (r *HostRevert) Error() string {
	return r.Symbol + ": " + r.Msg
}

// HostAbort is the panic value raised by the mock when the contract aborts.
type HostAbort struct {
	Msg string
}

func (a *HostAbort) Error() string {
	return a.Msg
}

var mockHost = newMockHost()

func newMockHost() *MockHost {
	return &MockHost{
		Objects:     map[string]string{},
		Balances:    map[string]string{},
		ContractId:  "contract:donatio-fund",
		TxId:        "tx-1",
		BlockId:     "block-1",
		BlockHeight: 1,
		Timestamp:   "2025-09-03T00:00:00",
		Sender:      "hive:someone",
	}
}

// Mock exposes the current mock host so tests can seed balances and env data.
func Mock() *MockHost {
	return mockHost
}

// MockReset swaps in a fresh host, used at the top of every test.
func MockReset() *MockHost {
	mockHost = newMockHost()
	return mockHost
}

// Deposit credits an account balance for test setup.
// Example payload: sdk.Mock().Deposit("hive:someone", "200000", sdk.AssetHive)
func (m *MockHost) Deposit(addr string, amount string, asset Asset) {
	m.credit(addr, asset.String(), amount)
}

// BalanceOf reads a balance back as a decimal string, "0" when unknown.
func (m *MockHost) BalanceOf(addr string, asset Asset) string {
	if v, ok := m.Balances[addr+"|"+asset.String()]; ok {
		return v
	}
	return "0"
}

// NextBlock bumps the block height and tx id so ordering-dependent logic
// (reward token ids) can be exercised across calls.
func (m *MockHost) NextBlock() {
	m.BlockHeight++
	m.TxId = fmt.Sprintf("tx-%d", m.BlockHeight)
	m.BlockId = fmt.Sprintf("block-%d", m.BlockHeight)
}

func (m *MockHost) credit(addr, asset, amount string) {
	cur := mustAmount(m.BalanceOf(addr, Asset(asset)))
	add := mustAmount(amount)
	sum := new(uint256.Int)
	if _, overflow := sum.AddOverflow(cur, add); overflow {
		panic(&HostAbort{Msg: "mock balance overflow"})
	}
	m.Balances[addr+"|"+asset] = sum.Dec()
}

func (m *MockHost) debit(addr, asset, amount string) {
	cur := mustAmount(m.BalanceOf(addr, Asset(asset)))
	sub := mustAmount(amount)
	if cur.Lt(sub) {
		panic(&HostRevert{Msg: "insufficient balance", Symbol: "insufficient_balance"})
	}
	m.Balances[addr+"|"+asset] = new(uint256.Int).Sub(cur, sub).Dec()
}

func mustAmount(s string) *uint256.Int {
	v, err := uint256.FromDecimal(s)
	if err != nil {
		panic(&HostAbort{Msg: "mock: bad amount " + s})
	}
	return v
}

// --- host function shims (same signatures the wasm imports have) ---

func hostLog(s *string) *string {
	mockHost.Logs = append(mockHost.Logs, *s)
	return s
}

func hostStateSet(key *string, value *string) *string {
	mockHost.Objects[*key] = *value
	return nil
}

func hostStateGet(key *string) *string {
	val, ok := mockHost.Objects[*key]
	if !ok {
		return nil
	}
	return &val
}

func hostStateDelete(key *string) *string {
	delete(mockHost.Objects, *key)
	return nil
}

func hostGetEnv(arg *string) *string {
	intents := make([]map[string]interface{}, 0, len(mockHost.Intents))
	for _, it := range mockHost.Intents {
		intents = append(intents, map[string]interface{}{
			"type": it.Type,
			"args": it.Args,
		})
	}
	blob := map[string]interface{}{
		"contract.id":                mockHost.ContractId,
		"tx.id":                      mockHost.TxId,
		"tx.index":                   0,
		"tx.op_index":                0,
		"block.id":                   mockHost.BlockId,
		"block.height":               mockHost.BlockHeight,
		"block.timestamp":            mockHost.Timestamp,
		"msg.sender":                 mockHost.Sender,
		"msg.required_auths":         []string{mockHost.Sender},
		"msg.required_posting_auths": []string{},
		"intents":                    intents,
	}
	b, err := json.Marshal(blob)
	if err != nil {
		panic(&HostAbort{Msg: "mock env marshal failed"})
	}
	s := string(b)
	return &s
}

func hostGetEnvKey(arg *string) *string {
	var v string
	switch *arg {
	case "contract.id":
		v = mockHost.ContractId
	case "tx.id":
		v = mockHost.TxId
	case "block.id":
		v = mockHost.BlockId
	case "block.height":
		v = fmt.Sprintf("%d", mockHost.BlockHeight)
	case "block.timestamp":
		v = mockHost.Timestamp
	case "msg.sender":
		v = mockHost.Sender
	default:
		return nil
	}
	return &v
}

func hostGetBalance(arg1 *string, arg2 *string) *string {
	v := mockHost.BalanceOf(*arg1, Asset(*arg2))
	return &v
}

// hostDraw moves funds from the tx sender to the contract, enforcing the
// transfer.allow limit like the real runtime does.
func hostDraw(arg1 *string, arg2 *string) *string {
	amount := mustAmount(*arg1)
	allowed := false
	for _, it := range mockHost.Intents {
		if it.Type != "transfer.allow" || it.Args["token"] != *arg2 {
			continue
		}
		limit, err := uint256.FromDecimal(it.Args["limit"])
		if err == nil && !limit.Lt(amount) {
			allowed = true
			break
		}
	}
	if !allowed {
		panic(&HostRevert{Msg: "draw exceeds transfer.allow limit", Symbol: "intent_violation"})
	}
	mockHost.debit(mockHost.Sender, *arg2, *arg1)
	mockHost.credit(mockHost.ContractId, *arg2, *arg1)
	mockHost.Draws = append(mockHost.Draws, TransferRecord{
		From:   mockHost.Sender,
		To:     mockHost.ContractId,
		Amount: *arg1,
		Asset:  *arg2,
	})
	return nil
}

func hostTransfer(arg1 *string, arg2 *string, arg3 *string) *string {
	mockHost.debit(mockHost.ContractId, *arg3, *arg2)
	mockHost.credit(*arg1, *arg3, *arg2)
	mockHost.Transfers = append(mockHost.Transfers, TransferRecord{
		From:   mockHost.ContractId,
		To:     *arg1,
		Amount: *arg2,
		Asset:  *arg3,
	})
	return nil
}

func hostContractCall(contractId *string, method *string, payload *string, options *string) *string {
	mockHost.Calls = append(mockHost.Calls, ContractCallRecord{
		ContractId: *contractId,
		Method:     *method,
		Payload:    *payload,
		Options:    *options,
	})
	res := "ok"
	return &res
}

func hostAbort(msg *string) {
	panic(&HostAbort{Msg: *msg})
}

func hostRevert(msg, symbol *string) {
	panic(&HostRevert{Msg: *msg, Symbol: *symbol})
}
