package sdk

import (
	"github.com/CosmWasm/tinyjson/jlexer"
	"github.com/CosmWasm/tinyjson/jwriter"
)

// Intent is a permission the sender attached to the transaction, for example
// transfer.allow which lets the contract draw funds up to a limit.
type Intent struct {
	Type string            `json:"type"`
	Args map[string]string `json:"args"`
}

type Sender struct {
	Address              Address   `json:"id"`
	RequiredAuths        []Address `json:"required_auths"`
	RequiredPostingAuths []Address `json:"required_posting_auths"`
}

type ContractCallOptions struct {
	Intents []Intent `json:"intents,omitempty"`
}

// Env is the execution environment snapshot the host hands to the contract.
type Env struct {
	ContractId  string
	TxId        string
	Index       int64
	OpIndex     int64
	BlockId     string
	BlockHeight uint64
	Timestamp   string
	Sender      Sender
	Intents     []Intent
}

// UnmarshalTinyJSON maps the flat host env blob (msg.sender, block.height, ...)
// onto the Env struct. Kept by hand since the keys contain dots and dont line
// up with Go field names anyway.
func (e *Env) UnmarshalTinyJSON(in *jlexer.Lexer) {
	if in.IsNull() {
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.String()
		in.WantColon()
		switch key {
		case "contract.id":
			e.ContractId = in.String()
		case "tx.id":
			e.TxId = in.String()
		case "tx.index":
			e.Index = in.Int64()
		case "tx.op_index":
			e.OpIndex = in.Int64()
		case "block.id":
			e.BlockId = in.String()
		case "block.height":
			e.BlockHeight = in.Uint64()
		case "block.timestamp":
			e.Timestamp = in.String()
		case "msg.sender":
			e.Sender.Address = Address(in.String())
		case "msg.required_auths":
			e.Sender.RequiredAuths = readAddressList(in)
		case "msg.required_posting_auths":
			e.Sender.RequiredPostingAuths = readAddressList(in)
		case "intents":
			e.Intents = readIntentList(in)
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

func readAddressList(in *jlexer.Lexer) []Address {
	if in.IsNull() {
		in.Skip()
		return nil
	}
	out := make([]Address, 0, 2)
	in.Delim('[')
	for !in.IsDelim(']') {
		out = append(out, Address(in.String()))
		in.WantComma()
	}
	in.Delim(']')
	return out
}

func readIntentList(in *jlexer.Lexer) []Intent {
	if in.IsNull() {
		in.Skip()
		return nil
	}
	out := make([]Intent, 0, 1)
	in.Delim('[')
	for !in.IsDelim(']') {
		var it Intent
		it.UnmarshalTinyJSON(in)
		out = append(out, it)
		in.WantComma()
	}
	in.Delim(']')
	return out
}

func (it *Intent) UnmarshalTinyJSON(in *jlexer.Lexer) {
	if in.IsNull() {
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.String()
		in.WantColon()
		switch key {
		case "type":
			it.Type = in.String()
		case "args":
			it.Args = readStringMap(in)
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

func (it Intent) MarshalTinyJSON(w *jwriter.Writer) {
	w.RawByte('{')
	w.RawString(`"type":`)
	w.String(it.Type)
	w.RawString(`,"args":{`)
	first := true
	for k, v := range it.Args {
		if !first {
			w.RawByte(',')
		}
		first = false
		w.String(k)
		w.RawByte(':')
		w.String(v)
	}
	w.RawString(`}}`)
}

// MarshalTinyJSON serializes call options for contracts.call, intents only.
func (o ContractCallOptions) MarshalTinyJSON(w *jwriter.Writer) {
	w.RawString(`{"intents":[`)
	for i, it := range o.Intents {
		if i > 0 {
			w.RawByte(',')
		}
		it.MarshalTinyJSON(w)
	}
	w.RawString(`]}`)
}

func readStringMap(in *jlexer.Lexer) map[string]string {
	if in.IsNull() {
		in.Skip()
		return nil
	}
	out := make(map[string]string)
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.String()
		in.WantColon()
		out[key] = in.String()
		in.WantComma()
	}
	in.Delim('}')
	return out
}
