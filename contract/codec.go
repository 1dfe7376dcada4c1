package contract

import (
	"errors"

	"donatio_fund/sdk"

	"github.com/CosmWasm/tinyjson/jlexer"
	"github.com/CosmWasm/tinyjson/jwriter"
	"github.com/holiman/uint256"
)

// Hand-maintained tinyjson codecs for every record that touches host storage
// or a query response. Amounts travel as decimal strings so the stored form
// stays readable in explorers and never loses precision.

func writeAmount(w *jwriter.Writer, v *uint256.Int) {
	if v == nil {
		w.RawString(`"0"`)
		return
	}
	w.String(v.Dec())
}

func readAmount(in *jlexer.Lexer) *uint256.Int {
	raw := in.String()
	v, err := uint256.FromDecimal(raw)
	if err != nil || v.BitLen() > 128 {
		in.AddError(errors.New("amount out of range: " + raw))
		return uint256.NewInt(0)
	}
	return v
}

func (o Owner) MarshalTinyJSON(w *jwriter.Writer) {
	w.RawByte('{')
	w.RawString(`"address":`)
	w.String(o.Address.String())
	w.RawString(`,"email":`)
	w.String(o.Email)
	w.RawString(`,"full_name":`)
	w.String(o.FullName)
	w.RawByte('}')
}

func (o *Owner) UnmarshalTinyJSON(in *jlexer.Lexer) {
	if in.IsNull() {
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.String()
		in.WantColon()
		switch key {
		case "address":
			o.Address = sdk.Address(in.String())
		case "email":
			o.Email = in.String()
		case "full_name":
			o.FullName = in.String()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

func (d FundDetails) MarshalTinyJSON(w *jwriter.Writer) {
	w.RawByte('{')
	w.RawString(`"owner":`)
	d.Owner.MarshalTinyJSON(w)
	w.RawString(`,"title":`)
	w.String(d.Title)
	w.RawString(`,"description":`)
	w.String(d.Description)
	w.RawString(`,"goal_amount":`)
	writeAmount(w, d.GoalAmount)
	w.RawString(`,"denom":`)
	w.String(d.Denom.String())
	w.RawString(`,"image_url":`)
	w.String(d.ImageURL)
	w.RawByte('}')
}

func (d *FundDetails) UnmarshalTinyJSON(in *jlexer.Lexer) {
	if in.IsNull() {
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.String()
		in.WantColon()
		switch key {
		case "owner":
			d.Owner.UnmarshalTinyJSON(in)
		case "title":
			d.Title = in.String()
		case "description":
			d.Description = in.String()
		case "goal_amount":
			d.GoalAmount = readAmount(in)
		case "denom":
			d.Denom = sdk.Asset(in.String())
		case "image_url":
			d.ImageURL = in.String()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

func (d Donation) MarshalTinyJSON(w *jwriter.Writer) {
	w.RawByte('{')
	w.RawString(`"participant":`)
	w.String(d.Participant.String())
	w.RawString(`,"message":`)
	w.String(d.Message)
	w.RawString(`,"amount":`)
	writeAmount(w, d.Amount)
	w.RawByte('}')
}

func (d *Donation) UnmarshalTinyJSON(in *jlexer.Lexer) {
	if in.IsNull() {
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.String()
		in.WantColon()
		switch key {
		case "participant":
			d.Participant = sdk.Address(in.String())
		case "message":
			d.Message = in.String()
		case "amount":
			d.Amount = readAmount(in)
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

func (list DonationList) MarshalTinyJSON(w *jwriter.Writer) {
	w.RawByte('[')
	for i := range list {
		if i > 0 {
			w.RawByte(',')
		}
		list[i].MarshalTinyJSON(w)
	}
	w.RawByte(']')
}

func (list *DonationList) UnmarshalTinyJSON(in *jlexer.Lexer) {
	if in.IsNull() {
		in.Skip()
		*list = nil
		return
	}
	out := make(DonationList, 0, 8)
	in.Delim('[')
	for !in.IsDelim(']') {
		var d Donation
		d.UnmarshalTinyJSON(in)
		out = append(out, d)
		in.WantComma()
	}
	in.Delim(']')
	*list = out
}

func (r RewardIssuance) MarshalTinyJSON(w *jwriter.Writer) {
	w.RawByte('{')
	w.RawString(`"recipient":`)
	w.String(r.Recipient.String())
	w.RawString(`,"token_id":`)
	w.String(r.TokenID)
	w.RawString(`,"token_uri":`)
	w.String(r.TokenURI)
	w.RawString(`,"contract":`)
	w.String(r.Contract)
	w.RawByte('}')
}

func (r DonateResult) MarshalTinyJSON(w *jwriter.Writer) {
	w.RawByte('{')
	w.RawString(`"participant":`)
	w.String(r.Participant.String())
	w.RawString(`,"message":`)
	w.String(r.Message)
	w.RawString(`,"amount":`)
	writeAmount(w, r.Amount)
	w.RawString(`,"closed":`)
	w.Bool(r.Closed)
	if r.Reward != nil {
		w.RawString(`,"reward":`)
		r.Reward.MarshalTinyJSON(w)
	}
	w.RawByte('}')
}

func (r WithdrawResult) MarshalTinyJSON(w *jwriter.Writer) {
	w.RawByte('{')
	w.RawString(`"to":`)
	w.String(r.Transfer.To.String())
	w.RawString(`,"amount":`)
	writeAmount(w, r.Transfer.Amount)
	w.RawString(`,"denom":`)
	w.String(r.Transfer.Asset.String())
	w.RawByte('}')
}

// marshalToString is the single funnel from a codec type to the string form
// the host kv store and the query responses use.
func marshalToString(m interface {
	MarshalTinyJSON(w *jwriter.Writer)
}) string {
	w := jwriter.Writer{}
	m.MarshalTinyJSON(&w)
	b, err := w.BuildBytes()
	if err != nil {
		sdk.Abort("serialization failed: " + err.Error())
	}
	return string(b)
}

// unmarshalFromString aborts on malformed stored data, that is corrupt state
// and never a caller problem.
func unmarshalFromString(data string, u interface {
	UnmarshalTinyJSON(in *jlexer.Lexer)
}, what string) {
	l := jlexer.Lexer{Data: []byte(data)}
	u.UnmarshalTinyJSON(&l)
	if l.Error() != nil {
		sdk.Abort("failed to unmarshal " + what + ": " + l.Error().Error())
	}
}
