package contract

import (
	"strconv"
	"strings"

	"donatio_fund/sdk"
)

// unwrapPayload trims quotes and whitespace, aborting if the payload is empty.
func unwrapPayload(payload *string, errMsg string) string {
	if payload == nil {
		sdk.Abort(errMsg)
	}
	raw := strings.TrimSpace(*payload)
	if raw == "" {
		sdk.Abort(errMsg)
	}
	return unquoteRaw(raw)
}

// unwrapOptionalPayload is the lenient variant for entry points where an empty
// payload is fine (donate without a message, withdraw, queries).
func unwrapOptionalPayload(payload *string) string {
	if payload == nil {
		return ""
	}
	return unquoteRaw(strings.TrimSpace(*payload))
}

func unquoteRaw(raw string) string {
	if len(raw) >= 2 {
		first := raw[0]
		last := raw[len(raw)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			if unquoted, err := strconv.Unquote(raw); err == nil {
				return unquoted
			}
			return strings.TrimSpace(raw[1 : len(raw)-1])
		}
	}
	return raw
}

// decodeInstantiateArgs unpacks the pipe-delimited payload used for the
// instantiate call: title|description|email|fullname|goal|denom|image_url|owner.
// The trailing owner field is optional and defaults to the caller.
func decodeInstantiateArgs(payload *string) *InstantiateArgs {
	raw := unwrapPayload(payload, "instantiate payload missing")
	parts := strings.Split(raw, "|")
	get := func(i int) string {
		if i < len(parts) {
			return strings.TrimSpace(parts[i])
		}
		return ""
	}

	args := &InstantiateArgs{
		Title:       get(0),
		Description: get(1),
		Email:       get(2),
		FullName:    get(3),
		GoalAmount:  get(4),
		Denom:       sdk.Asset(get(5)),
		ImageURL:    get(6),
		Owner:       sdk.Address(get(7)),
	}
	if args.Title == "" {
		sdk.Abort("fund title required")
	}
	if !isValidAsset(args.Denom.String()) {
		sdk.Abort("unsupported denom: " + args.Denom.String())
	}
	return args
}

// isValidAsset checks if a given token string is one of the supported assets.
func isValidAsset(token string) bool {
	for _, a := range validAssets {
		if token == a {
			return true
		}
	}
	return false
}

// UInt64ToString turns a numeric id back into decimal text for logs.
// Example payload: UInt64ToString(9001)
func UInt64ToString(val uint64) string {
	return strconv.FormatUint(val, 10)
}

// Convenience helper
func strptr(s string) *string { return &s }
