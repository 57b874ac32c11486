package hostadapter

import (
	"context"
	"strings"
)

// GatewayAuthority trusts the authenticated caller identity attached by the
// fronting gateway: a caller holds exactly its own authority. Delegated
// authority, if the deployment needs it, belongs in the gateway.
type GatewayAuthority struct{}

func (GatewayAuthority) HoldsAuthority(_ context.Context, caller string, principal string) (bool, error) {
	caller = strings.TrimSpace(caller)
	return caller != "" && caller == strings.TrimSpace(principal), nil
}

// OpenDirectory resolves every well-formed account name. Use when the
// surrounding environment keeps no account registry of its own.
type OpenDirectory struct{}

func (OpenDirectory) Exists(_ context.Context, account string) (bool, error) {
	account = strings.TrimSpace(account)
	if account == "" || len(account) > 64 {
		return false, nil
	}
	return !strings.ContainsAny(account, " \t\n"), nil
}
