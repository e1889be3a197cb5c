package datasources

import "context"

// IdentityChecker reports whether the identity provider has finished
// propagating a newly created account. Used to gate profile mirroring after
// sign-up.
type IdentityChecker interface {
	IdentityExists(ctx context.Context, externalID string) (bool, error)
}

// NullIdentityChecker trusts the verified request token as proof the
// identity exists.
type NullIdentityChecker struct{}

var _ IdentityChecker = NullIdentityChecker{}

func (NullIdentityChecker) IdentityExists(_ context.Context, _ string) (bool, error) {
	return true, nil
}
