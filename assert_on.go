//go:build fricgan_assert

package fricgan

// assertions enables precondition checks on every buffer access.
const assertions = true
