//go:build !fricgan_assert

package fricgan

const assertions = false
