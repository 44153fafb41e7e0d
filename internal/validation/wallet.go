// Package validation contains input validation helpers.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/crypto/sha3"
)

var addressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// NormalizeWalletAddress validates an EVM wallet address and returns its
// EIP-55 checksummed form. All-lowercase and all-uppercase inputs are
// accepted as checksum-agnostic; mixed-case inputs must carry a valid
// checksum.
func NormalizeWalletAddress(addr string) (string, error) {
	addr = strings.TrimSpace(addr)
	if !addressPattern.MatchString(addr) {
		return "", fmt.Errorf("invalid wallet address %q", addr)
	}

	hexPart := addr[2:]
	lower := strings.ToLower(hexPart)
	checksummed := checksumAddress(lower)

	mixedCase := hexPart != lower && hexPart != strings.ToUpper(hexPart)
	if mixedCase && hexPart != checksummed {
		return "", fmt.Errorf("wallet address %q fails checksum validation", addr)
	}
	return "0x" + checksummed, nil
}

// checksumAddress applies the EIP-55 casing rule: a hex letter is
// uppercased when the corresponding nibble of keccak256(lowercase address)
// is 8 or higher.
func checksumAddress(lower string) string {
	hash := sha3.NewLegacyKeccak256()
	hash.Write([]byte(lower))
	digest := hash.Sum(nil)

	out := []byte(lower)
	for i, ch := range out {
		if ch < 'a' || ch > 'f' {
			continue
		}
		nibble := digest[i/2]
		if i%2 == 0 {
			nibble >>= 4
		} else {
			nibble &= 0x0f
		}
		if nibble >= 8 {
			out[i] = ch - 'a' + 'A'
		}
	}
	return string(out)
}
