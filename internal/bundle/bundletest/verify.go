package bundletest

import (
	"crypto/x509"
	"fmt"

	"github.com/smallstep/pkcs7"
)

// Verify checks a detached signature over content against roots. The
// certificates embedded in the signature are used as intermediates.
func Verify(signature, content []byte, roots *x509.CertPool) error {
	p7, err := pkcs7.Parse(signature)
	if err != nil {
		return fmt.Errorf("error parsing signature: %w", err)
	}
	p7.Content = content

	return p7.VerifyWithChain(roots)
}
