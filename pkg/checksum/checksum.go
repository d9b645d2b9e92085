// Package checksum computes content fingerprints for files.
package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"

	"github.com/arthur-debert/gamepatch/pkg/errors"
)

// chunkSize is the read buffer used when streaming file content
const chunkSize = 8192

// File computes the SHA-256 checksum of the file at path and returns
// it as a lowercase hex string. The content is streamed in fixed-size
// chunks, so arbitrarily large files use constant memory.
func File(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", path)
	}
	defer func() { _ = f.Close() }()

	h := sha256.New()
	if _, err := io.CopyBuffer(h, f, make([]byte, chunkSize)); err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed reading %s", path)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Bytes computes the SHA-256 checksum of in-memory content. It returns
// the same digest File would return for a file holding those bytes.
func Bytes(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}
