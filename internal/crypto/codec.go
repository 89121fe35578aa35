package crypto

import (
	"encoding/base64"
	"fmt"
)

// base64BlobCodec is the private implementation of [BlobCodec].
// The framing is fixed: standard base64 with padding over nonce || ciphertext.
type base64BlobCodec struct{}

// NewBlobCodec constructs the [BlobCodec] used for stored note content.
func NewBlobCodec() BlobCodec {
	return base64BlobCodec{}
}

// Encode implements [BlobCodec].
func (base64BlobCodec) Encode(nonce, ciphertext []byte) string {
	blob := make([]byte, 0, len(nonce)+len(ciphertext))
	blob = append(blob, nonce...)
	blob = append(blob, ciphertext...)
	return base64.StdEncoding.EncodeToString(blob)
}

// Decode implements [BlobCodec].
func (base64BlobCodec) Decode(text string) ([]byte, []byte, error) {
	blob, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: decode base64: %v", ErrFormat, err)
	}
	if len(blob) < NonceSize {
		return nil, nil, fmt.Errorf("%w: %d bytes, shorter than the %d-byte nonce", ErrFormat, len(blob), NonceSize)
	}

	return blob[:NonceSize:NonceSize], blob[NonceSize:], nil
}
