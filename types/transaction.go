package types

import "encoding/json"

// Address is a hex-encoded account address as produced by the signature
// subsystem. The SDK treats it as opaque.
type Address = string

// Signature is a hex-encoded signature as produced by the signature
// subsystem. The SDK treats it as opaque.
type Signature = string

// EncryptedTransaction is an opaque encrypted transaction payload; its
// format belongs to the encryption scheme of the rollup.
type EncryptedTransaction = json.RawMessage

// RawTransaction is an opaque raw transaction payload; its format belongs to
// the rollup's execution layer.
type RawTransaction = json.RawMessage
