package types

// JSON-RPC method names served by a sequencer.
const (
	MethodFinalizeBlock                              = "finalize_block"
	MethodGetBlock                                   = "get_block"
	MethodGetEncryptedTransactionWithOrderCommitment = "get_encrypted_transaction_with_order_commitment"
	MethodGetEncryptedTransactionWithTransactionHash = "get_encrypted_transaction_with_transaction_hash"
	MethodGetRawTransactionList                      = "get_raw_transaction_list"
	MethodGetRawTransactionWithOrderCommitment       = "get_raw_transaction_with_order_commitment"
	MethodGetRawTransactionWithTransactionHash       = "get_raw_transaction_with_transaction_hash"
	MethodSendEncryptedTransaction                   = "send_encrypted_transaction"
	MethodSendRawTransaction                         = "send_raw_transaction"
)

// FinalizeBlock asks the executor to finalize a rollup block.
type FinalizeBlock struct {
	Message   FinalizeBlockMessage `json:"message"`
	Signature Signature            `json:"signature"`
}

// FinalizeBlockMessage is the signed payload of FinalizeBlock.
type FinalizeBlockMessage struct {
	ExecutorAddress         Address `json:"executor_address"`
	BlockCreatorAddress     Address `json:"block_creator_address"`
	NextBlockCreatorAddress Address `json:"next_block_creator_address"`
	RollupID                string  `json:"rollup_id"`
	PlatformBlockNumber     uint64  `json:"platform_block_number"`
	RollupBlockNumber       uint64  `json:"rollup_block_number"`
}

// GetBlock fetches a finalized rollup block.
type GetBlock struct {
	RollupID          string `json:"rollup_id"`
	RollupBlockNumber uint64 `json:"rollup_block_number"`
}

// GetBlockResponse is the sequencer's reply to GetBlock.
type GetBlockResponse struct {
	BlockNumber              uint64                 `json:"block_number"`
	EncryptedTransactionList []EncryptedTransaction `json:"encrypted_transaction_list"`
	RawTransactionList       []RawTransaction       `json:"raw_transaction_list"`
	BlockCreatorAddress      string                 `json:"block_creator_address"`
	Signature                string                 `json:"signature"`
	BlockCommitment          string                 `json:"block_commitment"`
}

// GetEncryptedTransactionWithOrderCommitment fetches an encrypted
// transaction by its order within a block.
type GetEncryptedTransactionWithOrderCommitment struct {
	RollupID          string `json:"rollup_id"`
	RollupBlockNumber uint64 `json:"rollup_block_number"`
	TransactionOrder  uint64 `json:"transaction_order"`
}

// GetEncryptedTransactionWithTransactionHash fetches an encrypted
// transaction by hash.
type GetEncryptedTransactionWithTransactionHash struct {
	RollupID        string `json:"rollup_id"`
	TransactionHash string `json:"transaction_hash"`
}

// GetRawTransactionList fetches the raw transactions of a block.
type GetRawTransactionList struct {
	RollupID          string `json:"rollup_id"`
	RollupBlockNumber uint64 `json:"rollup_block_number"`
}

// GetRawTransactionListResponse is the sequencer's reply to
// GetRawTransactionList.
type GetRawTransactionListResponse struct {
	RawTransactionList []string `json:"raw_transaction_list"`
}

// GetRawTransactionWithOrderCommitment fetches a raw transaction by its
// order within a block.
type GetRawTransactionWithOrderCommitment struct {
	RollupID          string `json:"rollup_id"`
	RollupBlockNumber uint64 `json:"rollup_block_number"`
	TransactionOrder  uint64 `json:"transaction_order"`
}

// GetRawTransactionWithTransactionHash fetches a raw transaction by hash.
type GetRawTransactionWithTransactionHash struct {
	RollupID        string `json:"rollup_id"`
	TransactionHash string `json:"transaction_hash"`
}

// SendEncryptedTransaction submits an encrypted transaction for sequencing.
type SendEncryptedTransaction struct {
	RollupID             string               `json:"rollup_id"`
	EncryptedTransaction EncryptedTransaction `json:"encrypted_transaction"`
}

// SendRawTransaction submits a raw transaction for sequencing.
type SendRawTransaction struct {
	RollupID       string         `json:"rollup_id"`
	RawTransaction RawTransaction `json:"raw_transaction"`
}
