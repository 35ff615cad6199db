package types

// JSON-RPC method names served by a seeder.
const (
	MethodRegisterSequencer                   = "register_sequencer"
	MethodDeregisterSequencer                 = "deregister_sequencer"
	MethodGetExecutorRPCURLList               = "get_executor_rpc_url_list"
	MethodGetSequencerRPCURL                  = "get_sequencer_rpc_url"
	MethodGetSequencerRPCURLList              = "get_sequencer_rpc_url_list"
	MethodGetSequencerRPCURLListAtBlockHeight = "get_sequencer_rpc_url_list_at_block_number"
)

// RegisterSequencer announces a sequencer to its cluster's seeder.
type RegisterSequencer struct {
	Message   RegisterSequencerMessage `json:"message"`
	Signature Signature                `json:"signature"`
}

// RegisterSequencerMessage is the signed payload of RegisterSequencer.
type RegisterSequencerMessage struct {
	Platform        Platform         `json:"platform"`
	ServiceProvider LivenessProvider `json:"service_provider"`
	ClusterID       string           `json:"cluster_id"`
	Address         Address          `json:"address"`
	ExternalRPCURL  string           `json:"external_rpc_url"`
	ClusterRPCURL   string           `json:"cluster_rpc_url"`
}

// DeregisterSequencer removes a sequencer from its cluster's seeder.
type DeregisterSequencer struct {
	Message   DeregisterSequencerMessage `json:"message"`
	Signature Signature                  `json:"signature"`
}

// DeregisterSequencerMessage is the signed payload of DeregisterSequencer.
type DeregisterSequencerMessage struct {
	Platform        Platform         `json:"platform"`
	ServiceProvider LivenessProvider `json:"service_provider"`
	ClusterID       string           `json:"cluster_id"`
	Address         Address          `json:"address"`
	ExternalRPCURL  string           `json:"external_rpc_url"`
	ClusterRPCURL   string           `json:"cluster_rpc_url"`
}

// GetExecutorRPCURLList fetches RPC endpoints for a list of executors.
type GetExecutorRPCURLList struct {
	ExecutorAddressList []Address `json:"executor_address_list"`
}

// GetExecutorRPCURLListResponse maps executor addresses to optional RPC
// endpoints.
type GetExecutorRPCURLListResponse struct {
	ExecutorRPCURLList []ExecutorRPCInfo `json:"executor_rpc_url_list"`
}

// ExecutorRPCInfo pairs an executor address with its RPC endpoint, when
// known.
type ExecutorRPCInfo struct {
	Address string  `json:"address"`
	RPCURL  *string `json:"rpc_url"`
}

// GetSequencerRPCURL fetches the RPC endpoints of one sequencer.
type GetSequencerRPCURL struct {
	Address Address `json:"address"`
}

// GetSequencerRPCURLResponse is the seeder's reply to GetSequencerRPCURL.
type GetSequencerRPCURLResponse struct {
	SequencerRPCURL SequencerRPCInfo `json:"sequencer_rpc_url"`
}

// GetSequencerRPCURLList fetches RPC endpoints for a list of sequencers.
type GetSequencerRPCURLList struct {
	SequencerAddressList []Address `json:"sequencer_address_list"`
}

// SequencerRPCInfo pairs a sequencer address with its external and
// cluster-internal endpoints, when known.
type SequencerRPCInfo struct {
	Address        string  `json:"address"`
	ExternalRPCURL *string `json:"external_rpc_url"`
	ClusterRPCURL  *string `json:"cluster_rpc_url"`
}

// GetSequencerRPCURLListResponse is the seeder's reply to
// GetSequencerRPCURLList.
type GetSequencerRPCURLListResponse struct {
	SequencerRPCURLList []SequencerRPCInfo `json:"sequencer_rpc_url_list"`
}

// GetSequencerRPCURLListAtBlockHeight fetches the sequencer endpoints of a
// cluster as of a platform block height.
type GetSequencerRPCURLListAtBlockHeight struct {
	Platform        Platform         `json:"platform"`
	ServiceProvider LivenessProvider `json:"service_provider"`
	ClusterID       string           `json:"cluster_id"`
	Address         Address          `json:"address"`
	BlockNumber     uint64           `json:"block_number"`
}

// GetSequencerRPCURLListAtBlockHeightResponse is the seeder's reply to
// GetSequencerRPCURLListAtBlockHeight.
type GetSequencerRPCURLListAtBlockHeightResponse struct {
	SequencerRPCURLList []SequencerRPCInfo `json:"sequencer_rpc_url_list"`
	BlockNumber         uint64             `json:"block_number"`
}
