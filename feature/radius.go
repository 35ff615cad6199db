package feature

import "sync"

// Declared capability names of the radius lattice.
const (
	Context              Name = "context"
	JSONRPC              Name = "json-rpc"
	JSONRPCClient        Name = "json-rpc-client"
	JSONRPCServer        Name = "json-rpc-server"
	KvStoreBytes         Name = "kvstore-bytes"
	KvStoreJSON          Name = "kvstore-json"
	LivenessRadius       Name = "liveness-radius"
	Signature            Name = "signature"
	ValidationEigenLayer Name = "validation-eigenlayer"
	ValidationSymbiotic  Name = "validation-symbiotic"
	Full                 Name = "full"
)

// Subsystem names activated by the radius lattice.
const (
	SubsystemContext        = "context"
	SubsystemJSONRPC        = "json-rpc"
	SubsystemKvStore        = "kvstore"
	SubsystemKvStoreCodegen = "kvstore-codegen"
	SubsystemLiveness       = "liveness"
	SubsystemSignature      = "signature"
	SubsystemValidation     = "validation"
)

// Modes used by parameterized subsystems of the radius lattice.
const (
	ModeClient     = "client"
	ModeServer     = "server"
	ModeBytes      = "bytes"
	ModeJSON       = "json"
	ModeRadius     = "radius"
	ModeEigenLayer = "eigenlayer"
	ModeSymbiotic  = "symbiotic"
)

var radiusLattice = sync.OnceValue(func() *Lattice {
	return MustNewLattice(
		[]Subsystem{
			{Name: SubsystemContext},
			{Name: SubsystemJSONRPC},
			{Name: SubsystemKvStore},
			{Name: SubsystemKvStoreCodegen},
			{Name: SubsystemLiveness},
			{Name: SubsystemSignature},
			{Name: SubsystemValidation},
		},
		[]Capability{
			{
				Name: Context,
				Bindings: []Binding{
					{Activation: Activation{Subsystem: SubsystemContext}, Constraint: "^0.2"},
				},
			},
			{
				Name: JSONRPCClient,
				Bindings: []Binding{
					{
						Activation: Activation{Subsystem: SubsystemJSONRPC, Mode: ModeClient},
						Defaults:   DefaultsSuppressed,
						Constraint: "^0.3",
					},
				},
			},
			{
				Name: JSONRPCServer,
				Bindings: []Binding{
					{
						Activation: Activation{Subsystem: SubsystemJSONRPC, Mode: ModeServer},
						Defaults:   DefaultsSuppressed,
						Constraint: "^0.3",
					},
				},
			},
			{
				// The whole JSON-RPC subsystem, client and server surfaces.
				Name:     JSONRPC,
				Requires: []Name{JSONRPCClient, JSONRPCServer},
			},
			{
				Name: KvStoreBytes,
				Bindings: []Binding{
					{
						Activation: Activation{Subsystem: SubsystemKvStore, Mode: ModeBytes},
						Defaults:   DefaultsSuppressed,
						Constraint: "^0.4",
					},
					{
						Activation: Activation{Subsystem: SubsystemKvStoreCodegen},
						Defaults:   DefaultsSuppressed,
						Constraint: "^0.4",
					},
				},
			},
			{
				Name: KvStoreJSON,
				Bindings: []Binding{
					{
						Activation: Activation{Subsystem: SubsystemKvStore, Mode: ModeJSON},
						Defaults:   DefaultsSuppressed,
						Constraint: "^0.4",
					},
					{
						Activation: Activation{Subsystem: SubsystemKvStoreCodegen},
						Defaults:   DefaultsSuppressed,
						Constraint: "^0.4",
					},
				},
			},
			{
				Name: LivenessRadius,
				Bindings: []Binding{
					{
						Activation: Activation{Subsystem: SubsystemLiveness, Mode: ModeRadius},
						Defaults:   DefaultsSuppressed,
						Constraint: "^0.5",
					},
				},
			},
			{
				Name: Signature,
				Bindings: []Binding{
					{Activation: Activation{Subsystem: SubsystemSignature}, Constraint: "^0.2"},
				},
			},
			{
				Name: ValidationEigenLayer,
				Bindings: []Binding{
					{
						Activation: Activation{Subsystem: SubsystemValidation, Mode: ModeEigenLayer},
						Defaults:   DefaultsSuppressed,
						Constraint: "^0.1",
					},
				},
			},
			{
				Name: ValidationSymbiotic,
				Bindings: []Binding{
					{
						Activation: Activation{Subsystem: SubsystemValidation, Mode: ModeSymbiotic},
						Defaults:   DefaultsSuppressed,
						Constraint: "^0.1",
					},
				},
			},
		},
		[]Umbrella{
			{
				// full deliberately selects the json kvstore variant;
				// kvstore-bytes is not a member.
				Name: Full,
				Members: []Name{
					Context,
					JSONRPC,
					KvStoreJSON,
					LivenessRadius,
					Signature,
					ValidationEigenLayer,
					ValidationSymbiotic,
				},
			},
		},
	)
})

// Radius returns the declared radius lattice: the capability surface of the
// SDK. The lattice is built once and shared; it is immutable.
func Radius() *Lattice {
	return radiusLattice()
}
