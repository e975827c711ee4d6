// Package catalog declares the job schemas the sandbox dashboard submits.
// Field order in every schema mirrors the remote decoder's fixed struct
// layout; treat it as append-only and coordinate any change with the
// blueprint owner before shipping.
package catalog

import (
	"github.com/tangle-network/ai-agent-sandbox-blueprint-sub000/pkg/jobs"
	"github.com/tangle-network/ai-agent-sandbox-blueprint-sub000/pkg/registry"
)

// Namespace is the blueprint all sandbox jobs register under.
const Namespace = "sandbox"

// Job ids within the sandbox blueprint.
const (
	JobLaunchSandbox    uint8 = 0
	JobExecuteCommand   uint8 = 1
	JobUploadArtifacts  uint8 = 2
	JobTerminateSandbox uint8 = 3
	JobProvisionRuntime uint8 = 4
)

// operatorParam routes every job to the operator handling the service
// instance. It is injected by the wallet/session layer, never by the form.
var operatorParam = jobs.ContextParam{WireName: "operator", WireType: jobs.WireAddress}

// Register adds the sandbox blueprint's schemas to a builder.
func Register(builder *registry.Builder) {
	builder.Register(Namespace, jobs.Schema{
		ID:            JobLaunchSandbox,
		Name:          "launch_sandbox",
		ContextParams: []jobs.ContextParam{operatorParam},
		Fields: []jobs.Field{
			{Name: "image", WireType: jobs.WireString},
			{Name: "env", WireType: jobs.WireStringArray},
			{Name: "cpuLimit", WireName: "cpuMillis", WireType: jobs.WireUint32},
			{Name: "memoryMB", WireType: jobs.WireUint64},
			{Name: "persistent", WireType: jobs.WireBool},
			{Name: "collaborators", WireType: jobs.WireAddressArray},
			// Rendered in the form, never encoded.
			{Name: "displayName"},
			{Name: "schemaVersion", WireType: jobs.WireUint8, Internal: true},
		},
	})

	builder.Register(Namespace, jobs.Schema{
		ID:            JobExecuteCommand,
		Name:          "execute_command",
		ContextParams: []jobs.ContextParam{operatorParam},
		Fields: []jobs.Field{
			{Name: "sandboxId", WireType: jobs.WireUint64},
			{Name: "command", WireType: jobs.WireString},
			{Name: "timeoutSecs", WireType: jobs.WireUint64},
			{Name: "stdin", WireType: jobs.WireString},
		},
	})

	builder.Register(Namespace, jobs.Schema{
		ID:            JobUploadArtifacts,
		Name:          "upload_artifacts",
		ContextParams: []jobs.ContextParam{operatorParam},
		Fields: []jobs.Field{
			{Name: "sandboxId", WireType: jobs.WireUint64},
			{Name: "paths", WireType: jobs.WireStringArray},
			{Name: "compress", WireType: jobs.WireBool},
		},
	})

	builder.Register(Namespace, jobs.Schema{
		ID:            JobTerminateSandbox,
		Name:          "terminate_sandbox",
		ContextParams: []jobs.ContextParam{operatorParam},
		Fields: []jobs.Field{
			{Name: "sandboxId", WireType: jobs.WireUint64},
			{Name: "force", WireType: jobs.WireBool},
		},
	})

	builder.Register(Namespace, jobs.Schema{
		ID:            JobProvisionRuntime,
		Name:          "provision_runtime",
		ContextParams: []jobs.ContextParam{operatorParam},
		// The remote layout nests the resource limits in a tuple the flat
		// field list cannot express, so this job encodes through an
		// override. Fields are declared for the form layer only.
		Fields: []jobs.Field{
			{Name: "runtime"},
			{Name: "cpuMillis"},
			{Name: "memoryMB"},
			{Name: "timeoutSecs"},
		},
		Encoder: jobs.EncoderFunc(encodeProvisionRuntime),
	})
}

// Default builds a registry containing the sandbox blueprint.
func Default() *registry.Registry {
	builder := registry.NewBuilder()
	Register(builder)
	return builder.Build()
}
