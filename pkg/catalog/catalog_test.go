package catalog

import (
	"bytes"
	"testing"

	"github.com/ethereum/go-ethereum/common"

	"github.com/tangle-network/ai-agent-sandbox-blueprint-sub000/pkg/encode"
	"github.com/tangle-network/ai-agent-sandbox-blueprint-sub000/pkg/jobs"
)

func TestDefault_RegistersAllJobs(t *testing.T) {
	reg := Default()
	for _, id := range []uint8{
		JobLaunchSandbox,
		JobExecuteCommand,
		JobUploadArtifacts,
		JobTerminateSandbox,
		JobProvisionRuntime,
	} {
		if _, ok := reg.Lookup(Namespace, id); !ok {
			t.Fatalf("job %d missing from default registry", id)
		}
	}
}

func TestLaunchSandbox_SchemaShape(t *testing.T) {
	schema, _ := Default().Lookup(Namespace, JobLaunchSandbox)

	if len(schema.ContextParams) != 1 || schema.ContextParams[0].WireName != "operator" {
		t.Fatalf("launch_sandbox must route through the operator context param: %v", schema.ContextParams)
	}

	for _, f := range schema.WireFields() {
		if f.Name == "displayName" {
			t.Fatal("displayName is UI-only and must not reach the wire")
		}
	}

	var internal *jobs.Field
	for i, f := range schema.Fields {
		if f.Internal {
			internal = &schema.Fields[i]
		}
	}
	if internal == nil || internal.Name != "schemaVersion" {
		t.Fatalf("expected schemaVersion to be the internal field, got %v", internal)
	}
}

func TestLaunchSandbox_Encodes(t *testing.T) {
	schema, _ := Default().Lookup(Namespace, JobLaunchSandbox)
	payload, err := encode.JobArgs(schema, map[string]any{
		"image":         "ghcr.io/tangle/agent:latest",
		"env":           "AGENT_MODE=auto\nLOG_LEVEL=debug",
		"cpuLimit":      float64(2000),
		"memoryMB":      float64(4096),
		"persistent":    true,
		"collaborators": "0x52908400098527886E0F7030069857D2E4169EE7",
		"displayName":   "my sandbox",
		"schemaVersion": float64(1),
	}, map[string]any{
		"operator": "0x8617E340B3D01FA5F11F306F4090FD50E238070D",
	})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if len(payload) == 0 {
		t.Fatal("empty payload")
	}
}

func TestProvisionRuntime_CustomEncoder(t *testing.T) {
	schema, _ := Default().Lookup(Namespace, JobProvisionRuntime)
	if schema.Encoder == nil {
		t.Fatal("provision_runtime must carry a custom encoder")
	}

	operator := "0xde709f2102306220921060314715629080e2fb77"
	payload, err := encode.JobArgs(schema, map[string]any{
		"runtime":     "firecracker",
		"cpuMillis":   float64(1500),
		"memoryMB":    float64(2048),
		"timeoutSecs": "600",
		// Declarative fields are bypassed entirely; junk here must not
		// change the output.
		"unrelated": "x",
	}, map[string]any{"operator": operator})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	// The custom path must be byte-equal to packing the nested layout
	// directly: (operator, runtime, (cpuMillis, memoryMB, timeoutSecs)).
	want, err := provisionArgs.Pack(
		common.HexToAddress(operator),
		"firecracker",
		resourceSpec{CpuMillis: 1500, MemoryMB: 2048, TimeoutSecs: 600},
	)
	if err != nil {
		t.Fatalf("reference pack: %v", err)
	}
	if !bytes.Equal(payload, want) {
		t.Fatalf("custom encoder diverged from the reference layout\n got %x\nwant %x", payload, want)
	}
}

func TestProvisionRuntime_MissingValuesDegrade(t *testing.T) {
	schema, _ := Default().Lookup(Namespace, JobProvisionRuntime)
	payload, err := encode.JobArgs(schema, nil, nil)
	if err != nil {
		t.Fatalf("encode with empty inputs must not fail: %v", err)
	}
	want, err := provisionArgs.Pack(common.Address{}, "", resourceSpec{})
	if err != nil {
		t.Fatalf("reference pack: %v", err)
	}
	if !bytes.Equal(payload, want) {
		t.Fatal("missing inputs must encode the type defaults")
	}
}
