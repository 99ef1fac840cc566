package selftest

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestCheckKnownVectors(t *testing.T) {
	for _, v := range KnownVectors {
		t.Run(v.Name, func(t *testing.T) {
			if err := CheckVector(v); err != nil {
				t.Fatalf("CheckVector() error = %v", err)
			}
		})
	}
}

func TestCheckVectorFailures(t *testing.T) {
	good := KnownVectors[0]
	tests := []struct {
		name    string
		mutate  func(v *Vector)
		wantErr string
	}{
		{name: "bad key hex", mutate: func(v *Vector) { v.Key = "zz" }, wantErr: "key"},
		{name: "short key", mutate: func(v *Vector) { v.Key = "0011" }, wantErr: "invalid key size"},
		{name: "short block", mutate: func(v *Vector) { v.Plaintext = "0011" }, wantErr: "invalid block size"},
		{name: "wrong ciphertext", mutate: func(v *Vector) { v.Ciphertext = strings.Repeat("00", 16) }, wantErr: "encrypt got"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := good
			tt.mutate(&v)
			err := CheckVector(v)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestRun(t *testing.T) {
	config := DefaultConfig()
	config.Blocks = 32

	report, err := Run(context.Background(), config)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if report.Vectors != len(KnownVectors) {
		t.Errorf("Vectors = %d, want %d", report.Vectors, len(KnownVectors))
	}
	if want := config.Workers * config.Blocks; report.Blocks != want {
		t.Errorf("Blocks = %d, want %d", report.Blocks, want)
	}
	if report.HardwareAES != HardwareAES() {
		t.Errorf("HardwareAES = %v, want %v", report.HardwareAES, HardwareAES())
	}
}

func TestRunInvalidConfig(t *testing.T) {
	for _, config := range []*Config{{Workers: 0, Blocks: 1}, {Workers: 1, Blocks: -1}} {
		if _, err := Run(context.Background(), config); err == nil {
			t.Errorf("Run(%+v) expected error, got nil", *config)
		}
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, &Config{Workers: 2, Blocks: 10})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run() error = %v, want context.Canceled", err)
	}
}
