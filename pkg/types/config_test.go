package types

import (
	"errors"
	"testing"
	"time"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:    "empty backend returns ErrBackendEmpty",
			config:  Config{Backend: "", PageSize: 5},
			wantErr: ErrBackendEmpty,
		},
		{
			name:    "unknown backend returns ErrBackendUnknown",
			config:  Config{Backend: "postgres", PageSize: 5},
			wantErr: ErrBackendUnknown,
		},
		{
			name:    "negative latency returns ErrLatencyInvalid",
			config:  Config{Backend: BackendMemory, Latency: -time.Second, PageSize: 5},
			wantErr: ErrLatencyInvalid,
		},
		{
			name:    "zero page size returns ErrPageSizeInvalid",
			config:  Config{Backend: BackendMemory, PageSize: 0},
			wantErr: ErrPageSizeInvalid,
		},
		{
			name:    "unknown log level returns ErrLogLevelUnknown",
			config:  Config{Backend: BackendMemory, PageSize: 5, LogLevel: "trace"},
			wantErr: ErrLogLevelUnknown,
		},
		{
			name:    "valid sqlite config",
			config:  Config{Backend: BackendSQLite, Latency: time.Second, PageSize: 10},
			wantErr: nil,
		},
		{
			name:    "zero latency is valid",
			config:  Config{Backend: BackendMemory, PageSize: 1},
			wantErr: nil,
		},
		{
			name:    "defaults are valid",
			config:  DefaultConfig(),
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected nil error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error %v, got nil", tt.wantErr)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}
