package types

import (
	"errors"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:    "empty config is valid",
			config:  Config{},
			wantErr: nil,
		},
		{
			name:    "predicted entry type with debug level",
			config:  Config{Session: "s.yaml", EntryType: "predicted", LogLevel: "debug"},
			wantErr: nil,
		},
		{
			name:    "unknown entry type returns ErrInvalidEntryType",
			config:  Config{EntryType: "resolved"},
			wantErr: ErrInvalidEntryType,
		},
		{
			name:    "unknown log level returns ErrInvalidLogLevel",
			config:  Config{LogLevel: "chatty"},
			wantErr: ErrInvalidLogLevel,
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
