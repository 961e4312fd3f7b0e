package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name    string
		mode    string
		wantErr bool
	}{
		{name: "debug", mode: "debug"},
		{name: "release", mode: "release"},
		{name: "development", mode: "development"},
		{name: "unknown", mode: "verbose", wantErr: true},
		{name: "empty", mode: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Init(tt.mode)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			InitTestLogger()
		})
	}
}
