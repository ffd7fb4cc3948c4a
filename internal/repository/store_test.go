package repository

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	tests := []struct {
		name        string
		url         string
		wantBackend string
		wantErr     bool
	}{
		{name: "memory", url: "memory://", wantBackend: "memory"},
		{name: "unknown scheme", url: "mysql://localhost/db", wantErr: true},
		{name: "no scheme", url: "localhost", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := Open(context.Background(), tt.url, logger)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantBackend, store.Backend)
			assert.NoError(t, store.Ping(context.Background()))
			assert.NoError(t, store.Close())
		})
	}
}
