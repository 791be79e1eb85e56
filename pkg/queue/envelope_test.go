package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/huntmatch/pkg/domain"
)

func TestEnvelope_KindMismatch(t *testing.T) {
	env, err := NewIngestEnvelope(domain.IngestJob{PostID: "p1"})
	require.NoError(t, err)

	_, err = env.NotifyJob()
	require.ErrorIs(t, err, ErrMalformed)

	job, err := env.IngestJob()
	require.NoError(t, err)
	assert.Equal(t, "p1", job.PostID)
}

func TestDecodeEnvelope(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{name: "valid notify", raw: `{"id":"1","kind":"notify","payload":{"recipient_id":"h","post_id":"p","author_id":"a","keywords":["go"],"rank":1}}`},
		{name: "valid ingest", raw: `{"id":"2","kind":"ingest","payload":{"post_id":"p"}}`},
		{name: "not json", raw: `{`, wantErr: true},
		{name: "no id", raw: `{"kind":"ingest","payload":{"post_id":"p"}}`, wantErr: true},
		{name: "unknown kind", raw: `{"id":"3","kind":"email","payload":{}}`, wantErr: true},
		{name: "wrong payload type", raw: `{"id":"4","kind":"ingest","payload":{"post_id":42}}`, wantErr: true},
		{name: "missing author", raw: `{"id":"5","kind":"notify","payload":{"recipient_id":"h","post_id":"p"}}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeEnvelope(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrMalformed)
				return
			}
			require.NoError(t, err)
		})
	}
}
