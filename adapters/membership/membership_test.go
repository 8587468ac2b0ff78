package membership

import (
	"context"
	"testing"

	"github.com/jsabin/discovery/interfaces"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExcludeSelf(t *testing.T) {
	tests := []struct {
		name      string
		addresses []string
		self      string
		want      []string
	}{
		{name: "nil", addresses: nil, self: "a:1", want: []string{}},
		{name: "only self", addresses: []string{"a:1"}, self: "a:1", want: []string{}},
		{name: "others sorted", addresses: []string{"c:1", "a:1", "b:1"}, self: "a:1", want: []string{"b:1", "c:1"}},
		{name: "duplicates and blanks", addresses: []string{"b:1", "", "b:1", "c:1"}, self: "", want: []string{"b:1", "c:1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExcludeSelf(tt.addresses, tt.self))
		})
	}
}

func TestStatic(t *testing.T) {
	m := NewStatic("10.0.0.1:8080", []string{"10.0.0.2:8080", "10.0.0.1:8080", "10.0.0.3:8080"})
	ctx := context.Background()

	require.NoError(t, m.Register(ctx))
	peers, err := m.Peers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"10.0.0.2:8080", "10.0.0.3:8080"}, peers)

	peers[0] = "changed"
	again, _ := m.Peers(ctx)
	assert.Equal(t, "10.0.0.2:8080", again[0], "callers get a copy")

	assert.NoError(t, m.Deregister(ctx))
	assert.NoError(t, m.Close())
}

func TestNew(t *testing.T) {
	m, err := New(Config{Kind: KindStatic, Self: "a:1", Peers: []string{"a:1", "b:1"}}, log.NewNopLogger())
	require.NoError(t, err)
	peers, err := m.Peers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"b:1"}, peers)

	_, err = New(Config{Kind: "carrier-pigeon"}, log.NewNopLogger())
	assert.ErrorContains(t, err, "unsupported membership kind")
}

func TestRegisterFactory(t *testing.T) {
	var got Config
	RegisterFactory("recording", func(cfg Config, _ log.Logger) (interfaces.Membership, error) {
		got = cfg
		return NewStatic(cfg.Self, nil), nil
	})

	assert.Contains(t, Kinds(), "recording")
	assert.Contains(t, Kinds(), KindStatic)

	_, err := New(Config{Kind: "recording", Self: "a:1"}, log.NewNopLogger())
	require.NoError(t, err)
	assert.Equal(t, DefaultTTL, got.TTL, "a zero ttl gets the default")
}
