package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDynamicAnnouncement_ToServices(t *testing.T) {
	nodeID := NewID[NodeKind]()
	storage := DynamicServiceAnnouncement{ID: NewID[ServiceKind](), Type: "storage", Properties: map[string]string{"key": "1"}}
	web := DynamicServiceAnnouncement{ID: NewID[ServiceKind](), Type: "web", Properties: map[string]string{"key": "2"}}
	announcement := DynamicAnnouncement{Environment: "testing", Pool: "alpha", Location: "/a/b/c", Services: []DynamicServiceAnnouncement{storage, web}}

	services := announcement.ToServices(nodeID)
	require.Len(t, services, 2)
	for i, sa := range []DynamicServiceAnnouncement{storage, web} {
		assert.Equal(t, sa.ID, services[i].ID)
		require.NotNil(t, services[i].NodeID)
		assert.Equal(t, nodeID, *services[i].NodeID)
		assert.Equal(t, sa.Type, services[i].Type)
		assert.Equal(t, "alpha", services[i].Pool)
		assert.Equal(t, "/a/b/c", services[i].Location)
		assert.Equal(t, sa.Properties, services[i].Properties)
	}

	assert.Empty(t, DynamicAnnouncement{Environment: "testing"}.ToServices(nodeID))
}

func TestAnnouncement_ToServices(t *testing.T) {
	sa := ServiceAnnouncement{ID: NewID[ServiceKind](), Type: "storage", Properties: map[string]string{"http": "http://10.0.0.1"}}
	announcement := Announcement{Environment: "testing", Location: "/static", Services: []ServiceAnnouncement{sa}}

	services := announcement.ToServices("")
	require.Len(t, services, 1)
	assert.Nil(t, services[0].NodeID)
	assert.Equal(t, DefaultPool, services[0].Pool)
	assert.Equal(t, "/static", services[0].Location)

	services = announcement.ToServices("alpha")
	assert.Equal(t, "alpha", services[0].Pool)
}
