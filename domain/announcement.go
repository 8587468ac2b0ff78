package domain

// DefaultPool is the pool of services announced without one.
const DefaultPool = "general"

// DynamicServiceAnnouncement is one service offered by an announcing node.
type DynamicServiceAnnouncement struct {
	ID         ServiceID
	Type       string
	Properties map[string]string
}

// DynamicAnnouncement is everything one node announces in a single call.
type DynamicAnnouncement struct {
	Environment string
	Pool        string
	Location    string
	Services    []DynamicServiceAnnouncement
}

// ToServices expands the announcement into one Service per announced service, owned by nodeID.
func (a DynamicAnnouncement) ToServices(nodeID NodeID) []Service {
	out := make([]Service, 0, len(a.Services))
	for _, sa := range a.Services {
		owner := nodeID
		out = append(out, Service{
			ID:         sa.ID,
			NodeID:     &owner,
			Type:       sa.Type,
			Pool:       a.Pool,
			Location:   a.Location,
			Properties: sa.Properties,
		})
	}
	return out
}

// ServiceAnnouncement is one service of an Announcement.
type ServiceAnnouncement struct {
	ID         ServiceID
	Type       string
	Properties map[string]string
}

// Announcement is the environment-scoped form used for static and federated services, which have no owning node.
type Announcement struct {
	Environment string
	Location    string
	Services    []ServiceAnnouncement
}

// ToServices expands the announcement into node-less services in the given pool.
func (a Announcement) ToServices(pool string) []Service {
	if pool == "" {
		pool = DefaultPool
	}
	out := make([]Service, 0, len(a.Services))
	for _, sa := range a.Services {
		out = append(out, Service{
			ID:         sa.ID,
			Type:       sa.Type,
			Pool:       pool,
			Location:   a.Location,
			Properties: sa.Properties,
		})
	}
	return out
}
