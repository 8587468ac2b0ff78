package api

import (
	"time"
)

// ServiceRepresentation defines model for ServiceRepresentation.
type ServiceRepresentation struct {
	Id         string            `json:"id"`
	NodeId     *string           `json:"nodeId"`
	Type       string            `json:"type"`
	Pool       string            `json:"pool"`
	Location   string            `json:"location"`
	Properties map[string]string `json:"properties"`
}

// ServicesResponse defines model for ServicesResponse.
type ServicesResponse struct {
	Environment string                  `json:"environment"`
	Services    []ServiceRepresentation `json:"services"`
}

// DynamicServiceAnnouncement defines model for DynamicServiceAnnouncement.
type DynamicServiceAnnouncement struct {
	Id         string            `json:"id"`
	Type       string            `json:"type"`
	Properties map[string]string `json:"properties,omitempty"`
}

// DynamicAnnouncementRequest defines model for DynamicAnnouncementRequest.
type DynamicAnnouncementRequest struct {
	Environment string                       `json:"environment"`
	Pool        *string                      `json:"pool,omitempty"`
	Location    *string                      `json:"location,omitempty"`
	Services    []DynamicServiceAnnouncement `json:"services"`
}

// StaticServiceAnnouncement defines model for StaticServiceAnnouncement.
type StaticServiceAnnouncement struct {
	Id         *string           `json:"id,omitempty"`
	Type       string            `json:"type"`
	Properties map[string]string `json:"properties,omitempty"`
}

// StaticAnnouncementRequest defines model for StaticAnnouncementRequest.
type StaticAnnouncementRequest struct {
	Environment string                      `json:"environment"`
	Location    *string                     `json:"location,omitempty"`
	Services    []StaticServiceAnnouncement `json:"services"`
}

// PostStaticAnnouncementParams defines parameters for PostStaticAnnouncement.
type PostStaticAnnouncementParams struct {
	Pool *string `form:"pool,omitempty" json:"pool,omitempty"`
}

// ExchangeEntry defines model for ExchangeEntry.
type ExchangeEntry struct {
	Key       []byte    `json:"key"`
	Value     []byte    `json:"value,omitempty"`
	Version   uint64    `json:"version"`
	MaxAgeNs  int64     `json:"maxAgeNs"`
	CreatedAt time.Time `json:"createdAt"`
	Tombstone bool      `json:"tombstone,omitempty"`
}

// ExchangeRequest defines model for ExchangeRequest.
type ExchangeRequest struct {
	Entries []ExchangeEntry `json:"entries"`
}

// ExchangeResponse defines model for ExchangeResponse.
type ExchangeResponse struct {
	Entries []ExchangeEntry `json:"entries"`
}
