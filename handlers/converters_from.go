package handlers

import (
	"github.com/jsabin/discovery/api"
	"github.com/jsabin/discovery/domain"
	"github.com/jsabin/discovery/helpers"
	"github.com/jsabin/discovery/service"
)

// fromDynamicAnnouncementRequest validates an announcement of nodeId made for environment.
// Returns service.BadParameterError on validation failure.
func fromDynamicAnnouncementRequest(environment string, nodeId string, req api.DynamicAnnouncementRequest) (domain.NodeID, domain.DynamicAnnouncement, error) {
	nodeID, err := domain.ParseID[domain.NodeKind](nodeId)
	if err != nil {
		return domain.NodeID{}, domain.DynamicAnnouncement{}, service.NewBadParameterError("node_id must be a uuid", err)
	}
	if req.Environment == "" {
		return domain.NodeID{}, domain.DynamicAnnouncement{}, service.NewBadParameterError("environment is required", nil)
	}
	if req.Environment != environment {
		return domain.NodeID{}, domain.DynamicAnnouncement{}, service.NewBadParameterError("environment mismatch, expected "+environment, nil)
	}
	if req.Services == nil {
		return domain.NodeID{}, domain.DynamicAnnouncement{}, service.NewBadParameterError("services are required", nil)
	}

	services := make([]domain.DynamicServiceAnnouncement, 0, len(req.Services))
	for _, s := range req.Services {
		id, err := domain.ParseID[domain.ServiceKind](s.Id)
		if err != nil {
			return domain.NodeID{}, domain.DynamicAnnouncement{}, service.NewBadParameterError("service id must be a uuid", err)
		}
		if s.Type == "" {
			return domain.NodeID{}, domain.DynamicAnnouncement{}, service.NewBadParameterError("service type is required", nil)
		}
		services = append(services, domain.DynamicServiceAnnouncement{
			ID:         id,
			Type:       s.Type,
			Properties: s.Properties,
		})
	}

	announcement := domain.DynamicAnnouncement{
		Environment: req.Environment,
		Pool:        domain.DefaultPool,
		Location:    "/" + nodeID.String(),
		Services:    services,
	}
	if pool := helpers.Value(req.Pool); pool != "" {
		announcement.Pool = pool
	}
	if location := helpers.Value(req.Location); location != "" {
		announcement.Location = location
	}
	return nodeID, announcement, nil
}

// fromStaticAnnouncementRequest validates a static announcement made for environment and expands it into
// services of pool. Services without an id get a fresh one.
// Returns service.BadParameterError on validation failure.
func fromStaticAnnouncementRequest(environment string, pool *string, req api.StaticAnnouncementRequest) ([]domain.Service, error) {
	if req.Environment == "" {
		return nil, service.NewBadParameterError("environment is required", nil)
	}
	if req.Environment != environment {
		return nil, service.NewBadParameterError("environment mismatch, expected "+environment, nil)
	}
	if len(req.Services) == 0 {
		return nil, service.NewBadParameterError("services are required", nil)
	}

	announcement := domain.Announcement{Environment: req.Environment, Location: helpers.Value(req.Location)}
	for _, s := range req.Services {
		id := domain.NewID[domain.ServiceKind]()
		if s.Id != nil {
			parsed, err := domain.ParseID[domain.ServiceKind](*s.Id)
			if err != nil {
				return nil, service.NewBadParameterError("service id must be a uuid", err)
			}
			id = parsed
		}
		if s.Type == "" {
			return nil, service.NewBadParameterError("service type is required", nil)
		}
		announcement.Services = append(announcement.Services, domain.ServiceAnnouncement{
			ID:         id,
			Type:       s.Type,
			Properties: s.Properties,
		})
	}

	return announcement.ToServices(helpers.Value(pool)), nil
}
