package handlers

import (
	"github.com/jsabin/discovery/api"
	"github.com/jsabin/discovery/domain"
)

// toServicesResponse converts domain services to API response.
func toServicesResponse(environment string, services []domain.Service) api.ServicesResponse {
	return api.ServicesResponse{
		Environment: environment,
		Services:    api.ToServiceRepresentations(services),
	}
}
