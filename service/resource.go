package service

import (
	"FlowHub/models"
	"FlowHub/pkg/response"
	"slices"
)

// ValidateResource 校验互动接口的资源标识
func ValidateResource(resourceType, resourceID string) (models.ResourceKey, error) {
	if resourceType == "" || resourceID == "" {
		return models.ResourceKey{}, response.ErrMissingParameter
	}
	if !slices.Contains(models.ResourceTypes, resourceType) {
		return models.ResourceKey{}, response.ErrInvalidResourceType
	}
	return models.ResourceKey{Type: resourceType, ID: resourceID}, nil
}

func ValidatePlatform(platform string) error {
	if platform == "" {
		return response.ErrMissingParameter
	}
	if !slices.Contains(models.Platforms, platform) {
		return response.ErrInvalidPlatform
	}
	return nil
}
