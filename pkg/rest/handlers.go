package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ml-infra-lab/quota-allocator/internal/metrics"
	"github.com/ml-infra-lab/quota-allocator/pkg/quota"
)

// Handlers for REST API calls

func resolveRequest(c *gin.Context) {
	var spec quota.ResourceSpec
	if err := c.BindJSON(&spec); err != nil {
		return
	}
	outcome := engine.Validate(&spec)
	if !outcome.Valid {
		metrics.RecordValidationFailure(outcome.Rule)
		c.IndentedJSON(http.StatusBadRequest, outcome)
		return
	}
	mode := quota.DeriveMode(&spec)
	request, err := engine.ResolveRequest(&spec)
	if err != nil {
		metrics.RecordResolution("request", mode.String(), "error")
		c.IndentedJSON(statusForError(err), gin.H{"message": err.Error()})
		return
	}
	metrics.RecordResolution("request", mode.String(), "resolved")
	c.IndentedJSON(http.StatusOK, request)
}

func resolveLimit(c *gin.Context) {
	var spec quota.ResourceSpec
	if err := c.BindJSON(&spec); err != nil {
		return
	}
	outcome := engine.Validate(&spec)
	if !outcome.Valid {
		metrics.RecordValidationFailure(outcome.Rule)
		c.IndentedJSON(http.StatusBadRequest, outcome)
		return
	}
	mode := quota.DeriveMode(&spec)
	limit, err := engine.ResolveLimit(&spec)
	if err != nil {
		metrics.RecordResolution("limit", mode.String(), "error")
		c.IndentedJSON(statusForError(err), gin.H{"message": err.Error()})
		return
	}
	metrics.RecordResolution("limit", mode.String(), "resolved")
	c.IndentedJSON(http.StatusOK, limit)
}

func validate(c *gin.Context) {
	var spec quota.ResourceSpec
	if err := c.BindJSON(&spec); err != nil {
		return
	}
	outcome := engine.Validate(&spec)
	if !outcome.Valid {
		metrics.RecordValidationFailure(outcome.Rule)
	}
	c.IndentedJSON(http.StatusOK, outcome)
}

func getInstanceTypes(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, engine.Registry().InstanceTypes())
}

func getInstanceType(c *gin.Context) {
	name := c.Param("name")
	profile, exists := engine.Registry().Lookup(name)
	if !exists {
		c.IndentedJSON(http.StatusNotFound, gin.H{"message": "instance type " + name + " not found"})
		return
	}
	c.IndentedJSON(http.StatusOK, profile)
}

func getPartitionProfiles(c *gin.Context) {
	name := c.Param("name")
	profiles := partitions.PartitionTypes(name)
	if len(profiles) == 0 {
		c.IndentedJSON(http.StatusNotFound, gin.H{"message": "no partition profiles for instance type " + name})
		return
	}
	c.IndentedJSON(http.StatusOK, profiles)
}

// statusForError maps resolution errors to HTTP statuses: an unknown instance
// type is a 404, anything else (e.g. an unresolvable partition combination)
// is a 422.
func statusForError(err error) int {
	var unknown *quota.UnknownInstanceTypeError
	if errors.As(err, &unknown) {
		return http.StatusNotFound
	}
	return http.StatusUnprocessableEntity
}
