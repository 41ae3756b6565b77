package rest

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ml-infra-lab/quota-allocator/internal/constants"
	"github.com/ml-infra-lab/quota-allocator/internal/metrics"
	"github.com/ml-infra-lab/quota-allocator/pkg/partition"
	"github.com/ml-infra-lab/quota-allocator/pkg/quota"
)

// global pointers to the engine and partition provider used by the handlers
var engine *quota.Engine
var partitions *partition.Provider

// Server is the REST surface around the resolution engine
type Server struct {
	router *gin.Engine
}

// NewServer creates a REST server wired to the given engine and partition
// provider, with metrics registered on a private registry.
func NewServer(e *quota.Engine, p *partition.Provider) *Server {
	engine = e
	partitions = p

	server := &Server{
		router: gin.Default(),
	}

	registry := prometheus.NewRegistry()
	metrics.InitMetrics(registry)

	server.router.POST("/resolveRequest", resolveRequest)
	server.router.POST("/resolveLimit", resolveLimit)
	server.router.POST("/validate", validate)

	server.router.GET("/getInstanceTypes", getInstanceTypes)
	server.router.GET("/getInstanceType/:name", getInstanceType)
	server.router.GET("/getPartitionProfiles/:name", getPartitionProfiles)

	server.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	return server
}

// Router exposes the underlying gin router, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts serving on the host and port from the environment.
func (s *Server) Run() error {
	var host, port string
	if host = os.Getenv(constants.RestHostEnvName); host == "" {
		host = constants.DefaultRestHost
	}
	if port = os.Getenv(constants.RestPortEnvName); port == "" {
		port = constants.DefaultRestPort
	}
	return s.router.Run(host + ":" + port)
}
