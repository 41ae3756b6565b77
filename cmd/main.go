/*
Copyright 2025.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"flag"
	"os"

	"github.com/ml-infra-lab/quota-allocator/internal/logger"
	"github.com/ml-infra-lab/quota-allocator/pkg/config"
	"github.com/ml-infra-lab/quota-allocator/pkg/partition"
	"github.com/ml-infra-lab/quota-allocator/pkg/quota"
	"github.com/ml-infra-lab/quota-allocator/pkg/registry"
	"github.com/ml-infra-lab/quota-allocator/pkg/rest"
)

func main() {
	var instanceDataPath string
	var partitionDataPath string
	flag.StringVar(&instanceDataPath, "instance-data", "",
		"Optional JSON/YAML file extending the built-in instance capacity table.")
	flag.StringVar(&partitionDataPath, "partition-data", "",
		"Optional JSON/YAML file replacing the built-in MIG partition profile table.")
	flag.Parse()

	log, err := logger.InitLogger()
	if err != nil {
		os.Exit(1)
	}
	defer logger.SyncLogger()

	reg := registry.NewRegistry()
	if instanceDataPath != "" {
		data, err := config.ReadInstanceProfileData(instanceDataPath)
		if err != nil {
			log.Errorw("unable to load instance capacity data", "path", instanceDataPath, "error", err)
			os.Exit(1)
		}
		reg = reg.WithOverrides(data)
		log.Infow("loaded instance capacity overrides", "path", instanceDataPath, "instanceTypes", reg.Len())
	}

	provider := partition.NewProvider()
	if partitionDataPath != "" {
		data, err := config.ReadPartitionProfileData(partitionDataPath)
		if err != nil {
			log.Errorw("unable to load partition profile data", "path", partitionDataPath, "error", err)
			os.Exit(1)
		}
		provider = partition.NewProviderFromSpec(data)
		log.Infow("loaded partition profile data", "path", partitionDataPath)
	}

	engine, err := quota.NewEngine(reg, provider)
	if err != nil {
		log.Errorw("unable to create resolution engine", "error", err)
		os.Exit(1)
	}

	server := rest.NewServer(engine, provider)
	log.Infow("starting quota allocator", "instanceTypes", reg.Len())
	if err := server.Run(); err != nil {
		log.Errorw("server terminated", "error", err)
		os.Exit(1)
	}
}
