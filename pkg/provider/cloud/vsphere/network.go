/*
Copyright 2024 The Kubenest Authors.

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

package vsphere

import (
	"context"
	"path"
	"strings"

	"github.com/pkg/errors"
)

// NetworkInfo describes a vSphere network.
type NetworkInfo struct {
	Name         string `json:"name"`
	RelativePath string `json:"relativePath"`
	AbsolutePath string `json:"absolutePath"`
	Type         string `json:"type"`
}

// getPossibleVMNetworks returns all networks of the session's datacenter
// that VMs can be attached to.
func getPossibleVMNetworks(ctx context.Context, session *Session) ([]NetworkInfo, error) {
	networkRefs, err := session.Finder.NetworkList(ctx, "*")
	if err != nil {
		return nil, errors.Wrap(err, "couldn't retrieve network list")
	}

	networkRootPath := path.Join("/", session.Datacenter.Name(), "network")

	var infos []NetworkInfo
	for _, networkRef := range networkRefs {
		inventoryPath := networkRef.GetInventoryPath()
		infos = append(infos, NetworkInfo{
			Name:         path.Base(inventoryPath),
			RelativePath: strings.TrimPrefix(inventoryPath, networkRootPath+"/"),
			AbsolutePath: inventoryPath,
			Type:         networkRef.Reference().Type,
		})
	}

	return infos, nil
}
