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
	"strings"
	"testing"

	. "github.com/onsi/gomega"
)

func TestGetNetworks(t *testing.T) {
	g := NewWithT(t)
	ctx := context.Background()
	sim := newSimulator(t)

	networks, err := GetNetworks(ctx, sim.dc, sim.username, sim.password, nil)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(networks).NotTo(BeEmpty())

	for _, network := range networks {
		g.Expect(network.Name).NotTo(BeEmpty())
		g.Expect(network.Type).NotTo(BeEmpty())
		g.Expect(strings.HasPrefix(network.AbsolutePath, "/DC0/network/")).To(BeTrue())
		g.Expect(network.AbsolutePath).To(Equal("/DC0/network/" + network.RelativePath))
	}

	// The standard simulator inventory contains the default VM network.
	var names []string
	for _, network := range networks {
		names = append(names, network.Name)
	}
	g.Expect(names).To(ContainElement("VM Network"))
}
