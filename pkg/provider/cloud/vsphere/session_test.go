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
	"testing"

	. "github.com/onsi/gomega"

	kubenestv1 "github.com/kubenest/kubenest/apis/v1"
)

func TestNewSession(t *testing.T) {
	g := NewWithT(t)
	ctx := context.Background()
	sim := newSimulator(t)

	session, err := newSession(ctx, sim.dc, sim.username, sim.password, nil)
	g.Expect(err).NotTo(HaveOccurred())
	defer session.Logout(ctx)

	g.Expect(session.Datacenter.Name()).To(Equal("DC0"))

	// The finder is scoped to the datacenter: relative lookups resolve
	// without an absolute path.
	_, err = session.Finder.Folder(ctx, "vm")
	g.Expect(err).NotTo(HaveOccurred())
}

func TestNewSessionBadCredentials(t *testing.T) {
	g := NewWithT(t)
	ctx := context.Background()
	sim := newSimulator(t)

	_, err := newSession(ctx, sim.dc, sim.username, "wrong-password", nil)
	g.Expect(err).To(HaveOccurred())

	var authErr *AuthenticationError
	g.Expect(err).To(BeAssignableToTypeOf(authErr))
}

func TestNewSessionUnknownDatacenter(t *testing.T) {
	g := NewWithT(t)
	ctx := context.Background()
	sim := newSimulator(t)

	dc := &kubenestv1.DatacenterSpecVSphere{
		Endpoint:      sim.dc.Endpoint,
		Datacenter:    "no-such-dc",
		AllowInsecure: true,
	}

	_, err := newSession(ctx, dc, sim.username, sim.password, nil)
	g.Expect(err).To(HaveOccurred())

	var notFoundErr *NotFoundError
	g.Expect(err).To(BeAssignableToTypeOf(notFoundErr))
	g.Expect(err.(*NotFoundError).Kind).To(Equal("datacenter"))
}

func TestNewRESTSession(t *testing.T) {
	g := NewWithT(t)
	ctx := context.Background()
	sim := newSimulator(t)

	restSession, err := newRESTSession(ctx, sim.dc, sim.username, sim.password, nil)
	g.Expect(err).NotTo(HaveOccurred())
	restSession.Logout(ctx)

	_, err = newRESTSession(ctx, sim.dc, sim.username, "wrong-password", nil)
	g.Expect(err).To(HaveOccurred())

	var authErr *AuthenticationError
	g.Expect(err).To(BeAssignableToTypeOf(authErr))
}

func TestNewVimClientBadEndpoint(t *testing.T) {
	g := NewWithT(t)
	ctx := context.Background()

	dc := &kubenestv1.DatacenterSpecVSphere{
		Endpoint:   "https://127.0.0.1:1",
		Datacenter: "DC0",
	}

	_, err := newVimClient(ctx, dc, nil)
	g.Expect(err).To(HaveOccurred())

	var connErr *ConnectionError
	g.Expect(err).To(BeAssignableToTypeOf(connErr))
}
