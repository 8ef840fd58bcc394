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

func TestGetVMRootPath(t *testing.T) {
	tests := []struct {
		name string
		dc   *kubenestv1.DatacenterSpecVSphere
		want string
	}{
		{
			name: "default root below the datacenter",
			dc:   &kubenestv1.DatacenterSpecVSphere{Datacenter: "DC0"},
			want: "/DC0/vm",
		},
		{
			name: "explicit root path wins",
			dc:   &kubenestv1.DatacenterSpecVSphere{Datacenter: "DC0", RootPath: "/DC0/vm/kubenest"},
			want: "/DC0/vm/kubenest",
		},
		{
			name: "root path is cleaned",
			dc:   &kubenestv1.DatacenterSpecVSphere{Datacenter: "DC0", RootPath: "/DC0/vm/kubenest/"},
			want: "/DC0/vm/kubenest",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewWithT(t)
			g.Expect(getVMRootPath(tc.dc)).To(Equal(tc.want))
		})
	}
}

func TestCreateVMFolder(t *testing.T) {
	g := NewWithT(t)
	ctx := context.Background()
	sim := newSimulator(t)

	session, err := newSession(ctx, sim.dc, sim.username, sim.password, nil)
	g.Expect(err).NotTo(HaveOccurred())
	defer session.Logout(ctx)

	g.Expect(createVMFolder(ctx, session, "/DC0/vm/test-cluster")).To(Succeed())
	_, err = session.Finder.Folder(ctx, "/DC0/vm/test-cluster")
	g.Expect(err).NotTo(HaveOccurred())

	// Creating the same folder again must not fail.
	g.Expect(createVMFolder(ctx, session, "/DC0/vm/test-cluster")).To(Succeed())

	// Missing parents are created recursively.
	g.Expect(createVMFolder(ctx, session, "/DC0/vm/nested/deeper/test-cluster")).To(Succeed())
	_, err = session.Finder.Folder(ctx, "/DC0/vm/nested/deeper/test-cluster")
	g.Expect(err).NotTo(HaveOccurred())

	// A folder directly below the inventory root has no parent folder.
	g.Expect(createVMFolder(ctx, session, "/orphan")).NotTo(Succeed())
}

func TestDeleteVMFolder(t *testing.T) {
	g := NewWithT(t)
	ctx := context.Background()
	sim := newSimulator(t)

	session, err := newSession(ctx, sim.dc, sim.username, sim.password, nil)
	g.Expect(err).NotTo(HaveOccurred())
	defer session.Logout(ctx)

	g.Expect(createVMFolder(ctx, session, "/DC0/vm/doomed")).To(Succeed())
	g.Expect(deleteVMFolder(ctx, session, "/DC0/vm/doomed")).To(Succeed())

	_, err = session.Finder.Folder(ctx, "/DC0/vm/doomed")
	g.Expect(isNotFound(err)).To(BeTrue())

	// Deleting an absent folder is a no-op.
	g.Expect(deleteVMFolder(ctx, session, "/DC0/vm/doomed")).To(Succeed())
}

func TestGetVMFolders(t *testing.T) {
	g := NewWithT(t)
	ctx := context.Background()
	sim := newSimulator(t)

	session, err := newSession(ctx, sim.dc, sim.username, sim.password, nil)
	g.Expect(err).NotTo(HaveOccurred())

	g.Expect(createVMFolder(ctx, session, "/DC0/vm/kubenest")).To(Succeed())
	g.Expect(createVMFolder(ctx, session, "/DC0/vm/kubenest/child")).To(Succeed())
	// A sibling sharing the root path as a name prefix must not leak into
	// the result.
	g.Expect(createVMFolder(ctx, session, "/DC0/vm/kubenest-other")).To(Succeed())
	session.Logout(ctx)

	scopedDC := &kubenestv1.DatacenterSpecVSphere{
		Endpoint:      sim.dc.Endpoint,
		Datacenter:    sim.dc.Datacenter,
		AllowInsecure: true,
		RootPath:      "/DC0/vm/kubenest",
	}

	folders, err := GetVMFolders(ctx, scopedDC, sim.username, sim.password, nil)
	g.Expect(err).NotTo(HaveOccurred())

	var paths []string
	for _, folder := range folders {
		paths = append(paths, folder.Path)
	}
	g.Expect(paths).To(ConsistOf("/DC0/vm/kubenest", "/DC0/vm/kubenest/child"))
}
