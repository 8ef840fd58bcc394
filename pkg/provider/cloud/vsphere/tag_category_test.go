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
	"github.com/vmware/govmomi/vapi/tags"

	kubenestv1 "github.com/kubenest/kubenest/apis/v1"
)

func TestCreateTagCategory(t *testing.T) {
	g := NewWithT(t)
	ctx := context.Background()
	sim := newSimulator(t)

	restSession, err := newRESTSession(ctx, sim.dc, sim.username, sim.password, nil)
	g.Expect(err).NotTo(HaveOccurred())
	defer restSession.Logout(ctx)

	cluster := testCluster("tagged")

	categoryID, err := createTagCategory(ctx, restSession, cluster)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(categoryID).NotTo(BeEmpty())

	tagManager := tags.NewManager(restSession.Client)
	category, err := tagManager.GetCategory(ctx, categoryID)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(category.Name).To(Equal("cluster-tagged"))
	g.Expect(category.Cardinality).To(Equal("MULTIPLE"))
	g.Expect(category.AssociableTypes).To(ConsistOf("VirtualMachine"))

	// A second attempt, for example after a failed persistence step, returns
	// the existing category instead of failing on the name collision.
	secondID, err := createTagCategory(ctx, restSession, cluster)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(secondID).To(Equal(categoryID))
}

func TestDeleteTagCategory(t *testing.T) {
	g := NewWithT(t)
	ctx := context.Background()
	sim := newSimulator(t)

	restSession, err := newRESTSession(ctx, sim.dc, sim.username, sim.password, nil)
	g.Expect(err).NotTo(HaveOccurred())
	defer restSession.Logout(ctx)

	cluster := testCluster("tagged")

	categoryID, err := createTagCategory(ctx, restSession, cluster)
	g.Expect(err).NotTo(HaveOccurred())
	cluster.Spec.Cloud.VSphere.TagCategory = kubenestv1.NewProvisionedValue(categoryID)

	g.Expect(deleteTagCategory(ctx, restSession, cluster)).To(Succeed())

	tagManager := tags.NewManager(restSession.Client)
	categories, err := tagManager.GetCategories(ctx)
	g.Expect(err).NotTo(HaveOccurred())
	for _, category := range categories {
		g.Expect(category.ID).NotTo(Equal(categoryID))
	}

	// Deleting an already deleted category is a no-op.
	g.Expect(deleteTagCategory(ctx, restSession, cluster)).To(Succeed())

	// Without a recorded category there is nothing to delete.
	g.Expect(deleteTagCategory(ctx, restSession, testCluster("untagged"))).To(Succeed())
}
