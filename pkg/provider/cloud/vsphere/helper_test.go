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
	"crypto/tls"
	"net/url"
	"strings"
	"testing"

	"github.com/vmware/govmomi/simulator"
	_ "github.com/vmware/govmomi/vapi/simulator"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	kubenestv1 "github.com/kubenest/kubenest/apis/v1"
)

// simulatorContext bundles a running vcsim instance with a datacenter spec
// and credentials pointing at it.
type simulatorContext struct {
	model    *simulator.Model
	server   *simulator.Server
	dc       *kubenestv1.DatacenterSpecVSphere
	username string
	password string
}

// newSimulator starts a vCenter simulator with the VPX inventory and the
// vAPI endpoints required for tagging. Cleanup is registered on t.
func newSimulator(t *testing.T) *simulatorContext {
	t.Helper()

	model := simulator.VPX()
	if err := model.Create(); err != nil {
		t.Fatalf("failed to create simulator model: %v", err)
	}
	model.Service.TLS = new(tls.Config)
	model.Service.RegisterEndpoints = true
	// vcsim accepts any non-empty credentials unless the listen URL carries a
	// non-default user, so set one to make bad-credential logins fail.
	model.Service.Listen = &url.URL{User: url.UserPassword("testadmin", "testsecret")}

	server := model.Service.NewServer()
	t.Cleanup(func() {
		server.Close()
		model.Remove()
	})

	password, _ := server.URL.User.Password()
	return &simulatorContext{
		model:  model,
		server: server,
		dc: &kubenestv1.DatacenterSpecVSphere{
			Endpoint:      strings.TrimSuffix(server.URL.String(), "/sdk"),
			Datacenter:    "DC0",
			AllowInsecure: true,
		},
		username: server.URL.User.Username(),
		password: password,
	}
}

func testCluster(name string) *kubenestv1.Cluster {
	return &kubenestv1.Cluster{
		ObjectMeta: metav1.ObjectMeta{Name: name},
		Spec: kubenestv1.ClusterSpec{
			Cloud: kubenestv1.CloudSpec{
				DatacenterName: "vsphere-test",
				VSphere:        &kubenestv1.VSphereCloudSpec{},
			},
		},
	}
}

// inMemoryUpdater mimics the atomic cluster updater against a single
// in-memory object. Set failNext to simulate a persistence failure.
type inMemoryUpdater struct {
	cluster  *kubenestv1.Cluster
	failNext error
}

func (u *inMemoryUpdater) update(_ context.Context, _ string, modify func(*kubenestv1.Cluster)) (*kubenestv1.Cluster, error) {
	if u.failNext != nil {
		err := u.failNext
		u.failNext = nil
		return nil, err
	}
	modify(u.cluster)
	return u.cluster, nil
}
