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

package v1

// Datacenter is an operator-provided definition of a target infrastructure
// location clusters can be scheduled to.
type Datacenter struct {
	Spec DatacenterSpec `json:"spec"`
}

// DatacenterSpec configures a datacenter. Exactly one provider field is set.
type DatacenterSpec struct {
	// +optional
	VSphere *DatacenterSpecVSphere `json:"vsphere,omitempty"`
}

// DatacenterSpecVSphere describes a vSphere datacenter.
type DatacenterSpecVSphere struct {
	// Endpoint is the vCenter URL, e.g. "https://vcenter.example.com".
	Endpoint string `json:"endpoint"`

	// Datacenter is the name of the vCenter datacenter object to use.
	Datacenter string `json:"datacenter"`

	// AllowInsecure disables certificate validation against the endpoint.
	// +optional
	AllowInsecure bool `json:"allowInsecure,omitempty"`

	// DefaultDatastore is used when a cluster does not configure a
	// datastore or datastore cluster of its own.
	// +optional
	DefaultDatastore string `json:"defaultDatastore,omitempty"`

	// RootPath overrides the inventory folder below which per-cluster VM
	// folders are created. Defaults to "/{Datacenter}/vm".
	// +optional
	RootPath string `json:"rootPath,omitempty"`

	// InfraManagementUser holds datacenter-wide credentials that, when
	// fully specified, take precedence over any cluster-level credentials.
	// +optional
	InfraManagementUser *User `json:"infraManagementUser,omitempty"`
}
