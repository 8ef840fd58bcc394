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

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// ClusterSpec defines the desired state of a managed cluster.
type ClusterSpec struct {
	// Cloud contains the cloud-provider configuration for this cluster.
	Cloud CloudSpec `json:"cloud"`
}

// CloudSpec stores the cloud-provider-specific configuration of a cluster.
// Exactly one provider field is set.
type CloudSpec struct {
	// DatacenterName references the datacenter definition this cluster is
	// scheduled to.
	DatacenterName string `json:"dc"`

	// +optional
	VSphere *VSphereCloudSpec `json:"vsphere,omitempty"`
}

// VSphereCloudSpec is the vSphere-specific part of a cluster's cloud
// configuration.
type VSphereCloudSpec struct {
	// Username to authenticate against the vCenter endpoint.
	// +optional
	Username string `json:"username,omitempty"`

	// Password to authenticate against the vCenter endpoint.
	// +optional
	Password string `json:"password,omitempty"`

	// InfraManagementUser holds dedicated credentials for managing the
	// vCenter-side infrastructure of this cluster. Takes precedence over
	// the inline Username/Password.
	// +optional
	InfraManagementUser *User `json:"infraManagementUser,omitempty"`

	// CredentialsReference points to a secret holding credential keys that
	// are consulted when neither the inline fields nor the management user
	// provide a value.
	// +optional
	CredentialsReference *GlobalSecretKeySelector `json:"credentialsReference,omitempty"`

	// Datastore to use for the cluster's volumes. Mutually exclusive with
	// DatastoreCluster.
	// +optional
	Datastore string `json:"datastore,omitempty"`

	// DatastoreCluster to use for the cluster's volumes. Mutually exclusive
	// with Datastore.
	// +optional
	DatastoreCluster string `json:"datastoreCluster,omitempty"`

	// ResourcePool the cluster's VMs are placed into.
	// +optional
	ResourcePool string `json:"resourcePool,omitempty"`

	// Folder is the VM folder provisioned for this cluster. Absent until
	// the cloud provider has created it; its value is the absolute
	// inventory path.
	// +optional
	Folder ProvisionedValue `json:"folder,omitempty"`

	// TagCategory is the default tag category provisioned for this
	// cluster. Absent until the cloud provider has created it; its value
	// is the vCenter category ID.
	// +optional
	TagCategory ProvisionedValue `json:"tagCategory,omitempty"`

	// NodePortsAllowedIPRanges lists the CIDR ranges that are allowed to
	// reach NodePort services.
	// +optional
	NodePortsAllowedIPRanges *NetworkRanges `json:"nodePortsAllowedIPRanges,omitempty"`
}

// ProvisionedValue records the identifier of an external resource that is
// provisioned on behalf of a cluster. The zero value means the resource is
// absent; this keeps "never provisioned" distinct from an empty identifier.
type ProvisionedValue struct {
	// Value identifies the resource, e.g. a folder inventory path or a tag
	// category ID. Only meaningful while Provisioned is true.
	// +optional
	Value string `json:"value,omitempty"`

	// Provisioned is set once the resource exists on the provider side.
	// +optional
	Provisioned bool `json:"provisioned,omitempty"`
}

// NewProvisionedValue returns a ProvisionedValue marking the resource as
// existing under the given identifier.
func NewProvisionedValue(value string) ProvisionedValue {
	return ProvisionedValue{Value: value, Provisioned: true}
}

// Get returns the identifier and whether the resource is provisioned.
func (p ProvisionedValue) Get() (string, bool) {
	return p.Value, p.Provisioned
}

// User holds a username/password pair.
type User struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// GlobalSecretKeySelector references a secret that stores credential keys.
type GlobalSecretKeySelector struct {
	// Name of the secret.
	Name string `json:"name"`
	// Namespace of the secret.
	Namespace string `json:"namespace"`
}

// NetworkRanges represents a list of CIDR blocks.
type NetworkRanges struct {
	CIDRBlocks []string `json:"cidrBlocks"`
}

// +kubebuilder:object:root=true
// +kubebuilder:resource:path=clusters,scope=Cluster
// +kubebuilder:subresource:status

// Cluster is the Schema for the managed cluster API.
type Cluster struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec ClusterSpec `json:"spec,omitempty"`
}

// +kubebuilder:object:root=true

// ClusterList contains a list of Cluster.
type ClusterList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []Cluster `json:"items"`
}

func init() {
	SchemeBuilder.Register(&Cluster{}, &ClusterList{})
}
