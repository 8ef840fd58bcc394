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

// Package vsphere implements the vSphere cloud provider: it provisions and
// tears down the vCenter-side resources backing a cluster (VM folder,
// default tag category) and validates cloud specs against a live vCenter.
//
// All lifecycle operations are re-entrant. Intermediate state is persisted
// through the caller-supplied atomic updater after each successful external
// side effect, never before, so a crashed or failed attempt can always be
// resumed by re-invocation.
package vsphere

import (
	"context"
	"crypto/x509"
	"fmt"
	"path"
	"strings"

	"github.com/pkg/errors"
	"github.com/vmware/govmomi/object"
	netutils "k8s.io/utils/net"
	ctrl "sigs.k8s.io/controller-runtime"

	kubenestv1 "github.com/kubenest/kubenest/apis/v1"
	kuberneteshelper "github.com/kubenest/kubenest/pkg/kubernetes"
	"github.com/kubenest/kubenest/pkg/provider"
)

const (
	// folderCleanupFinalizer instructs the deletion of the per-cluster VM folder.
	folderCleanupFinalizer kuberneteshelper.Finalizer = "kubenest.io/cleanup-vsphere-folder"
	// tagCategoryCleanupFinalizer instructs the deletion of the default tag category.
	tagCategoryCleanupFinalizer kuberneteshelper.Finalizer = "kubenest.io/cleanup-vsphere-tag-category"

	defaultCategory = "cluster"
)

// Provider implements the vSphere cloud provider.
type Provider struct {
	dc                *kubenestv1.DatacenterSpecVSphere
	secretKeySelector provider.SecretKeySelectorValueFunc
	caBundle          *x509.CertPool
}

// NewCloudProvider creates a new vSphere provider.
func NewCloudProvider(dc *kubenestv1.Datacenter, secretKeyGetter provider.SecretKeySelectorValueFunc, caBundle *x509.CertPool) (*Provider, error) {
	if dc.Spec.VSphere == nil {
		return nil, &ConfigurationError{Message: "datacenter is not a vSphere datacenter"}
	}
	return &Provider{
		dc:                dc.Spec.VSphere,
		secretKeySelector: secretKeyGetter,
		caBundle:          caBundle,
	}, nil
}

var _ provider.CloudProvider = &Provider{}

// InitializeCloudProvider provisions the VM folder and the default tag
// category for the cluster. Each resource is handled independently and
// guarded by its provisioning state, so a partially initialized cluster
// resumes exactly where the previous attempt stopped.
func (v *Provider) InitializeCloudProvider(ctx context.Context, cluster *kubenestv1.Cluster, update provider.ClusterUpdater) (*kubenestv1.Cluster, error) {
	username, password, err := GetCredentialsForCluster(cluster.Spec.Cloud, v.secretKeySelector, v.dc)
	if err != nil {
		return nil, err
	}

	if _, provisioned := cluster.Spec.Cloud.VSphere.Folder.Get(); !provisioned {
		cluster, err = v.provisionFolder(ctx, cluster, username, password, update)
		if err != nil {
			return nil, err
		}
	}

	if _, provisioned := cluster.Spec.Cloud.VSphere.TagCategory.Get(); !provisioned {
		cluster, err = v.provisionTagCategory(ctx, cluster, username, password, update)
		if err != nil {
			return nil, err
		}
	}

	return cluster, nil
}

// provisionFolder creates a dedicated VM folder for the cluster below the
// datacenter's VM root path and records it on the cluster together with the
// matching cleanup finalizer.
func (v *Provider) provisionFolder(ctx context.Context, cluster *kubenestv1.Cluster, username, password string, update provider.ClusterUpdater) (*kubenestv1.Cluster, error) {
	session, err := newSession(ctx, v.dc, username, password, v.caBundle)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create vCenter session")
	}
	defer session.Logout(ctx)

	clusterFolder := path.Join(getVMRootPath(v.dc), cluster.Name)
	if err := createVMFolder(ctx, session, clusterFolder); err != nil {
		return nil, errors.Wrapf(err, "failed to create the VM folder %q", clusterFolder)
	}
	ctrl.LoggerFrom(ctx).V(4).Info("Created VM folder", "cluster", cluster.Name, "folder", clusterFolder)

	cluster, err = update(ctx, cluster.Name, func(cluster *kubenestv1.Cluster) {
		kuberneteshelper.AddFinalizer(cluster, folderCleanupFinalizer)
		cluster.Spec.Cloud.VSphere.Folder = kubenestv1.NewProvisionedValue(clusterFolder)
	})
	if err != nil {
		// The folder stays in place; the next attempt's idempotent create
		// skips straight to retrying this update.
		return nil, &PersistenceError{Err: err}
	}
	return cluster, nil
}

// provisionTagCategory creates the default tag category for the cluster and
// records its ID together with the matching cleanup finalizer.
func (v *Provider) provisionTagCategory(ctx context.Context, cluster *kubenestv1.Cluster, username, password string, update provider.ClusterUpdater) (*kubenestv1.Cluster, error) {
	restSession, err := newRESTSession(ctx, v.dc, username, password, v.caBundle)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create vCenter REST session")
	}
	defer restSession.Logout(ctx)

	categoryID, err := createTagCategory(ctx, restSession, cluster)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create tag category")
	}
	ctrl.LoggerFrom(ctx).V(4).Info("Created tag category", "cluster", cluster.Name, "categoryID", categoryID)

	cluster, err = update(ctx, cluster.Name, func(cluster *kubenestv1.Cluster) {
		kuberneteshelper.AddFinalizer(cluster, tagCategoryCleanupFinalizer)
		cluster.Spec.Cloud.VSphere.TagCategory = kubenestv1.NewProvisionedValue(categoryID)
	})
	if err != nil {
		return nil, &PersistenceError{Err: err}
	}
	return cluster, nil
}

// CleanUpCloudProvider reverses the side effects tracked by the cleanup
// finalizers. A finalizer is removed, and the recorded value cleared, only
// after the corresponding resource is confirmed deleted or absent; a failed
// deletion keeps the finalizer so the cluster is not considered deletable
// until a later attempt succeeds.
func (v *Provider) CleanUpCloudProvider(ctx context.Context, cluster *kubenestv1.Cluster, update provider.ClusterUpdater) (*kubenestv1.Cluster, error) {
	username, password, err := GetCredentialsForCluster(cluster.Spec.Cloud, v.secretKeySelector, v.dc)
	if err != nil {
		return nil, err
	}

	session, err := newSession(ctx, v.dc, username, password, v.caBundle)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create vCenter session")
	}
	defer session.Logout(ctx)

	restSession, err := newRESTSession(ctx, v.dc, username, password, v.caBundle)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create vCenter REST session")
	}
	defer restSession.Logout(ctx)

	if kuberneteshelper.HasFinalizer(cluster, folderCleanupFinalizer) {
		if folderPath, ok := cluster.Spec.Cloud.VSphere.Folder.Get(); ok {
			if err := deleteVMFolder(ctx, session, folderPath); err != nil {
				return nil, errors.Wrapf(err, "failed to delete the VM folder of cluster %s", cluster.Name)
			}
			ctrl.LoggerFrom(ctx).V(4).Info("Deleted VM folder", "cluster", cluster.Name, "folder", folderPath)
		}
		cluster, err = update(ctx, cluster.Name, func(cluster *kubenestv1.Cluster) {
			kuberneteshelper.RemoveFinalizer(cluster, folderCleanupFinalizer)
			cluster.Spec.Cloud.VSphere.Folder = kubenestv1.ProvisionedValue{}
		})
		if err != nil {
			return nil, &PersistenceError{Err: err}
		}
	}

	if kuberneteshelper.HasFinalizer(cluster, tagCategoryCleanupFinalizer) {
		if err := deleteTagCategory(ctx, restSession, cluster); err != nil {
			return nil, errors.Wrapf(err, "failed to delete the tag category of cluster %s", cluster.Name)
		}
		cluster, err = update(ctx, cluster.Name, func(cluster *kubenestv1.Cluster) {
			kuberneteshelper.RemoveFinalizer(cluster, tagCategoryCleanupFinalizer)
			cluster.Spec.Cloud.VSphere.TagCategory = kubenestv1.ProvisionedValue{}
		})
		if err != nil {
			return nil, &PersistenceError{Err: err}
		}
	}

	return cluster, nil
}

// DefaultCloudSpec adds defaults to the cloud spec.
func (v *Provider) DefaultCloudSpec(_ context.Context, _ *kubenestv1.CloudSpec) error {
	return nil
}

// ValidateCloudSpec checks that a vSphere session can be established for
// the spec and that every configured inventory name resolves. It performs
// no mutation.
func (v *Provider) ValidateCloudSpec(ctx context.Context, spec kubenestv1.CloudSpec) error {
	if spec.VSphere == nil {
		return &ConfigurationError{Message: "not a vSphere cloud spec"}
	}

	username, password, err := GetCredentialsForCluster(spec, v.secretKeySelector, v.dc)
	if err != nil {
		return err
	}

	if v.dc.DefaultDatastore == "" && spec.VSphere.DatastoreCluster == "" && spec.VSphere.Datastore == "" {
		return &ConfigurationError{Message: "no default datastore provided at datacenter level nor datastore/datastore cluster at cluster level"}
	}
	if spec.VSphere.DatastoreCluster != "" && spec.VSphere.Datastore != "" {
		return &ConfigurationError{Message: "either datastore or datastore cluster can be selected"}
	}
	if ranges := spec.VSphere.NodePortsAllowedIPRanges; ranges != nil {
		if _, err := netutils.ParseCIDRs(ranges.CIDRBlocks); err != nil {
			return &ConfigurationError{Message: fmt.Sprintf("invalid nodePortsAllowedIPRanges: %v", err)}
		}
	}

	session, err := newSession(ctx, v.dc, username, password, v.caBundle)
	if err != nil {
		return errors.Wrap(err, "failed to create vCenter session")
	}
	defer session.Logout(ctx)

	if ds := v.dc.DefaultDatastore; ds != "" {
		if _, err := session.Finder.Datastore(ctx, ds); err != nil {
			return &NotFoundError{Kind: "default datastore", Name: ds, Err: err}
		}
	}

	if rp := spec.VSphere.ResourcePool; rp != "" {
		if _, err := session.Finder.ResourcePool(ctx, rp); err != nil {
			return &NotFoundError{Kind: "resource pool", Name: rp, Err: err}
		}
	}

	if dsc := spec.VSphere.DatastoreCluster; dsc != "" {
		if _, err := session.Finder.DatastoreCluster(ctx, dsc); err != nil {
			return &NotFoundError{Kind: "datastore cluster", Name: dsc, Err: err}
		}
	}

	if ds := spec.VSphere.Datastore; ds != "" {
		if _, err := session.Finder.Datastore(ctx, ds); err != nil {
			return &NotFoundError{Kind: "datastore", Name: ds, Err: err}
		}
	}

	return nil
}

// ValidateCloudSpecUpdate verifies whether an update of the cloud spec is
// permitted. Relocating the VM folder after provisioning is not supported.
func (v *Provider) ValidateCloudSpecUpdate(_ context.Context, oldSpec kubenestv1.CloudSpec, newSpec kubenestv1.CloudSpec) error {
	if oldSpec.VSphere == nil || newSpec.VSphere == nil {
		return &ConfigurationError{Message: "'vsphere' spec is empty"}
	}

	if oldFolder, ok := oldSpec.VSphere.Folder.Get(); ok {
		newFolder, _ := newSpec.VSphere.Folder.Get()
		if oldFolder != newFolder {
			return &ConfigurationError{Message: fmt.Sprintf("updating the vSphere folder is not supported (was %q, updated to %q)", oldFolder, newFolder)}
		}
	}

	return nil
}

// GetNetworks returns the networks of the datacenter that VMs can be
// attached to.
func GetNetworks(ctx context.Context, dc *kubenestv1.DatacenterSpecVSphere, username, password string, caBundle *x509.CertPool) ([]NetworkInfo, error) {
	session, err := newSession(ctx, dc, username, password, caBundle)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create vCenter session")
	}
	defer session.Logout(ctx)

	return getPossibleVMNetworks(ctx, session)
}

// GetVMFolders returns the inventory folders below the datacenter's VM root
// path.
func GetVMFolders(ctx context.Context, dc *kubenestv1.DatacenterSpecVSphere, username, password string, caBundle *x509.CertPool) ([]Folder, error) {
	session, err := newSession(ctx, dc, username, password, caBundle)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create vCenter session")
	}
	defer session.Logout(ctx)

	// List every folder and filter afterwards. The API lists only the first
	// level when given a path and recurses only for "*", so the filtering
	// cannot happen server-side.
	folderRefs, err := session.Finder.FolderList(ctx, "*")
	if err != nil {
		return nil, errors.Wrap(err, "couldn't retrieve folder list")
	}

	rootPath := getVMRootPath(dc)
	var folders []Folder
	for _, folderRef := range folderRefs {
		// The prefix match alone would also catch siblings like
		// "{rootPath}abc"; the boundary has to be an exact match or a path
		// separator.
		if folderRef.InventoryPath != rootPath && !strings.HasPrefix(folderRef.InventoryPath, rootPath+"/") {
			continue
		}
		folders = append(folders, Folder{Path: folderRef.InventoryPath})
	}

	return folders, nil
}

// GetDatastoreList returns the datastores of the datacenter.
func GetDatastoreList(ctx context.Context, dc *kubenestv1.DatacenterSpecVSphere, username, password string, caBundle *x509.CertPool) ([]*object.Datastore, error) {
	session, err := newSession(ctx, dc, username, password, caBundle)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create vCenter session")
	}
	defer session.Logout(ctx)

	datastoreList, err := session.Finder.DatastoreList(ctx, "*")
	if err != nil {
		return nil, errors.Wrap(err, "couldn't retrieve datastore list")
	}

	return datastoreList, nil
}
