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

// Package provider defines the contracts between cloud providers and the
// reconciler that drives them.
package provider

import (
	"context"

	kubenestv1 "github.com/kubenest/kubenest/apis/v1"
)

// ClusterUpdater applies a mutation to the latest persisted version of the
// named cluster and returns the resulting object. Implementations must
// provide read-modify-write atomicity; conflict retry is their concern, not
// the caller's.
type ClusterUpdater func(ctx context.Context, name string, modify func(*kubenestv1.Cluster)) (*kubenestv1.Cluster, error)

// SecretKeySelectorValueFunc returns the value stored under key in the
// referenced secret.
type SecretKeySelectorValueFunc func(configVar *kubenestv1.GlobalSecretKeySelector, key string) (string, error)

// CloudProvider is the lifecycle contract every cloud provider implements.
// All operations are synchronous, re-entrant and safe to re-invoke after
// partial failure; retries are driven by the caller.
type CloudProvider interface {
	// InitializeCloudProvider sets up the cloud-provider-side resources
	// backing the cluster and records them, together with matching cleanup
	// finalizers, through update.
	InitializeCloudProvider(ctx context.Context, cluster *kubenestv1.Cluster, update ClusterUpdater) (*kubenestv1.Cluster, error)

	// CleanUpCloudProvider reverses the side effects tracked by cleanup
	// finalizers and removes the finalizers through update.
	CleanUpCloudProvider(ctx context.Context, cluster *kubenestv1.Cluster, update ClusterUpdater) (*kubenestv1.Cluster, error)

	// DefaultCloudSpec adds provider defaults to the spec.
	DefaultCloudSpec(ctx context.Context, spec *kubenestv1.CloudSpec) error

	// ValidateCloudSpec checks that the spec is usable against the live
	// provider endpoint. It never mutates anything.
	ValidateCloudSpec(ctx context.Context, spec kubenestv1.CloudSpec) error

	// ValidateCloudSpecUpdate checks that the transition from oldSpec to
	// newSpec is permitted. Pure function, no I/O.
	ValidateCloudSpecUpdate(ctx context.Context, oldSpec kubenestv1.CloudSpec, newSpec kubenestv1.CloudSpec) error
}
