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

// Package kubernetes provides the concrete, API-server-backed
// implementations of the provider collaborator contracts.
package kubernetes

import (
	"context"

	"github.com/pkg/errors"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/client-go/util/retry"
	ctrlruntimeclient "sigs.k8s.io/controller-runtime/pkg/client"

	kubenestv1 "github.com/kubenest/kubenest/apis/v1"
	"github.com/kubenest/kubenest/pkg/provider"
)

// NewClusterUpdater returns a ClusterUpdater that applies mutations through
// the given client. Update conflicts are retried against a freshly fetched
// object, so the modify func must be safe to call more than once.
func NewClusterUpdater(client ctrlruntimeclient.Client) provider.ClusterUpdater {
	return func(ctx context.Context, name string, modify func(*kubenestv1.Cluster)) (*kubenestv1.Cluster, error) {
		cluster := &kubenestv1.Cluster{}
		err := retry.RetryOnConflict(retry.DefaultRetry, func() error {
			if err := client.Get(ctx, types.NamespacedName{Name: name}, cluster); err != nil {
				return err
			}
			modify(cluster)
			return client.Update(ctx, cluster)
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to update cluster %q", name)
		}
		return cluster, nil
	}
}
