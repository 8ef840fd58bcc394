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
	"fmt"

	"github.com/pkg/errors"
	"github.com/vmware/govmomi/vapi/tags"

	kubenestv1 "github.com/kubenest/kubenest/apis/v1"
)

// createTagCategory creates the default tag category for the cluster and
// returns its ID. If a category of the expected name already exists, for
// example because a previous attempt created it but failed to persist the
// ID, its ID is returned instead.
func createTagCategory(ctx context.Context, session *RESTSession, cluster *kubenestv1.Cluster) (string, error) {
	tagManager := tags.NewManager(session.Client)
	name := categoryName(cluster)

	categories, err := tagManager.GetCategories(ctx)
	if err != nil {
		return "", errors.Wrap(err, "failed to list tag categories")
	}
	for _, category := range categories {
		if category.Name == name {
			return category.ID, nil
		}
	}

	categoryID, err := tagManager.CreateCategory(ctx, &tags.Category{
		Name:            name,
		Description:     fmt.Sprintf("Tag category for the VMs of cluster %s", cluster.Name),
		Cardinality:     "MULTIPLE",
		AssociableTypes: []string{"VirtualMachine"},
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to create tag category %q", name)
	}
	return categoryID, nil
}

// deleteTagCategory deletes the tag category recorded on the cluster.
// Deleting an absent category is a no-op.
func deleteTagCategory(ctx context.Context, session *RESTSession, cluster *kubenestv1.Cluster) error {
	categoryID, ok := cluster.Spec.Cloud.VSphere.TagCategory.Get()
	if !ok {
		return nil
	}

	tagManager := tags.NewManager(session.Client)
	categories, err := tagManager.GetCategories(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to list tag categories")
	}

	for i := range categories {
		if categories[i].ID == categoryID {
			if err := tagManager.DeleteCategory(ctx, &categories[i]); err != nil {
				return errors.Wrapf(err, "failed to delete tag category %q", categoryID)
			}
			return nil
		}
	}
	return nil
}

func categoryName(cluster *kubenestv1.Cluster) string {
	return fmt.Sprintf("%s-%s", defaultCategory, cluster.Name)
}
