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
	"path"

	"github.com/pkg/errors"

	kubenestv1 "github.com/kubenest/kubenest/apis/v1"
)

// Folder represents a vSphere inventory folder.
type Folder struct {
	// Path is the absolute inventory path.
	Path string
}

// getVMRootPath returns the inventory folder below which per-cluster VM
// folders are created. Each datacenter's VM root is "/{datacenter}/vm"; an
// explicit RootPath override wins entirely.
func getVMRootPath(dc *kubenestv1.DatacenterSpecVSphere) string {
	rootPath := path.Join("/", dc.Datacenter, "vm")
	if dc.RootPath != "" {
		rootPath = path.Clean(dc.RootPath)
	}
	return rootPath
}

// createVMFolder creates the folder at fullPath, including any missing
// parent folders. Creating an already existing folder is a no-op, which
// makes repeated provisioning attempts safe.
func createVMFolder(ctx context.Context, session *Session, fullPath string) error {
	fullPath = path.Clean(fullPath)

	if _, err := session.Finder.Folder(ctx, fullPath); err == nil {
		return nil
	} else if !isNotFound(err) {
		return errors.Wrapf(err, "failed to look up folder %q", fullPath)
	}

	parentPath, name := path.Split(fullPath)
	parentPath = path.Clean(parentPath)
	if parentPath == "/" || parentPath == "." {
		return errors.Errorf("cannot create folder %q: it has no parent folder", fullPath)
	}

	parent, err := session.Finder.Folder(ctx, parentPath)
	if err != nil {
		if !isNotFound(err) {
			return errors.Wrapf(err, "failed to look up folder %q", parentPath)
		}
		if err := createVMFolder(ctx, session, parentPath); err != nil {
			return err
		}
		if parent, err = session.Finder.Folder(ctx, parentPath); err != nil {
			return errors.Wrapf(err, "failed to look up folder %q after creating it", parentPath)
		}
	}

	if _, err := parent.CreateFolder(ctx, name); err != nil {
		return errors.Wrapf(err, "failed to create folder %q under %q", name, parentPath)
	}
	return nil
}

// deleteVMFolder deletes the folder at fullPath together with its contents.
// Deleting an absent folder is a no-op.
func deleteVMFolder(ctx context.Context, session *Session, fullPath string) error {
	folder, err := session.Finder.Folder(ctx, path.Clean(fullPath))
	if err != nil {
		if isNotFound(err) {
			return nil
		}
		return errors.Wrapf(err, "failed to look up folder %q", fullPath)
	}

	task, err := folder.Destroy(ctx)
	if err != nil {
		return errors.Wrapf(err, "failed to trigger deletion of folder %q", fullPath)
	}
	if err := task.Wait(ctx); err != nil {
		return errors.Wrapf(err, "failed to delete folder %q", fullPath)
	}
	return nil
}
