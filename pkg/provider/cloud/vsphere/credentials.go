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
	kubenestv1 "github.com/kubenest/kubenest/apis/v1"
	"github.com/kubenest/kubenest/pkg/provider"
	"github.com/kubenest/kubenest/pkg/resources"
)

// getUsernameAndPassword resolves username and password independently of
// each other: a cluster may supply the username inline while the password
// comes from the referenced secret.
//
// Precedence per field, highest first:
//   - the cluster's infraManagementUser (only consulted when
//     infraManagementUser is true)
//   - the cluster's inline credentials
//   - the referenced secret, management-user key before plain key
func getUsernameAndPassword(cloud kubenestv1.CloudSpec, secretKeySelector provider.SecretKeySelectorValueFunc, infraManagementUser bool) (username, password string, err error) {
	if infraManagementUser && cloud.VSphere.InfraManagementUser != nil {
		username = cloud.VSphere.InfraManagementUser.Username
		password = cloud.VSphere.InfraManagementUser.Password
	}
	if username == "" {
		username = cloud.VSphere.Username
	}
	if password == "" {
		password = cloud.VSphere.Password
	}

	if username != "" && password != "" {
		return username, password, nil
	}

	if cloud.VSphere.CredentialsReference == nil {
		return "", "", &CredentialsUnavailableError{Reason: "cluster has incomplete inline credentials and no credentialsReference"}
	}

	if username == "" && infraManagementUser {
		username, err = secretKeySelector(cloud.VSphere.CredentialsReference, resources.VsphereInfraManagementUserUsername)
		if err != nil {
			return "", "", &CredentialsUnavailableError{Reason: "failed to read username from secret", Err: err}
		}
	}
	if username == "" {
		username, err = secretKeySelector(cloud.VSphere.CredentialsReference, resources.VsphereUsername)
		if err != nil {
			return "", "", &CredentialsUnavailableError{Reason: "failed to read username from secret", Err: err}
		}
	}

	if password == "" && infraManagementUser {
		password, err = secretKeySelector(cloud.VSphere.CredentialsReference, resources.VsphereInfraManagementUserPassword)
		if err != nil {
			return "", "", &CredentialsUnavailableError{Reason: "failed to read password from secret", Err: err}
		}
	}
	if password == "" {
		password, err = secretKeySelector(cloud.VSphere.CredentialsReference, resources.VspherePassword)
		if err != nil {
			return "", "", &CredentialsUnavailableError{Reason: "failed to read password from secret", Err: err}
		}
	}

	if username == "" {
		return "", "", &CredentialsUnavailableError{Reason: "no username found in any credential source"}
	}
	if password == "" {
		return "", "", &CredentialsUnavailableError{Reason: "no password found in any credential source"}
	}

	return username, password, nil
}

// GetCredentialsForCluster returns the effective credentials for managing
// the vCenter-side resources of a cluster. A fully specified
// infraManagementUser at the datacenter level wins over everything the
// cluster configures.
func GetCredentialsForCluster(cloud kubenestv1.CloudSpec, secretKeySelector provider.SecretKeySelectorValueFunc, dc *kubenestv1.DatacenterSpecVSphere) (string, string, error) {
	if dc != nil && dc.InfraManagementUser != nil {
		if dc.InfraManagementUser.Username != "" && dc.InfraManagementUser.Password != "" {
			return dc.InfraManagementUser.Username, dc.InfraManagementUser.Password, nil
		}
	}

	return getUsernameAndPassword(cloud, secretKeySelector, true)
}
