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

// Package resources holds the names of well-known keys inside credential
// secrets.
package resources

const (
	// VsphereUsername is the key for the vCenter username.
	VsphereUsername = "username"
	// VspherePassword is the key for the vCenter password.
	VspherePassword = "password"
	// VsphereInfraManagementUserUsername is the key for the username of the
	// dedicated infra management user.
	VsphereInfraManagementUserUsername = "infraManagementUserUsername"
	// VsphereInfraManagementUserPassword is the key for the password of the
	// dedicated infra management user.
	VsphereInfraManagementUserPassword = "infraManagementUserPassword"
)
