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
	goerrors "errors"
	"fmt"

	"github.com/vmware/govmomi/find"
)

// ConfigurationError indicates a malformed or contradictory cloud spec.
// Retrying without changing the spec will not help.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// CredentialsUnavailableError indicates that no usable username/password
// pair could be resolved for a cluster.
type CredentialsUnavailableError struct {
	Reason string
	Err    error
}

func (e *CredentialsUnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("no usable vSphere credentials: %s: %v", e.Reason, e.Err)
	}
	return "no usable vSphere credentials: " + e.Reason
}

func (e *CredentialsUnavailableError) Unwrap() error {
	return e.Err
}

// ConnectionError indicates the vCenter endpoint could not be reached.
type ConnectionError struct {
	Endpoint string
	Err      error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("failed to connect to vCenter %q: %v", e.Endpoint, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// AuthenticationError indicates the vCenter endpoint rejected a login.
type AuthenticationError struct {
	Endpoint string
	Err      error
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("failed to login to vCenter %q: %v", e.Endpoint, e.Err)
}

func (e *AuthenticationError) Unwrap() error {
	return e.Err
}

// NotFoundError indicates a named vCenter object does not exist even though
// an operation required it.
type NotFoundError struct {
	Kind string
	Name string
	Err  error
}

func (e *NotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to get %s %q: %v", e.Kind, e.Name, e.Err)
	}
	return fmt.Sprintf("failed to get %s %q", e.Kind, e.Name)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// PersistenceError indicates the atomic cluster updater failed to apply a
// mutation. The external side effect it was supposed to record has already
// happened and will be picked up again by the next, idempotent attempt.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to persist cluster update: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// isNotFound reports whether err stems from a failed inventory lookup as
// opposed to a transport or API failure.
func isNotFound(err error) bool {
	var notFoundError *find.NotFoundError
	return goerrors.As(err, &notFoundError)
}
