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

// Package kubernetes provides helpers for working with Kubernetes-style
// objects, most notably typed finalizer bookkeeping.
package kubernetes

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/sets"
)

// Finalizer marks cleanup work that must complete before an object may be
// removed. Each externally provisioned resource gets its own finalizer so
// that cleanup progress is tracked per resource.
type Finalizer string

// HasFinalizer reports whether the object carries the given finalizer.
func HasFinalizer(o metav1.Object, finalizer Finalizer) bool {
	return sets.New(o.GetFinalizers()...).Has(string(finalizer))
}

// AddFinalizer adds the given finalizers to the object, keeping the list
// sorted and free of duplicates.
func AddFinalizer(o metav1.Object, finalizers ...Finalizer) {
	set := sets.New(o.GetFinalizers()...)
	for _, f := range finalizers {
		set.Insert(string(f))
	}
	o.SetFinalizers(sets.List(set))
}

// RemoveFinalizer removes the given finalizers from the object.
func RemoveFinalizer(o metav1.Object, finalizers ...Finalizer) {
	set := sets.New(o.GetFinalizers()...)
	for _, f := range finalizers {
		set.Delete(string(f))
	}
	o.SetFinalizers(sets.List(set))
}
