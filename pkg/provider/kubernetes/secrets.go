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

package kubernetes

import (
	"context"

	"github.com/pkg/errors"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/types"
	ctrlruntimeclient "sigs.k8s.io/controller-runtime/pkg/client"

	kubenestv1 "github.com/kubenest/kubenest/apis/v1"
	"github.com/kubenest/kubenest/pkg/provider"
)

// SecretKeySelectorValueFuncFactory returns a SecretKeySelectorValueFunc
// that reads credential values from secrets through the given client.
func SecretKeySelectorValueFuncFactory(ctx context.Context, client ctrlruntimeclient.Reader) provider.SecretKeySelectorValueFunc {
	return func(configVar *kubenestv1.GlobalSecretKeySelector, key string) (string, error) {
		if configVar == nil {
			return "", errors.New("configVar is nil")
		}
		if configVar.Name == "" || configVar.Namespace == "" {
			return "", errors.New("both name and namespace must be specified in the secret selector")
		}
		if key == "" {
			return "", errors.New("key is empty")
		}

		secret := &corev1.Secret{}
		namespacedName := types.NamespacedName{Namespace: configVar.Namespace, Name: configVar.Name}
		if err := client.Get(ctx, namespacedName, secret); err != nil {
			return "", errors.Wrapf(err, "failed to get secret %q", namespacedName.String())
		}

		value, ok := secret.Data[key]
		if !ok {
			return "", errors.Errorf("secret %q has no key %q", namespacedName.String(), key)
		}
		return string(value), nil
	}
}
