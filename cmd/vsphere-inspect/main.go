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

// main is the entry point for the vsphere-inspect tool. It lists the
// vCenter inventory objects (networks, VM folders, datastores) that cluster
// cloud specs reference, using the same session and lookup code as the
// provider itself.
package main

import (
	"crypto/x509"
	goflag "flag"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/yaml"

	kubenestv1 "github.com/kubenest/kubenest/apis/v1"
	"github.com/kubenest/kubenest/pkg/provider/cloud/vsphere"
)

type options struct {
	datacenterFile string
	username       string
	password       string
	caBundleFile   string

	dc       *kubenestv1.DatacenterSpecVSphere
	caBundle *x509.CertPool
}

// complete loads the datacenter spec and the optional CA bundle. Credentials
// fall back to VSPHERE_USERNAME / VSPHERE_PASSWORD so they do not have to be
// passed on the command line.
func (o *options) complete() error {
	if o.username == "" {
		o.username = os.Getenv("VSPHERE_USERNAME")
	}
	if o.password == "" {
		o.password = os.Getenv("VSPHERE_PASSWORD")
	}
	if o.username == "" || o.password == "" {
		return errors.New("no credentials given, use --username/--password or VSPHERE_USERNAME/VSPHERE_PASSWORD")
	}

	raw, err := os.ReadFile(o.datacenterFile)
	if err != nil {
		return errors.Wrapf(err, "failed to read datacenter file %q", o.datacenterFile)
	}
	dc := &kubenestv1.DatacenterSpecVSphere{}
	if err := yaml.UnmarshalStrict(raw, dc); err != nil {
		return errors.Wrapf(err, "failed to parse datacenter file %q", o.datacenterFile)
	}
	if dc.Endpoint == "" || dc.Datacenter == "" {
		return errors.Errorf("datacenter file %q must set endpoint and datacenter", o.datacenterFile)
	}
	o.dc = dc

	if o.caBundleFile != "" {
		pem, err := os.ReadFile(o.caBundleFile)
		if err != nil {
			return errors.Wrapf(err, "failed to read CA bundle %q", o.caBundleFile)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return errors.Errorf("no certificates found in CA bundle %q", o.caBundleFile)
		}
		o.caBundle = pool
	}

	return nil
}

func printYAML(v any) error {
	out, err := yaml.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "failed to marshal output")
	}
	fmt.Print(string(out))
	return nil
}

func newRootCommand() *cobra.Command {
	o := &options{}

	cmd := &cobra.Command{
		Use:          "vsphere-inspect",
		Short:        "List vCenter inventory objects referenced by cluster cloud specs",
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return o.complete()
		},
	}

	fs := pflag.NewFlagSet("global", pflag.ExitOnError)
	fs.StringVar(&o.datacenterFile, "datacenter", "", "Path to a YAML file with the vSphere datacenter spec")
	fs.StringVar(&o.username, "username", "", "vCenter username (defaults to VSPHERE_USERNAME)")
	fs.StringVar(&o.password, "password", "", "vCenter password (defaults to VSPHERE_PASSWORD)")
	fs.StringVar(&o.caBundleFile, "ca-bundle", "", "Path to a PEM file with additional CA certificates")
	cmd.PersistentFlags().AddFlagSet(fs)
	if err := cmd.MarkPersistentFlagRequired("datacenter"); err != nil {
		panic(err)
	}

	cmd.AddCommand(newNetworksCommand(o))
	cmd.AddCommand(newFoldersCommand(o))
	cmd.AddCommand(newDatastoresCommand(o))

	return cmd
}

func newNetworksCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "networks",
		Short: "List the networks VMs can be attached to",
		RunE: func(cmd *cobra.Command, _ []string) error {
			networks, err := vsphere.GetNetworks(cmd.Context(), o.dc, o.username, o.password, o.caBundle)
			if err != nil {
				return err
			}
			return printYAML(networks)
		},
	}
}

func newFoldersCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "folders",
		Short: "List the VM folders below the datacenter's root path",
		RunE: func(cmd *cobra.Command, _ []string) error {
			folders, err := vsphere.GetVMFolders(cmd.Context(), o.dc, o.username, o.password, o.caBundle)
			if err != nil {
				return err
			}
			return printYAML(folders)
		},
	}
}

func newDatastoresCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "datastores",
		Short: "List the datastores of the datacenter",
		RunE: func(cmd *cobra.Command, _ []string) error {
			datastores, err := vsphere.GetDatastoreList(cmd.Context(), o.dc, o.username, o.password, o.caBundle)
			if err != nil {
				return err
			}
			var names []string
			for _, datastore := range datastores {
				names = append(names, datastore.Name())
			}
			return printYAML(names)
		},
	}
}

func main() {
	klogFlags := goflag.NewFlagSet("klog", goflag.ExitOnError)
	klog.InitFlags(klogFlags)
	ctrl.SetLogger(klog.Background())

	cmd := newRootCommand()
	cmd.PersistentFlags().AddGoFlagSet(klogFlags)
	cmd.SetContext(ctrl.SetupSignalHandler())
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
