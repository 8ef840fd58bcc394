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
	"crypto/x509"
	"fmt"
	"net/url"

	"github.com/vmware/govmomi"
	"github.com/vmware/govmomi/find"
	"github.com/vmware/govmomi/object"
	"github.com/vmware/govmomi/session"
	"github.com/vmware/govmomi/vapi/rest"
	"github.com/vmware/govmomi/vim25"
	"github.com/vmware/govmomi/vim25/soap"
	ctrl "sigs.k8s.io/controller-runtime"

	kubenestv1 "github.com/kubenest/kubenest/apis/v1"
)

// Session is a short-lived, authenticated data-plane (SOAP) connection to a
// vCenter endpoint with a Finder scoped to the configured datacenter. It is
// owned by the operation that opened it and must be released with Logout on
// every exit path.
type Session struct {
	Client     *govmomi.Client
	Finder     *find.Finder
	Datacenter *object.Datacenter
}

// Logout closes the session. Failures are logged, not returned; releasing a
// transport-level session is best-effort cleanup and does not change the
// outcome of the operation that used it.
func (s *Session) Logout(ctx context.Context) {
	if err := s.Client.Logout(ctx); err != nil {
		ctrl.LoggerFrom(ctx).Error(err, "Failed to logout vSphere session")
	}
}

// RESTSession is a short-lived, authenticated tag-plane (REST) connection to
// a vCenter endpoint. It uses a separate auth mechanism from Session and is
// opened and closed independently.
type RESTSession struct {
	Client *rest.Client
}

// Logout closes the session. Failures are logged, not returned.
func (s *RESTSession) Logout(ctx context.Context) {
	if err := s.Client.Logout(ctx); err != nil {
		ctrl.LoggerFrom(ctx).Error(err, "Failed to logout vSphere REST session")
	}
}

// newVimClient dials the endpoint's SOAP entry point. No login is performed.
func newVimClient(ctx context.Context, dc *kubenestv1.DatacenterSpecVSphere, caBundle *x509.CertPool) (*vim25.Client, error) {
	u, err := url.Parse(fmt.Sprintf("%s/sdk", dc.Endpoint))
	if err != nil {
		return nil, &ConfigurationError{Message: fmt.Sprintf("invalid vCenter endpoint %q: %v", dc.Endpoint, err)}
	}

	soapClient := soap.NewClient(u, dc.AllowInsecure)
	if caBundle != nil {
		// The govmomi client offers no constructor parameter for a custom CA
		// bundle, so it is set on the transport directly.
		soapClient.DefaultTransport().TLSClientConfig.RootCAs = caBundle
	}

	vimClient, err := vim25.NewClient(ctx, soapClient)
	if err != nil {
		return nil, &ConnectionError{Endpoint: dc.Endpoint, Err: err}
	}
	return vimClient, nil
}

// newSession opens a data-plane session and resolves the configured
// datacenter. The caller owns the session and must call Logout.
func newSession(ctx context.Context, dc *kubenestv1.DatacenterSpecVSphere, username, password string, caBundle *x509.CertPool) (*Session, error) {
	vimClient, err := newVimClient(ctx, dc, caBundle)
	if err != nil {
		return nil, err
	}

	client := &govmomi.Client{
		Client:         vimClient,
		SessionManager: session.NewManager(vimClient),
	}

	if err := client.Login(ctx, url.UserPassword(username, password)); err != nil {
		return nil, &AuthenticationError{Endpoint: dc.Endpoint, Err: err}
	}

	finder := find.NewFinder(vimClient, true)
	datacenter, err := finder.Datacenter(ctx, dc.Datacenter)
	if err != nil {
		if logoutErr := client.Logout(ctx); logoutErr != nil {
			ctrl.LoggerFrom(ctx).Error(logoutErr, "Failed to logout vSphere session")
		}
		return nil, &NotFoundError{Kind: "datacenter", Name: dc.Datacenter, Err: err}
	}
	finder.SetDatacenter(datacenter)

	return &Session{
		Client:     client,
		Finder:     finder,
		Datacenter: datacenter,
	}, nil
}

// newRESTSession opens a tag-plane session. The caller owns the session and
// must call Logout.
func newRESTSession(ctx context.Context, dc *kubenestv1.DatacenterSpecVSphere, username, password string, caBundle *x509.CertPool) (*RESTSession, error) {
	vimClient, err := newVimClient(ctx, dc, caBundle)
	if err != nil {
		return nil, err
	}

	restClient := rest.NewClient(vimClient)
	if err := restClient.Login(ctx, url.UserPassword(username, password)); err != nil {
		return nil, &AuthenticationError{Endpoint: dc.Endpoint, Err: err}
	}

	return &RESTSession{Client: restClient}, nil
}
