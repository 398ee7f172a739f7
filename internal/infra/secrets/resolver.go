// internal/infra/secrets/resolver.go
package secrets

import (
	"context"
	"errors"
	"fmt"
	"strings"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	secretmanagerpb "cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
)

var ErrNotConfigured = errors.New("secrets: secret manager client not configured")

const smScheme = "sm://"

// Accessor is the subset of the Secret Manager client the resolver needs.
type Accessor interface {
	AccessSecretVersion(ctx context.Context, name string) (string, error)
}

// Resolver turns config values that reference Secret Manager into their payloads.
//
// Accepted references:
//   - sm://<secretId>                      (latest version in ProjectID)
//   - sm://<secretId>/<version>
//   - projects/<p>/secrets/<s>/versions/<v> (full resource name)
//
// Any other value is returned unchanged.
type Resolver struct {
	Accessor  Accessor
	ProjectID string
}

func NewResolver(client *secretmanager.Client, projectID string) *Resolver {
	var acc Accessor
	if client != nil {
		acc = smAccessor{client: client}
	}
	return &Resolver{Accessor: acc, ProjectID: strings.TrimSpace(projectID)}
}

// IsReference reports whether v must go through Secret Manager.
func IsReference(v string) bool {
	v = strings.TrimSpace(v)
	return strings.HasPrefix(v, smScheme) ||
		(strings.HasPrefix(v, "projects/") && strings.Contains(v, "/secrets/"))
}

func (r *Resolver) Resolve(ctx context.Context, v string) (string, error) {
	if !IsReference(v) {
		return v, nil
	}
	if r == nil || r.Accessor == nil {
		return "", ErrNotConfigured
	}
	name, err := r.resourceName(v)
	if err != nil {
		return "", err
	}
	s, err := r.Accessor.AccessSecretVersion(ctx, name)
	if err != nil {
		return "", fmt.Errorf("secrets: access %s: %w", name, err)
	}
	return strings.TrimSpace(s), nil
}

func (r *Resolver) resourceName(v string) (string, error) {
	v = strings.TrimSpace(v)
	if !strings.HasPrefix(v, smScheme) {
		if !strings.Contains(v, "/versions/") {
			v += "/versions/latest"
		}
		return v, nil
	}

	ref := strings.Trim(strings.TrimPrefix(v, smScheme), "/")
	if ref == "" {
		return "", fmt.Errorf("secrets: empty reference %q", v)
	}
	if strings.TrimSpace(r.ProjectID) == "" {
		return "", fmt.Errorf("secrets: projectID is empty (reference %q)", v)
	}

	secretID, version := ref, "latest"
	if i := strings.Index(ref, "/"); i >= 0 {
		secretID, version = ref[:i], ref[i+1:]
	}
	return "projects/" + r.ProjectID + "/secrets/" + secretID + "/versions/" + version, nil
}

type smAccessor struct {
	client *secretmanager.Client
}

func (a smAccessor) AccessSecretVersion(ctx context.Context, name string) (string, error) {
	resp, err := a.client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{Name: name})
	if err != nil {
		return "", err
	}
	if resp == nil || resp.Payload == nil {
		return "", errors.New("empty payload")
	}
	return string(resp.Payload.Data), nil
}
