package k8s

import (
	"context"
	_ "embed"
	"fmt"

	apiextensionsv1 "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/yaml"

	"github.com/skillcoder/webapp-operator/api/v1alpha1"
)

//go:embed manifests/webapp.crd.yaml
var definitionManifest []byte

// Definition decodes the embedded WebApp CustomResourceDefinition.
func Definition() (*apiextensionsv1.CustomResourceDefinition, error) {
	crd := &apiextensionsv1.CustomResourceDefinition{}

	if err := yaml.UnmarshalStrict(definitionManifest, crd); err != nil {
		return nil, fmt.Errorf("decode definition manifest: %w", err)
	}

	if crd.Name != v1alpha1.DefinitionName {
		return nil, fmt.Errorf("%w: %q", ErrDefinitionName, crd.Name)
	}

	return crd, nil
}

// RegisterDefinitionCommand creates the WebApp CRD, or updates it in place
// when it already exists.
func (a *adapter) RegisterDefinitionCommand(ctx context.Context) error {
	desired, err := Definition()
	if err != nil {
		return err
	}

	api := a.extensions.ApiextensionsV1().CustomResourceDefinitions()

	_, err = api.Create(ctx, desired, metav1.CreateOptions{})
	if err == nil {
		a.logger.InfoContext(ctx, "definition created", "name", desired.Name)

		return nil
	}

	if !apierrors.IsAlreadyExists(err) {
		return fmt.Errorf("create definition: %w", err)
	}

	existing, err := api.Get(ctx, desired.Name, metav1.GetOptions{})
	if err != nil {
		return fmt.Errorf("get definition: %w", err)
	}

	desired.ResourceVersion = existing.ResourceVersion

	if _, err := api.Update(ctx, desired, metav1.UpdateOptions{}); err != nil {
		return fmt.Errorf("update definition: %w", err)
	}

	a.logger.DebugContext(ctx, "definition updated", "name", desired.Name)

	return nil
}
