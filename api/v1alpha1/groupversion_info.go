// Package v1alpha1 contains the WebApp API types.
package v1alpha1

import (
	"k8s.io/apimachinery/pkg/runtime/schema"
)

const (
	// Group is the API group of the WebApp resource.
	Group = "webapp.skillcoder.com"

	// Version is the served and stored API version.
	Version = "v1alpha1"

	// Kind is the resource kind.
	Kind = "WebApp"

	// Resource is the plural resource name.
	Resource = "webapps"

	// DefinitionName is the name of the CustomResourceDefinition that registers WebApp.
	DefinitionName = Resource + "." + Group
)

var (
	// GroupVersion is the group version used to register WebApp objects.
	GroupVersion = schema.GroupVersion{Group: Group, Version: Version}

	// GroupVersionKind identifies the WebApp kind.
	GroupVersionKind = GroupVersion.WithKind(Kind)

	// GroupVersionResource is used by dynamic clients and informers.
	GroupVersionResource = GroupVersion.WithResource(Resource)
)
