package generator

import "github.com/skillcoder/webapp-operator/api/v1alpha1"

const (
	// OwnerLabelKey links a generated child back to its WebApp by name. It is
	// the only back-reference used for self-healing.
	OwnerLabelKey = v1alpha1.Group + "/owner"

	// ContentHashAnnotationKey on the pod template rolls the Deployment when
	// the site content changes.
	ContentHashAnnotationKey = v1alpha1.Group + "/content-hash"

	LabelAppName      = "app.kubernetes.io/name"
	LabelAppInstance  = "app.kubernetes.io/instance"
	LabelAppComponent = "app.kubernetes.io/component"
	LabelAppManagedBy = "app.kubernetes.io/managed-by"

	// ManagedBy is the app.kubernetes.io/managed-by value of everything the
	// operator creates.
	ManagedBy = "webapp-operator"

	appName = "webapp"
)

// Labels returns the label set carried by every child of the named instance.
func Labels(instance, component string) map[string]string {
	return map[string]string{
		OwnerLabelKey:     instance,
		LabelAppName:      appName,
		LabelAppInstance:  instance,
		LabelAppComponent: component,
		LabelAppManagedBy: ManagedBy,
	}
}

// selectorLabels is the stable subset used by the Deployment and Service selectors.
func selectorLabels(instance string) map[string]string {
	return map[string]string{
		LabelAppName:     appName,
		LabelAppInstance: instance,
	}
}
