// Package generator renders a WebApp instance into the child manifests that
// serve it: a ConfigMap with the site content, a Deployment mounting it and a
// Service in front of the Deployment.
package generator

import (
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/util/intstr"
	"k8s.io/utils/ptr"

	"github.com/skillcoder/webapp-operator/api/v1alpha1"
)

const (
	// DefaultImage serves the content as a non-root user on containerPort.
	DefaultImage = "nginxinc/nginx-unprivileged:1.27-alpine"

	containerPort int32 = 8080
	servicePort   int32 = 80
	nginxUID      int64 = 101

	contentVolume = "web-content"
	contentPath   = "/usr/share/nginx/html"
	indexKey      = "index.html"
)

// Object is a generated child manifest.
type Object interface {
	metav1.Object
	runtime.Object
}

// Generator renders WebApp instances into child manifests.
type Generator struct {
	image string
}

// New creates a generator. An empty image selects DefaultImage.
func New(image string) *Generator {
	if image == "" {
		image = DefaultImage
	}

	return &Generator{image: image}
}

// DeploymentName is the name of the Deployment and Service generated for an instance.
func DeploymentName(instance string) string {
	return "web-app-" + instance
}

// ConfigMapName is the name of the content ConfigMap generated for an instance.
func ConfigMapName(instance string) string {
	return "web-content-" + instance
}

// Generate returns the children of app in apply order: ConfigMap, Deployment, Service.
func (g *Generator) Generate(app *v1alpha1.WebApp) ([]Object, error) {
	if app == nil {
		return nil, ErrNilInstance
	}

	index, hash, err := renderIndex(app)
	if err != nil {
		return nil, err
	}

	return []Object{
		g.configMap(app, index),
		g.deployment(app, hash),
		g.service(app),
	}, nil
}

func (g *Generator) objectMeta(app *v1alpha1.WebApp, name, component string) metav1.ObjectMeta {
	meta := metav1.ObjectMeta{
		Name:      name,
		Namespace: app.Namespace,
		Labels:    Labels(app.Name, component),
	}

	// Snapshots taken before the API server assigned a UID cannot own children.
	if app.UID != "" {
		meta.OwnerReferences = []metav1.OwnerReference{
			*metav1.NewControllerRef(app, v1alpha1.GroupVersionKind),
		}
	}

	return meta
}

func (g *Generator) configMap(app *v1alpha1.WebApp, index string) *corev1.ConfigMap {
	return &corev1.ConfigMap{
		TypeMeta:   metav1.TypeMeta{APIVersion: "v1", Kind: "ConfigMap"},
		ObjectMeta: g.objectMeta(app, ConfigMapName(app.Name), "content"),
		Data:       map[string]string{indexKey: index},
	}
}

func (g *Generator) deployment(app *v1alpha1.WebApp, contentHash string) *appsv1.Deployment {
	podLabels := Labels(app.Name, "server")

	return &appsv1.Deployment{
		TypeMeta:   metav1.TypeMeta{APIVersion: "apps/v1", Kind: "Deployment"},
		ObjectMeta: g.objectMeta(app, DeploymentName(app.Name), "server"),
		Spec: appsv1.DeploymentSpec{
			Replicas: ptr.To(app.Spec.Replicas),
			Selector: &metav1.LabelSelector{MatchLabels: selectorLabels(app.Name)},
			Template: corev1.PodTemplateSpec{
				ObjectMeta: metav1.ObjectMeta{
					Labels:      podLabels,
					Annotations: map[string]string{ContentHashAnnotationKey: contentHash},
				},
				Spec: corev1.PodSpec{
					Containers: []corev1.Container{{
						Name:  "nginx",
						Image: g.image,
						Ports: []corev1.ContainerPort{{
							Name:          "http",
							ContainerPort: containerPort,
							Protocol:      corev1.ProtocolTCP,
						}},
						VolumeMounts: []corev1.VolumeMount{{
							Name:      contentVolume,
							MountPath: contentPath,
							ReadOnly:  true,
						}},
						SecurityContext: &corev1.SecurityContext{
							RunAsUser:  ptr.To(nginxUID),
							RunAsGroup: ptr.To(nginxUID),
							Privileged: ptr.To(false),
						},
					}},
					Volumes: []corev1.Volume{{
						Name: contentVolume,
						VolumeSource: corev1.VolumeSource{
							ConfigMap: &corev1.ConfigMapVolumeSource{
								LocalObjectReference: corev1.LocalObjectReference{Name: ConfigMapName(app.Name)},
							},
						},
					}},
				},
			},
		},
	}
}

func (g *Generator) service(app *v1alpha1.WebApp) *corev1.Service {
	return &corev1.Service{
		TypeMeta:   metav1.TypeMeta{APIVersion: "v1", Kind: "Service"},
		ObjectMeta: g.objectMeta(app, DeploymentName(app.Name), "server"),
		Spec: corev1.ServiceSpec{
			Type:     corev1.ServiceTypeClusterIP,
			Selector: selectorLabels(app.Name),
			Ports: []corev1.ServicePort{{
				Name:       "http",
				Port:       servicePort,
				TargetPort: intstr.FromString("http"),
				Protocol:   corev1.ProtocolTCP,
			}},
		},
	}
}
