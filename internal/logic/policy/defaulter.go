package policy

import (
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"
	"k8s.io/utils/ptr"
)

// Default fills in resources and securityContext on every container that has
// none at all. A partially set descriptor is left untouched: only complete
// absence triggers defaulting.
func Default(pod *corev1.Pod) {
	if pod == nil {
		return
	}

	for _, c := range containers(pod) {
		if resourcesAbsent(c.resources) {
			*c.resources = defaultResources()
		}

		if *c.securityContext == nil {
			*c.securityContext = defaultSecurityContext()
		}
	}
}

func resourcesAbsent(r *corev1.ResourceRequirements) bool {
	return len(r.Requests) == 0 && len(r.Limits) == 0 && len(r.Claims) == 0
}

func defaultResources() corev1.ResourceRequirements {
	return corev1.ResourceRequirements{
		Requests: corev1.ResourceList{
			corev1.ResourceCPU:    resource.MustParse(defaultRequestCPU),
			corev1.ResourceMemory: resource.MustParse(defaultRequestMemory),
		},
		Limits: corev1.ResourceList{
			corev1.ResourceCPU:    resource.MustParse(defaultLimitCPU),
			corev1.ResourceMemory: resource.MustParse(defaultLimitMemory),
		},
	}
}

// defaultSecurityContext leaves RunAsNonRoot unset; Validate rejects
// containers that set it.
func defaultSecurityContext() *corev1.SecurityContext {
	return &corev1.SecurityContext{
		RunAsUser:  ptr.To(defaultRunAsUser),
		RunAsGroup: ptr.To(defaultRunAsGroup),
		Privileged: ptr.To(false),
	}
}
