package controller

// Outcome classifies how a reconciliation ended.
type Outcome string

const (
	OutcomeSuccess        Outcome = "success"
	OutcomeSkipped        Outcome = "skipped"
	OutcomeInvalid        Outcome = "invalid"
	OutcomeStoreError     Outcome = "store_error"
	OutcomeGeneratorError Outcome = "generator_error"
	OutcomeApplyError     Outcome = "apply_error"
	// OutcomeDeleting means the instance carries a deletion timestamp; its
	// snapshot was dropped and nothing was applied.
	OutcomeDeleting Outcome = "deleting"
	// OutcomeGone means a resynced snapshot was removed before it could be
	// applied.
	OutcomeGone Outcome = "gone"
)

// ReconcileResult is the explicit outcome of one reconciliation. It is logged
// and counted but never surfaced to the requester.
type ReconcileResult struct {
	Outcome Outcome
	// Applied holds one entry per child that was applied, in apply order.
	Applied []ApplyOutcome
	Err     error
}

// ApplyOutcome is what applying a single child did to the cluster.
type ApplyOutcome string

const (
	ApplyCreated   ApplyOutcome = "created"
	ApplyUpdated   ApplyOutcome = "updated"
	ApplyUnchanged ApplyOutcome = "unchanged"
)

// HealOutcome classifies how a child deletion was handled.
type HealOutcome string

const (
	HealRecreated  HealOutcome = "recreated"
	HealNoSnapshot HealOutcome = "no_snapshot"
	HealNoOwner    HealOutcome = "no_owner"
	HealFailed     HealOutcome = "failed"
)
