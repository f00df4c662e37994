package models

// ConflictAction is the per-field decision produced by conflict detection.
type ConflictAction string

const (
	ActionUseLocal      ConflictAction = "use_local"
	ActionUseRemote     ConflictAction = "use_remote"
	ActionMerge         ConflictAction = "merge"
	ActionRequireManual ConflictAction = "require_manual"
)

// ConflictStrategy summarizes how a whole resolution will proceed.
type ConflictStrategy string

const (
	StrategyServerWins ConflictStrategy = "server_wins"
	StrategyLocalWins  ConflictStrategy = "local_wins"
	StrategyFieldMerge ConflictStrategy = "field_merge"
	StrategyManual     ConflictStrategy = "manual"
)

// FieldConflict describes a single field-level disagreement between the
// local and remote version of the same aggregate.
type FieldConflict struct {
	FieldPath string         `json:"field_path"` // dotted path into the payload tree
	Action    ConflictAction `json:"action"`
	Local     Value          `json:"local"`
	Remote    Value          `json:"remote"`
}

// Resolution is the ephemeral result of comparing two payload trees.
type Resolution struct {
	Strategy     ConflictStrategy `json:"strategy"`
	Conflicts    []FieldConflict  `json:"conflicts"`
	HasConflicts bool             `json:"has_conflicts"`
}

// NewResolution derives the overall strategy from the conflict list:
// manual if any conflict needs a human, field merge if any field has a
// merge rule, otherwise the server-wins default.
func NewResolution(conflicts []FieldConflict) Resolution {
	res := Resolution{
		Strategy:     StrategyServerWins,
		Conflicts:    conflicts,
		HasConflicts: len(conflicts) > 0,
	}
	for _, c := range conflicts {
		switch c.Action {
		case ActionRequireManual:
			res.Strategy = StrategyManual
			return res
		case ActionMerge:
			res.Strategy = StrategyFieldMerge
		}
	}
	return res
}
