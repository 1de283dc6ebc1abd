package service

import (
	apperrors "GenoFlow_Gateway/internal/api-gateway/errors"
	"GenoFlow_Gateway/internal/api-gateway/model"
	"fmt"
)

// PermissionTable maps role -> resource -> allowed actions. It is not modified after construction.
type PermissionTable struct {
	grants map[string]map[string]map[model.Action]struct{}
}

func NewPermissionTable(grants map[string]map[string][]model.Action) (PermissionTable, error) {
	table := PermissionTable{grants: make(map[string]map[string]map[model.Action]struct{}, len(grants))}
	for role, resources := range grants {
		if role == "" {
			return PermissionTable{}, fmt.Errorf("NewPermissionTable empty role name: %w", apperrors.ErrInvalidPermissionTable)
		}
		byResource := make(map[string]map[model.Action]struct{}, len(resources))
		for resource, actions := range resources {
			if resource == "" {
				return PermissionTable{}, fmt.Errorf("NewPermissionTable empty resource for role %q: %w", role, apperrors.ErrInvalidPermissionTable)
			}
			set := make(map[model.Action]struct{}, len(actions))
			for _, action := range actions {
				if action != model.ActionRead && action != model.ActionWrite {
					return PermissionTable{}, fmt.Errorf("NewPermissionTable unknown action %q: %w", action, apperrors.ErrInvalidPermissionTable)
				}
				set[action] = struct{}{}
			}
			byResource[resource] = set
		}
		table.grants[role] = byResource
	}
	return table, nil
}

func DefaultPermissionTable() PermissionTable {
	rw := []model.Action{model.ActionRead, model.ActionWrite}
	r := []model.Action{model.ActionRead}
	table, err := NewPermissionTable(map[string]map[string][]model.Action{
		"analyst": {
			model.ResourceIngestion:  rw,
			model.ResourceQC:         rw,
			model.ResourcePipelines:  r,
			model.ResourceExecution:  rw,
			model.ResourceResults:    r,
			model.ResourceMonitoring: r,
		},
		"researcher": {
			model.ResourceResults:    r,
			model.ResourceMonitoring: r,
		},
	})
	if err != nil {
		panic(err)
	}
	return table
}

func (p PermissionTable) Allows(role, resource string, action model.Action) bool {
	actions, ok := p.grants[role][resource]
	if !ok {
		return false
	}
	_, ok = actions[action]
	return ok
}
