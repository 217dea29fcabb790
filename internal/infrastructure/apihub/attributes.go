package apihub

import (
	"context"
	"log/slog"
	"sync"

	"github.com/mohamadfayez/apigee-marketplace/internal/domain/entity"
)

// AttributeSet is a read-only snapshot of the catalog's allowed-value
// lists, taken once at startup and shared for the process lifetime.
// Stale data is an accepted tradeoff for avoiding repeated network
// calls; a restart is the only refresh mechanism. No writer exists after
// load, so the lists need no synchronization.
type AttributeSet struct {
	TargetUsers    []entity.CatalogAttribute
	BusinessUnits  []entity.CatalogAttribute
	Teams          []entity.CatalogAttribute
	MaturityLevels []entity.CatalogAttribute
	Regions        []entity.CatalogAttribute
	GDPRValues     []entity.CatalogAttribute
	BusinessTypes  []entity.CatalogAttribute
	Environments   []entity.CatalogAttribute
}

// LoadAttributeSet fetches all attribute lists concurrently. A failed
// load leaves that list empty so downstream selection degrades to "no
// attribute assigned" instead of failing provisioning.
func LoadAttributeSet(ctx context.Context, client *Client) *AttributeSet {
	set := &AttributeSet{}

	loads := []struct {
		name string
		dest *[]entity.CatalogAttribute
	}{
		{entity.AttrTargetUser, &set.TargetUsers},
		{entity.AttrBusinessUnit, &set.BusinessUnits},
		{entity.AttrTeam, &set.Teams},
		{entity.AttrMaturityLevel, &set.MaturityLevels},
		{entity.AttrRegions, &set.Regions},
		{entity.AttrGDPRRelevance, &set.GDPRValues},
		{entity.AttrBusinessType, &set.BusinessTypes},
		{entity.AttrEnvironment, &set.Environments},
	}

	var wg sync.WaitGroup
	for _, load := range loads {
		wg.Add(1)
		go func(name string, dest *[]entity.CatalogAttribute) {
			defer wg.Done()
			values, err := client.GetAttribute(ctx, name)
			if err != nil {
				slog.Warn("failed to load catalog attribute, continuing with empty list",
					"attribute", name,
					"error", err,
				)
				return
			}
			*dest = values
		}(load.name, load.dest)
	}
	wg.Wait()

	slog.Info("catalog attribute snapshot loaded",
		"target_users", len(set.TargetUsers),
		"business_units", len(set.BusinessUnits),
		"teams", len(set.Teams),
		"maturity_levels", len(set.MaturityLevels),
		"regions", len(set.Regions),
		"gdpr_values", len(set.GDPRValues),
		"business_types", len(set.BusinessTypes),
		"environments", len(set.Environments),
	)

	return set
}

// Counts returns the per-list sizes, used by the readiness probe.
func (s *AttributeSet) Counts() map[string]int {
	return map[string]int{
		entity.AttrTargetUser:    len(s.TargetUsers),
		entity.AttrBusinessUnit:  len(s.BusinessUnits),
		entity.AttrTeam:          len(s.Teams),
		entity.AttrMaturityLevel: len(s.MaturityLevels),
		entity.AttrRegions:       len(s.Regions),
		entity.AttrGDPRRelevance: len(s.GDPRValues),
		entity.AttrBusinessType:  len(s.BusinessTypes),
		entity.AttrEnvironment:   len(s.Environments),
	}
}
