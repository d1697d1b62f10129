package stats

import (
	"crm-platform/internal/lead"
	"crm-platform/internal/rbac"
	"crm-platform/internal/team"
)

// NameCount is a single bar/slice for chart consumption. Groupings are
// ordered by first appearance in the collection so chart ordering is
// stable across recomputations of the same snapshot.
type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// FunnelStats are the derived dashboard metrics for a lead collection
// snapshot. Computation is deterministic and side-effect-free.
type FunnelStats struct {
	Total     int `json:"total"`
	Worked    int `json:"worked"`
	Unworked  int `json:"unworked"`
	Converted int `json:"converted"`

	// ConversionRate is a percentage; 0 on an empty collection.
	ConversionRate float64 `json:"conversion_rate"`
	// WorkedPercent is the engagement-depth percentage shown on reports.
	WorkedPercent float64 `json:"worked_percent"`

	BySource []NameCount `json:"by_source"`
	ByStatus []NameCount `json:"by_status"`
}

// ComputeFunnel aggregates the snapshot. Sales executives see only leads
// assigned to them; every other role sees the unfiltered collection. The
// input is never mutated.
func ComputeFunnel(leads []lead.Lead, forUser *team.User) FunnelStats {
	scoped := scopeLeads(leads, forUser)

	out := FunnelStats{
		BySource: []NameCount{},
		ByStatus: []NameCount{},
	}
	sourceIdx := map[string]int{}
	statusIdx := map[string]int{}

	for _, l := range scoped {
		out.Total++
		if l.WorkedFlag || l.Status != lead.StatusNew {
			out.Worked++
		}
		if l.Status == lead.StatusConverted {
			out.Converted++
		}

		name := string(l.Source)
		if i, ok := sourceIdx[name]; ok {
			out.BySource[i].Count++
		} else {
			sourceIdx[name] = len(out.BySource)
			out.BySource = append(out.BySource, NameCount{Name: name, Count: 1})
		}

		name = string(l.Status)
		if i, ok := statusIdx[name]; ok {
			out.ByStatus[i].Count++
		} else {
			statusIdx[name] = len(out.ByStatus)
			out.ByStatus = append(out.ByStatus, NameCount{Name: name, Count: 1})
		}
	}

	out.Unworked = out.Total - out.Worked
	if out.Total > 0 {
		out.ConversionRate = float64(out.Converted) / float64(out.Total) * 100
		out.WorkedPercent = float64(out.Worked) / float64(out.Total) * 100
	}
	return out
}

// StageColumn is one column of the pipeline board.
type StageColumn struct {
	Stage lead.Status `json:"stage"`
	Leads []lead.Lead `json:"leads"`
}

// PipelineBoard groups leads per stage in canonical stage order. Stages
// with no leads still produce a column so the board layout is fixed.
func PipelineBoard(leads []lead.Lead) []StageColumn {
	out := make([]StageColumn, 0, len(lead.PipelineStages))
	for _, stage := range lead.PipelineStages {
		col := StageColumn{Stage: stage, Leads: []lead.Lead{}}
		for _, l := range leads {
			if l.Status == stage {
				col.Leads = append(col.Leads, l)
			}
		}
		out = append(out, col)
	}
	return out
}

func scopeLeads(leads []lead.Lead, forUser *team.User) []lead.Lead {
	if forUser == nil || !rbac.IsExecutive(forUser.Role) {
		return leads
	}
	scoped := make([]lead.Lead, 0, len(leads))
	for _, l := range leads {
		if l.AssignedTo == forUser.ID {
			scoped = append(scoped, l)
		}
	}
	return scoped
}
