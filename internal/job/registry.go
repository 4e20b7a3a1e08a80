package job

import (
	"github.com/jfaraday/bookforge/internal/config"
	"github.com/jfaraday/bookforge/internal/plan"
)

// Registry holds every job for a run, in the fixed enumeration order:
// chapter order, then section order, then example index. The order is
// deterministic given identical plans, so re-running with partially
// cached plans never renumbers existing examples.
type Registry struct {
	Jobs []*Job
	byID map[string]*Job
}

// NewRegistry enumerates one job per planned example. Sections without
// a plan are simply absent.
func NewRegistry(chapters []config.Chapter, plans map[plan.Key]*plan.SectionPlan) *Registry {
	r := &Registry{byID: make(map[string]*Job)}
	for _, ch := range chapters {
		for _, section := range ch.Sections {
			p, ok := plans[plan.Key{Chapter: ch.Title, Section: section}]
			if !ok {
				continue
			}
			for i, ex := range p.Examples {
				j := &Job{
					CustomID: EncodeID(ch.Title, section, i),
					Chapter:  ch.Title,
					Section:  section,
					Index:    i,
					Title:    ex.Title,
					Summary:  ex.Summary,
					Status:   StatusPending,
				}
				r.Jobs = append(r.Jobs, j)
				r.byID[j.CustomID] = j
			}
		}
	}
	return r
}

// Get returns the job for a custom_id, or nil if unknown.
func (r *Registry) Get(customID string) *Job {
	return r.byID[customID]
}

func (r *Registry) Len() int {
	return len(r.Jobs)
}

// IDs returns all custom_ids in enumeration order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.Jobs))
	for i, j := range r.Jobs {
		ids[i] = j.CustomID
	}
	return ids
}
