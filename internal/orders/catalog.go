package orders

// Fixed option lists exposed by the briefing form. These are the only values
// accepted at the boundary.
var (
	ProjectTypes = []string{"Website", "Web App", "Ecommerce", "Business", "Portfolio", "SaaS"}

	ChecklistOptions = []string{"Login system", "Database", "Admin panel", "Hosting", "Payments", "SEO"}

	DeliveryMethods = []string{"GitHub", "Google Drive"}
)

// ValidProjectType reports whether t is one of the fixed project types.
func ValidProjectType(t string) bool {
	return contains(ProjectTypes, t)
}

// ValidDeliveryMethod reports whether m is one of the fixed delivery methods.
func ValidDeliveryMethod(m string) bool {
	return contains(DeliveryMethods, m)
}

// ValidChecklistItem reports whether item is one of the fixed checklist options.
func ValidChecklistItem(item string) bool {
	return contains(ChecklistOptions, item)
}

// FilterChecklist returns items restricted to the fixed checklist options,
// in their submitted order, without duplicates. Unknown entries are dropped
// rather than rejected.
func FilterChecklist(items []string) []string {
	out := make([]string, 0, len(items))
	seen := map[string]struct{}{}
	for _, it := range items {
		if !ValidChecklistItem(it) {
			continue
		}
		if _, dup := seen[it]; dup {
			continue
		}
		seen[it] = struct{}{}
		out = append(out, it)
	}
	return out
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
