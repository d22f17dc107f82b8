package components

const (
	buttonBase   = "inline-flex items-center gap-2 rounded-full bg-primary px-4 py-2 text-sm font-semibold text-white shadow-lg transition hover:bg-primary-dark"
	articleClass = "mb-12 flex flex-col border-b border-gray-100 pb-12 last:mb-0 last:border-0 last:pb-0"
)

// buttonSize overrides the base padding; twmerge drops the conflicting classes.
func buttonSize(big bool) string {
	if big {
		return "px-6 py-3 text-base"
	}
	return ""
}

func categoryClass(category string) string {
	if category == "" {
		return ""
	}
	return "border-primary/20"
}
