package utils

const (
	DateOnly    = "2006-01-02"
	DateTime    = "2006-01-02 15:04"
	DateTimeSec = "2006-01-02 15:04:05"
)

// OrUnnamed substitutes a placeholder for resources without a Name tag.
func OrUnnamed(name string) string {
	if name == "" {
		return "(unnamed)"
	}
	return name
}

// YesNo renders a boolean the way the report tables expect it.
func YesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// Plural returns "s" unless n is exactly one.
func Plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
