package collectors

import "strings"

// ServiceCatalogEntry maps a canonical service name to the lowercase
// substrings matched against process names. The catalog is a plain data
// table, defined once at startup.
type ServiceCatalogEntry struct {
	Name     string   `yaml:"name"`
	Patterns []string `yaml:"patterns"`
}

// ServiceStatus is the per-tick presence report for one catalog entry.
type ServiceStatus struct {
	Name       string
	Running    bool
	PID        int32
	CPUPercent float64
}

// DefaultCatalog returns the built-in set of well-known background
// services.
func DefaultCatalog() []ServiceCatalogEntry {
	return []ServiceCatalogEntry{
		{Name: "MongoDB", Patterns: []string{"mongo"}},
		{Name: "Redis", Patterns: []string{"redis"}},
		{Name: "MySQL", Patterns: []string{"mysql"}},
		{Name: "PostgreSQL", Patterns: []string{"postgres"}},
		{Name: "Nginx", Patterns: []string{"nginx"}},
		{Name: "Apache", Patterns: []string{"httpd", "apache"}},
		{Name: "Docker", Patterns: []string{"dockerd"}},
		{Name: "SSH", Patterns: []string{"sshd"}},
	}
}

// MatchServices scans the live process list against the catalog. For each
// entry the first process whose lowercased name contains any of the entry's
// substrings wins; there is no scoring. Matching is plain substring
// containment, so "notmongo-unrelated" does match the MongoDB entry.
func MatchServices(procs []ProcessInfo, catalog []ServiceCatalogEntry) []ServiceStatus {
	statuses := make([]ServiceStatus, 0, len(catalog))
	for _, entry := range catalog {
		status := ServiceStatus{Name: entry.Name}
		for _, p := range procs {
			if nameMatches(p.Name, entry.Patterns) {
				status.Running = true
				status.PID = p.PID
				status.CPUPercent = p.CPUPercent
				break
			}
		}
		statuses = append(statuses, status)
	}
	return statuses
}

func nameMatches(name string, patterns []string) bool {
	lower := strings.ToLower(name)
	for _, pat := range patterns {
		if strings.Contains(lower, pat) {
			return true
		}
	}
	return false
}
