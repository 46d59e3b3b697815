package collectors

import "testing"

func TestMatchServices_CaseInsensitiveSubstring(t *testing.T) {
	procs := []ProcessInfo{
		{PID: 10, Name: "systemd", CPUPercent: 0.1},
		{PID: 42, Name: "MongoDB Server", CPUPercent: 3.7},
	}
	statuses := MatchServices(procs, []ServiceCatalogEntry{
		{Name: "MongoDB", Patterns: []string{"mongo"}},
	})

	if len(statuses) != 1 {
		t.Fatalf("got %d statuses, want 1", len(statuses))
	}
	st := statuses[0]
	if !st.Running {
		t.Error("expected MongoDB to be running")
	}
	if st.PID != 42 {
		t.Errorf("PID = %d, want 42", st.PID)
	}
	if st.CPUPercent != 3.7 {
		t.Errorf("CPUPercent = %f, want 3.7", st.CPUPercent)
	}
}

// Containment, not token matching: an unrelated process whose name merely
// contains the substring still matches.
func TestMatchServices_ContainmentNotExactToken(t *testing.T) {
	procs := []ProcessInfo{{PID: 7, Name: "notmongo-unrelated"}}
	statuses := MatchServices(procs, []ServiceCatalogEntry{
		{Name: "MongoDB", Patterns: []string{"mongo"}},
	})
	if !statuses[0].Running {
		t.Error("expected substring containment to match notmongo-unrelated")
	}
}

func TestMatchServices_FirstMatchWins(t *testing.T) {
	procs := []ProcessInfo{
		{PID: 1, Name: "redis-sentinel", CPUPercent: 0.5},
		{PID: 2, Name: "redis-server", CPUPercent: 9.5},
	}
	statuses := MatchServices(procs, []ServiceCatalogEntry{
		{Name: "Redis", Patterns: []string{"redis"}},
	})
	if statuses[0].PID != 1 {
		t.Errorf("PID = %d, want first match 1", statuses[0].PID)
	}
}

func TestMatchServices_Stopped(t *testing.T) {
	statuses := MatchServices(nil, DefaultCatalog())
	if len(statuses) != len(DefaultCatalog()) {
		t.Fatalf("got %d statuses, want %d", len(statuses), len(DefaultCatalog()))
	}
	for _, st := range statuses {
		if st.Running {
			t.Errorf("%s reported running with no processes", st.Name)
		}
	}
}

func TestMatchServices_MultiplePatterns(t *testing.T) {
	procs := []ProcessInfo{{PID: 3, Name: "apache2"}}
	statuses := MatchServices(procs, []ServiceCatalogEntry{
		{Name: "Apache", Patterns: []string{"httpd", "apache"}},
	})
	if !statuses[0].Running {
		t.Error("expected apache2 to match the second pattern")
	}
}
