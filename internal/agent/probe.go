package agent

import "os/exec"

// Probe reports whether an executable is available for invocation.
// It is injectable so tests and the TUI header can substitute fakes.
type Probe func(command string) bool

// LookPathProbe checks availability via PATH resolution.
func LookPathProbe(command string) bool {
	_, err := exec.LookPath(command)
	return err == nil
}

// FilterAvailable returns the subset of agents whose executables the probe
// finds, preserving roster order. The availability map covers the full input
// roster so callers can report which agents are missing.
func FilterAvailable(roster []Agent, probe Probe) ([]Agent, map[Name]bool) {
	if probe == nil {
		probe = LookPathProbe
	}

	available := make(map[Name]bool, len(roster))
	var active []Agent
	for _, a := range roster {
		ok := probe(a.Command())
		available[a.Name()] = ok
		if ok {
			active = append(active, a)
		}
	}
	return active, available
}
