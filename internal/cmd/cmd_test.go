package cmd

import "testing"

func TestRootHasSubcommands(t *testing.T) {
	want := map[string]bool{"start": false, "agents": false}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("root command missing subcommand %q", name)
		}
	}
}

func TestStartFlags(t *testing.T) {
	for _, name := range []string{"topic", "rounds"} {
		if startCmd.Flags().Lookup(name) == nil {
			t.Errorf("start command missing flag %q", name)
		}
	}
}
