package main

import (
	"testing"
)

func TestClassifyCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, "classify", "Spider-Man: No Way Home",
		"--distributor", "Sony Pictures Releasing")
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	requireContains(t, out, "Franchise: Spider-Man")
	requireContains(t, out, "Sequel: yes")
	requireContains(t, out, "Studio: Sony Pictures (major)")
}

func TestClassifyCommandPlainTitle(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, "classify", "Inception")
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	requireContains(t, out, "Franchise: -")
	requireContains(t, out, "Sequel: no")
	requireContains(t, out, "Remake: no")
}
