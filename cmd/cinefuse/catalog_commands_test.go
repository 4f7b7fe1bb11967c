package main

import (
	"testing"
)

func TestCatalogImportAndStats(t *testing.T) {
	env := setupCLITestEnv(t)

	catalog := writeTestFile(t, env.baseDir, "catalog.csv", testCatalogCSV)

	out, _, err := runCLI(t, env, "catalog", "import", catalog)
	if err != nil {
		t.Fatalf("catalog import: %v", err)
	}
	requireContains(t, out, "Imported 2 records")

	out, _, err = runCLI(t, env, "catalog", "stats")
	if err != nil {
		t.Fatalf("catalog stats: %v", err)
	}
	requireContains(t, out, "Records:  2")
}

func TestFuseAgainstImportedCatalog(t *testing.T) {
	env := setupCLITestEnv(t)

	catalog := writeTestFile(t, env.baseDir, "catalog.csv", testCatalogCSV)
	ledger := writeTestFile(t, env.baseDir, "ledger.csv", testLedgerCSV)

	if _, _, err := runCLI(t, env, "catalog", "import", catalog); err != nil {
		t.Fatalf("catalog import: %v", err)
	}

	_, stderr, err := runCLI(t, env, "fuse", "--ledger", ledger, "--format", "json")
	if err != nil {
		t.Fatalf("fuse: %v", err)
	}
	requireContains(t, stderr, "2 exact")
}

func TestFuseFailsOnEmptyCatalogDatabase(t *testing.T) {
	env := setupCLITestEnv(t)

	ledger := writeTestFile(t, env.baseDir, "ledger.csv", testLedgerCSV)

	_, _, err := runCLI(t, env, "fuse", "--ledger", ledger)
	if err == nil {
		t.Fatal("expected error for empty catalog database")
	}
}
