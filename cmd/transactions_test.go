package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"
	persediaan "github.com/melinasalsa28/kartu-persediaan"
)

// run executes a command against a flag set parsed from args.
func run(t *testing.T, cmd subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	cmd.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("parsing flags of %q: %v", cmd.Name(), err)
	}
	return cmd.Execute(context.Background(), f)
}

// useTempData points the global data directory at a fresh temp dir.
func useTempData(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	old := *dataDir
	*dataDir = tmp
	t.Cleanup(func() { *dataDir = old })
	return tmp
}

func TestCommands_FullFlow(t *testing.T) {
	tmp := useTempData(t)

	if status := run(t, &addItemCmd{}, "Pensil 2B"); status != subcommands.ExitSuccess {
		t.Fatalf("add-item status = %v", status)
	}
	if status := run(t, &openingCmd{}, "-item", "Pensil 2B", "-q", "100", "-p", "10"); status != subcommands.ExitSuccess {
		t.Fatalf("opening status = %v", status)
	}
	if status := run(t, &buyCmd{}, "-item", "Pensil 2B", "-q", "50", "-p", "12", "-doc", "PO-1"); status != subcommands.ExitSuccess {
		t.Fatalf("buy status = %v", status)
	}
	if status := run(t, &sellCmd{}, "-item", "Pensil 2B", "-q", "30", "-p", "20", "-doc", "INV-7"); status != subcommands.ExitSuccess {
		t.Fatalf("sell status = %v", status)
	}

	store, err := persediaan.LoadStore(tmp, "IDR")
	if err != nil {
		t.Fatal(err)
	}
	rows, err := store.Rows("Pensil 2B")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("persisted %d rows, want 3", len(rows))
	}
	last := rows[2].Balance
	if !last.Qty.Equal(persediaan.Q(120)) {
		t.Errorf("persisted balance qty = %s, want 120", last.Qty)
	}

	if status := run(t, &deleteCmd{}, "-item", "Pensil 2B", "-index", "1"); status != subcommands.ExitSuccess {
		t.Fatalf("delete status = %v", status)
	}
	store, err = persediaan.LoadStore(tmp, "IDR")
	if err != nil {
		t.Fatal(err)
	}
	rows, _ = store.Rows("Pensil 2B")
	if len(rows) != 2 {
		t.Fatalf("after delete: %d rows, want 2", len(rows))
	}
	// The sale is now charged at the opening cost of 10.
	if got := rows[1].Balance; !got.Qty.Equal(persediaan.Q(70)) {
		t.Errorf("after delete: balance qty = %s, want 70", got.Qty)
	}
}

func TestCommands_Rejections(t *testing.T) {
	useTempData(t)

	if status := run(t, &addItemCmd{}, "Spidol"); status != subcommands.ExitSuccess {
		t.Fatalf("add-item status = %v", status)
	}
	if status := run(t, &addItemCmd{}, "Spidol"); status != subcommands.ExitFailure {
		t.Errorf("duplicate add-item status = %v, want failure", status)
	}
	if status := run(t, &sellCmd{}, "-item", "Spidol", "-q", "5", "-p", "10"); status != subcommands.ExitFailure {
		t.Errorf("sell from empty card status = %v, want failure", status)
	}
	if status := run(t, &openingCmd{}, "-item", "Spidol", "-q", "10", "-p", "5"); status != subcommands.ExitSuccess {
		t.Fatalf("opening status = %v", status)
	}
	if status := run(t, &openingCmd{}, "-item", "Spidol", "-q", "20", "-p", "5"); status != subcommands.ExitFailure {
		t.Errorf("second opening status = %v, want failure", status)
	}
	if status := run(t, &openingCmd{}, "-item", "Spidol"); status != subcommands.ExitUsageError {
		t.Errorf("opening without quantity status = %v, want usage error", status)
	}
	if status := run(t, &deleteCmd{}, "-item", "Spidol", "-index", "7"); status != subcommands.ExitFailure {
		t.Errorf("delete out of range status = %v, want failure", status)
	}
}

func TestExportCmd(t *testing.T) {
	useTempData(t)

	if status := run(t, &addItemCmd{}, "Buku"); status != subcommands.ExitSuccess {
		t.Fatal("add-item failed")
	}
	if status := run(t, &openingCmd{}, "-item", "Buku", "-q", "10", "-p", "1000"); status != subcommands.ExitSuccess {
		t.Fatal("opening failed")
	}

	out := filepath.Join(t.TempDir(), "buku.xlsx")
	if status := run(t, &exportCmd{}, "-item", "Buku", "-o", out); status != subcommands.ExitSuccess {
		t.Fatalf("export status = %v", status)
	}
	info, err := os.Stat(out)
	if err != nil {
		t.Fatalf("exported file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("exported file is empty")
	}
}

func TestAddItemCmd_PersistsFile(t *testing.T) {
	tmp := useTempData(t)

	if status := run(t, &addItemCmd{}, "Buku Tulis"); status != subcommands.ExitSuccess {
		t.Fatal("add-item failed")
	}
	data, err := os.ReadFile(filepath.Join(tmp, "Buku Tulis.csv"))
	if err != nil {
		t.Fatalf("card file missing: %v", err)
	}
	if !strings.HasPrefix(string(data), "Tanggal,Doc No,Description") {
		t.Errorf("card file content = %q", data)
	}
}
