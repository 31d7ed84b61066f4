package export

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/markdingo/zonecheck/database"
	"github.com/markdingo/zonecheck/netspace"
	"github.com/markdingo/zonecheck/record"
)

func testNetwork(t *testing.T) *database.Network {
	t.Helper()
	db := database.NewNetwork(netspace.MustParse("192.168.0.0/29"))
	a := netspace.MustParseAddress
	for _, r := range []record.Record{
		record.NewForward("chiya", a("192.168.0.1")),
		record.NewReverse("chino", a("192.168.0.2")),
		record.NewForward("syaro", a("192.168.0.3")),
		record.NewReverse("syaro", a("192.168.0.3")),
	} {
		if err := db.Add(r); err != nil {
			t.Fatal("Setup", err)
		}
	}

	return db
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zonecheck.db")
	for ix := 0; ix < 2; ix++ { // Second open must re-apply the schema without error
		st, err := Open(path)
		if err != nil {
			t.Fatal(ix, err)
		}
		v, err := st.Version()
		if err != nil {
			t.Error(ix, err)
		}
		if v != SchemaVersion {
			t.Error(ix, "Wrong version", v)
		}
		_, ok, err := st.LastDigest()
		if err != nil || ok {
			t.Error(ix, "Empty database should have no digest", ok, err)
		}
		st.Close()
	}

	_, err := Open(filepath.Join(t.TempDir(), "noexist", "zonecheck.db"))
	if err == nil {
		t.Error("Expected error opening in a non-existent directory")
	}
}

func TestSaveRun(t *testing.T) {
	st, err := Open(filepath.Join(t.TempDir(), "zonecheck.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()

	nets := []*database.Network{testNetwork(t)}
	started := time.Date(2024, 3, 4, 5, 6, 7, 0, time.UTC)
	id1, err := st.SaveRun(started, nets, 0xfeedfacecafebeef)
	if err != nil {
		t.Fatal(err)
	}
	id2, err := st.SaveRun(started.Add(time.Minute), nets, 42)
	if err != nil {
		t.Fatal(err)
	}
	if id1 == id2 || len(id1) != 36 {
		t.Error("Run ids are not distinct UUIDs", id1, id2)
	}

	runs, err := st.Runs(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Fatal("Expected 2 runs, got", len(runs))
	}
	if runs[0].ID != id2 || runs[1].ID != id1 {
		t.Error("Runs are not newest first", runs)
	}
	if !runs[1].Started.Equal(started) || runs[1].Digest != 0xfeedfacecafebeef {
		t.Error("Run 1 not stored faithfully", runs[1])
	}
	if runs[1].Networks != 1 || runs[1].Anomalies != 2 { // chiya and chino missing
		t.Error("Wrong run counts", runs[1])
	}

	d, ok, err := st.LastDigest()
	if err != nil || !ok || d != 42 {
		t.Error("LastDigest wrong", d, ok, err)
	}

	var rows int
	err = st.conn.QueryRow("SELECT COUNT(*) FROM host_rows WHERE run_id = ?", id1).Scan(&rows)
	if err != nil {
		t.Fatal(err)
	}
	if rows != 6 { // /29 has six hosts, each with one row
		t.Error("Expected 6 host rows, got", rows)
	}

	var status string
	err = st.conn.QueryRow(`SELECT status FROM host_rows
		WHERE run_id = ? AND address = '192.168.0.3'`, id1).Scan(&status)
	if err != nil || status != "ok" {
		t.Error("syaro row wrong", status, err)
	}

	var kind, target string
	err = st.conn.QueryRow(`SELECT kind, target FROM anomalies
		WHERE run_id = ? AND direction = 'PTR->A'`, id2).Scan(&kind, &target)
	if err != nil || kind != "missing" || target != "chino" {
		t.Error("chino anomaly wrong", kind, target, err)
	}
}
