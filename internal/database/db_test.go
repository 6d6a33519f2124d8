package database

import "testing"

func TestInitDBFailureLeavesNilHandle(t *testing.T) {
	// Unreachable host: Ping must fail and the package handle must stay
	// nil so handlers report 503 instead of erroring on a dead connection.
	dsn := "host=127.0.0.1 port=1 user=nobody dbname=nothing sslmode=disable connect_timeout=1"

	if err := InitDB(dsn); err == nil {
		t.Fatal("expected InitDB to fail against unreachable host")
	}
	if DB != nil {
		t.Error("DB is non-nil after failed InitDB, degraded mode never engages")
	}
}
