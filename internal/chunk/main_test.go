package chunk

import (
	"fmt"
	"os"
	"testing"
	"time"
)

// helperEnv switches the test binary into chunk child mode so the spawner
// can re-execute it like the real memfill binary.
const helperEnv = "MEMFILL_CHUNK_TEST_HELPER"

func TestMain(m *testing.M) {
	switch os.Getenv(helperEnv) {
	case "hold":
		os.Exit(RunChild(os.Args[1:], os.Stdout, os.Stderr))
	case "hang":
		// never reports readiness
		time.Sleep(time.Minute)
		os.Exit(0)
	case "crash":
		os.Exit(3)
	case "garbage":
		fmt.Println("not ready")
		time.Sleep(time.Minute)
		os.Exit(0)
	}

	os.Exit(m.Run())
}
