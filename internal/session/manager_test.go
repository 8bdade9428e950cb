package session_test

import (
	"sync"
	"testing"

	"github.com/nixpig/hpctools/internal/session"
)

func TestManager(t *testing.T) {
	t.Parallel()

	t.Run("Test concurrent starts on one port submit once", func(t *testing.T) {
		t.Parallel()

		cluster := newTestCluster(t, "RUNNING")
		m := session.NewManager(session.Config{ScriptsPath: testScriptsPath}, cluster, nil)
		defer m.Shutdown()

		starts := 10

		results := make(chan *session.StartResult, starts)
		errs := make(chan error, starts)

		var wg sync.WaitGroup

		for range starts {
			wg.Go(func() {
				result, err := m.Start(t.Context(), testPort, session.StartOptions{})
				if err != nil {
					errs <- err
					return
				}

				results <- result
			})
		}

		wg.Wait()
		close(results)
		close(errs)

		for err := range errs {
			t.Errorf("expected not to receive error: got '%v'", err)
		}

		var submitted, noops int
		for r := range results {
			if r.AlreadyActive {
				noops++
			} else {
				submitted++
			}
		}

		if submitted != 1 || noops != starts-1 {
			t.Errorf(
				"expected one submission and %d no-ops: got '%d' and '%d'",
				starts-1,
				submitted,
				noops,
			)
		}

		if n := len(cluster.Submitted()); n != 1 {
			t.Errorf("expected one submitted job: got '%d'", n)
		}
	})

	t.Run("Test status and stop", func(t *testing.T) {
		t.Parallel()

		cluster := newTestCluster(t, "RUNNING")
		m := session.NewManager(session.Config{ScriptsPath: testScriptsPath}, cluster, nil)

		started, err := m.Start(t.Context(), testPort, session.StartOptions{})
		if err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}

		status, err := m.Status(t.Context(), testPort)
		if err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}

		if !status.Active || status.Metadata.JobID != started.JobID {
			t.Errorf("expected active status for job '%s': got '%+v'", started.JobID, status)
		}

		stopped, err := m.Stop(t.Context(), testPort)
		if err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}

		if !stopped.Stopped {
			t.Errorf("expected session to be stopped")
		}
	})

	t.Run("Test other port is independent", func(t *testing.T) {
		t.Parallel()

		cluster := newTestCluster(t, "RUNNING")
		m := session.NewManager(session.Config{ScriptsPath: testScriptsPath}, cluster, nil)

		if _, err := m.Start(t.Context(), testPort, session.StartOptions{}); err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}

		// Jobs only write metadata for testPort, so 9011 never looks active.
		status, err := m.Status(t.Context(), 9011)
		if err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}

		if status.Active {
			t.Errorf("expected port 9011 to be inactive")
		}
	})

	t.Run("Test invalid port", func(t *testing.T) {
		t.Parallel()

		m := session.NewManager(session.Config{}, newTestCluster(t, "RUNNING"), nil)

		if _, err := m.Status(t.Context(), 0); err == nil {
			t.Errorf("expected to receive error")
		}
	})
}
