package system

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/vdc-display/internal/cli"
	"github.com/julianstephens/vdc-display/internal/constants"
	"github.com/julianstephens/vdc-display/internal/keyring"
	"github.com/julianstephens/vdc-display/internal/models"
	"github.com/julianstephens/vdc-display/internal/progress"
	"github.com/julianstephens/vdc-display/internal/storage"
)

var (
	findProcessesFunc = ps.Processes
	getpidFunc        = os.Getpid
	keyringAvailable  = keyring.IsAvailable
)

const doctorTimeout = 10 * time.Second

// DoctorCmd checks that the display can read the shared database
type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Fprintln(stdout, "Running diagnostics...")
	fmt.Fprintln(stdout)

	checkCtx, cancel := context.WithTimeout(context.Background(), doctorTimeout)
	defer cancel()

	hasError := false
	dbReachable := false

	fmt.Fprintf(stdout, "✓ Configuration: OK\n")
	fmt.Fprintf(stdout, "   Database: %s\n", ctx.Reader.Describe())
	fmt.Fprintf(stdout, "   Refresh: every %d minutes\n", ctx.Config.RefreshMinutes())
	fmt.Fprintf(stdout, "   Port: %d\n", ctx.Config.Port)

	if ctx.Config.DatabasePath == constants.KeyringDatabasePath {
		if keyringAvailable() {
			fmt.Fprintf(stdout, "✓ OS keyring: OK\n")
		} else {
			fmt.Fprintf(stdout, "❌ OS keyring: FAIL\n")
			fmt.Fprintf(stdout, "   Error: %v\n", keyring.ErrKeyringUnavailable)
			hasError = true
		}
	}

	if err := checkDBReachable(checkCtx, ctx.Reader); err != nil {
		fmt.Fprintf(stdout, "❌ Database reachable: FAIL\n")
		fmt.Fprintf(stdout, "   Error: %v\n", err)
		fmt.Fprintf(stdout, "   The display will show demo data until this is fixed.\n")
		hasError = true
	} else {
		fmt.Fprintf(stdout, "✓ Database reachable: OK\n")
		dbReachable = true
	}

	if dbReachable {
		if err := checkSchema(checkCtx, ctx.Reader); err != nil {
			fmt.Fprintf(stdout, "❌ Schema: FAIL\n")
			fmt.Fprintf(stdout, "   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Fprintf(stdout, "✓ Schema: OK\n")
		}
	} else {
		fmt.Fprintf(stdout, "⊘ Schema: SKIPPED (database not reachable)\n")
	}

	if err := checkClockTimezone(nowFunc()); err != nil {
		fmt.Fprintf(stdout, "❌ Clock/timezone: FAIL\n")
		fmt.Fprintf(stdout, "   Error: %v\n", err)
		hasError = true
	} else {
		now := nowFunc()
		zone, _ := now.Zone()
		fmt.Fprintf(stdout, "✓ Clock/timezone: OK (%s, %s)\n", zone, progress.ShiftLabel(progress.CurrentShift(now)))
	}

	if pids, err := runningDisplays(); err != nil {
		fmt.Fprintf(stdout, "⚠ Running displays: WARNING\n")
		fmt.Fprintf(stdout, "   could not list processes: %v\n", err)
	} else if len(pids) > 0 {
		fmt.Fprintf(stdout, "⚠ Running displays: %d other %s process(es) (pid %s)\n",
			len(pids), constants.AppName, joinInts(pids))
	} else {
		fmt.Fprintf(stdout, "✓ Running displays: none\n")
	}

	fmt.Fprintln(stdout)
	if hasError {
		fmt.Fprintln(stdout, "Diagnostics completed with errors.")
		return errors.New("one or more health checks failed")
	}

	fmt.Fprintln(stdout, "All diagnostics passed!")
	return nil
}

func checkDBReachable(ctx context.Context, reader storage.Reader) error {
	now := nowFunc()
	_, err := reader.Fetch(ctx, models.Query{Shift: progress.CurrentShift(now), Date: now})
	return err
}

func checkSchema(ctx context.Context, reader storage.Reader) error {
	inspector, ok := reader.(storage.Inspector)
	if !ok {
		return nil
	}
	missing, err := inspector.MissingTables(ctx)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing tables: %s", strings.Join(missing, ", "))
	}
	return nil
}

func checkClockTimezone(now time.Time) error {
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}

// runningDisplays returns the pids of other vdc-display processes on this host
func runningDisplays() ([]int, error) {
	procs, err := findProcessesFunc()
	if err != nil {
		return nil, err
	}
	self := getpidFunc()
	var pids []int
	for _, p := range procs {
		if p.Pid() == self {
			continue
		}
		if strings.HasPrefix(p.Executable(), constants.AppName) {
			pids = append(pids, p.Pid())
		}
	}
	return pids, nil
}

func joinInts(v []int) string {
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = fmt.Sprint(n)
	}
	return strings.Join(parts, ", ")
}
