// Package testutil provides shared helpers for tests that need city dataset
// files on disk. Every helper writes into t.TempDir, so files are removed
// automatically when the test finishes.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// ChicagoCSV is a small Chicago-shaped dataset: it carries every optional
// column, one fractional trip duration and one row with blank demographics.
const ChicagoCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year
1423854,2017-06-23 15:09:32,2017-06-23 15:14:53,321,Wood St & Hubbard St,Damen Ave & Chicago Ave,Subscriber,Male,1992.0
955915,2017-05-25 18:19:03,2017-05-25 18:45:53,1610.5,Theater on the Lake,Sheffield Ave & Waveland Ave,Subscriber,Female,1992.0
9031,2017-01-04 08:27:49,2017-01-04 08:34:45,416,May St & Taylor St,Wood St & Taylor St,Subscriber,,
`

// WashingtonCSV is a small Washington-shaped dataset: no Gender and no
// Birth Year columns, fractional durations.
const WashingtonCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type
1621326,2017-06-21 08:36:34,2017-06-21 08:44:43,489.066,14th & Belmont St NW,15th & K St NW,Subscriber
482740,2017-03-11 10:40:00,2017-03-11 10:46:00,402.549,Yuma St & Tenley Circle NW,Connecticut Ave & Yuma St NW,Subscriber
`

// DataDir writes each file name → CSV body pair into a fresh temporary
// directory and returns its path, ready to pass to repo.NewRegistry.
func DataDir(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600); err != nil {
			t.Fatalf("testutil.DataDir: write %s: %v", name, err)
		}
	}
	return dir
}
