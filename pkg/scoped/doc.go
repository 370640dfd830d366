// Package scoped provides guards that acquire a disposable resource at
// construction and release it exactly once when the owning scope ends.
//
// Acquisition happens inside the constructor; a constructor error means no
// guard exists and there is nothing to clean up. Release runs the cleanup
// and is meant to be deferred so it executes on every exit path:
//
//	dir, err := scoped.NewTempDir()
//	if err != nil {
//		return err
//	}
//	defer dir.MustRelease()
//
// MustRelease panics when cleanup fails: a scratch resource that cannot be
// released signals an environment too inconsistent for the test run to
// keep going.
//
// Guards of different kinds nest freely; deferred releases run in reverse
// order of acquisition. Two live EnvVar guards on the same variable name
// are a caller error, see EnvVar.
package scoped
