package generator

import "sync"

type runStat struct {
	mu            sync.Mutex
	organizations uint
	repositories  uint
	files         uint
	failures      uint
}

func (rs *runStat) IncreaseOrganization(value uint) {
	rs.mu.Lock()
	rs.organizations += value
	rs.mu.Unlock()
}

func (rs *runStat) IncreaseRepositories(value uint) {
	rs.mu.Lock()
	rs.repositories += value
	rs.mu.Unlock()
}

func (rs *runStat) IncreaseFiles(value uint) {
	rs.mu.Lock()
	rs.files += value
	rs.mu.Unlock()
}

func (rs *runStat) IncreaseFailures(value uint) {
	rs.mu.Lock()
	rs.failures += value
	rs.mu.Unlock()
}

func (rs *runStat) Reset() {
	rs.mu.Lock()
	rs.organizations, rs.repositories, rs.files, rs.failures = 0, 0, 0, 0
	rs.mu.Unlock()
}

// Stat is a snapshot of the counters of a run
type Stat struct {
	Organizations uint
	Repositories  uint
	Files         uint
	Failures      uint
}

func (rs *runStat) Snapshot() Stat {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return Stat{
		Organizations: rs.organizations,
		Repositories:  rs.repositories,
		Files:         rs.files,
		Failures:      rs.failures,
	}
}
