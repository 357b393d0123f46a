package plan

import (
	"github.com/sdefoundry/sdectl/internal/apperrors"
	"github.com/sdefoundry/sdectl/internal/sysinfo"
)

// ExpectedMaxMemUsageMB models the peak memory of N parallel compiler
// jobs. The compiler's unity build holds one process around 4.5 GB with
// 2-3 GB neighbors, so overestimate slightly: 2 GB base + 4 GB per job.
func ExpectedMaxMemUsageMB(jobs int) int {
	return 2048 + jobs*4096
}

// MaxParallelJobs returns the largest job count whose expected memory
// usage fits in availMemMB, clamped to cpuCount.
func MaxParallelJobs(availMemMB, cpuCount int) int {
	jobs := 0
	for ExpectedMaxMemUsageMB(jobs+1) <= availMemMB {
		jobs++
	}
	if jobs > cpuCount {
		jobs = cpuCount
	}
	return jobs
}

// JobEstimate is the result of sizing parallel jobs against the host.
type JobEstimate struct {
	Jobs          int
	AvailableMB   int
	MinRequiredMB int // memory needed for a single job
}

// EstimateJobs probes the host once and sizes the parallel job count.
// A host that cannot fit even one job yields a ResourceError; the build
// must not be attempted.
func EstimateJobs(prober sysinfo.Prober) (JobEstimate, error) {
	availMB, err := prober.TotalMemoryMB()
	if err != nil {
		return JobEstimate{}, err
	}
	est := JobEstimate{
		Jobs:          MaxParallelJobs(availMB, prober.CPUCount()),
		AvailableMB:   availMB,
		MinRequiredMB: ExpectedMaxMemUsageMB(1),
	}
	if est.Jobs < 1 {
		return est, apperrors.NewResourceError(est.MinRequiredMB, est.AvailableMB)
	}
	return est, nil
}
