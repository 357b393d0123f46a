package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdefoundry/sdectl/internal/apperrors"
	"github.com/sdefoundry/sdectl/internal/sysinfo"
)

func TestExpectedMaxMemUsageMB(t *testing.T) {
	assert.Equal(t, 6144, ExpectedMaxMemUsageMB(1))
	assert.Equal(t, 10240, ExpectedMaxMemUsageMB(2))
}

func TestMaxParallelJobs(t *testing.T) {
	// 6144 MB fits exactly one job (two would need 10240).
	assert.Equal(t, 1, MaxParallelJobs(6144, 8))
	assert.Equal(t, 2, MaxParallelJobs(10240, 8))
	// Just below the single-job threshold.
	assert.Equal(t, 0, MaxParallelJobs(6143, 8))
}

func TestMaxParallelJobs_CPUClamp(t *testing.T) {
	// Memory allows 4 jobs but only 2 CPUs are present.
	memFor4 := ExpectedMaxMemUsageMB(4)
	assert.Equal(t, 2, MaxParallelJobs(memFor4, 2))
}

func TestEstimateJobs(t *testing.T) {
	est, err := EstimateJobs(sysinfo.Static{MemoryMB: 10240, CPUs: 8})
	require.NoError(t, err)
	assert.Equal(t, 2, est.Jobs)
	assert.Equal(t, 10240, est.AvailableMB)
	assert.Equal(t, 6144, est.MinRequiredMB)
}

func TestEstimateJobs_LowMemory(t *testing.T) {
	est, err := EstimateJobs(sysinfo.Static{MemoryMB: 4096, CPUs: 8})
	require.Error(t, err)

	var resErr *apperrors.ResourceError
	require.ErrorAs(t, err, &resErr)
	assert.Equal(t, 6144, resErr.RequiredMB)
	assert.Equal(t, 4096, resErr.AvailableMB)
	assert.Equal(t, 0, est.Jobs)
}
