package collector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sysglance/model"
)

const ataSmartSample = `{
  "model_name": "Samsung SSD 860 EVO 1TB",
  "serial_number": "S3Z9NB0K123456A",
  "user_capacity": {"bytes": 1000204886016},
  "rotation_rate": 0,
  "smart_status": {"passed": true},
  "temperature": {"current": 31},
  "power_on_time": {"hours": 12345},
  "power_cycle_count": 87,
  "ata_smart_attributes": {
    "table": [
      {"id": 5, "name": "Reallocated_Sector_Ct", "value": 100, "raw": {"value": 2}},
      {"id": 197, "name": "Current_Pending_Sector", "value": 100, "raw": {"value": 1}},
      {"id": 198, "name": "Offline_Uncorrectable", "value": 100, "raw": {"value": 3}},
      {"id": 231, "name": "SSD_Life_Left", "value": 93, "raw": {"value": 93}},
      {"id": 194, "name": "Temperature_Celsius", "value": 69, "raw": {"value": 31}}
    ]
  }
}`

const nvmeSmartSample = `{
  "model_name": "WD_BLACK SN850X 2000GB",
  "smart_status": {"passed": true},
  "nvme_smart_health_information_log": {
    "temperature": 42,
    "percentage_used": 5,
    "media_errors": 2,
    "num_err_log_entries": 3,
    "power_cycles": 211,
    "power_on_hours": 4321
  }
}`

func TestApplySmartJSON_ATA(t *testing.T) {
	d := model.DriveRecord{Name: "sda", Device: "/dev/sda", Bus: model.BusSSD}
	require.NoError(t, ApplySmartJSON([]byte(ataSmartSample), &d))

	assert.Equal(t, model.HealthPassed, d.Health)
	assert.Equal(t, "Samsung SSD 860 EVO 1TB", d.Model)
	assert.Equal(t, uint64(1000204886016), d.Capacity)
	assert.Equal(t, 31, d.Temperature)
	assert.Equal(t, 12345, d.PowerOnHours)
	assert.Equal(t, 87, d.PowerCycles)
	assert.Equal(t, 2, d.ReallocSectors)
	assert.Equal(t, 1, d.PendingSectors)
	assert.Equal(t, 3, d.UncorrSectors)
	assert.Equal(t, 6, d.TotalErrors())
	assert.Equal(t, model.WearPctRemaining, d.WearKind)
	assert.Equal(t, 93, d.WearPct)
}

func TestApplySmartJSON_NVMe(t *testing.T) {
	d := model.DriveRecord{Name: "nvme0n1", Device: "/dev/nvme0n1", Bus: model.BusNVMe}
	require.NoError(t, ApplySmartJSON([]byte(nvmeSmartSample), &d))

	assert.Equal(t, model.HealthPassed, d.Health)
	assert.Equal(t, model.WearPctUsed, d.WearKind)
	assert.Equal(t, 5, d.WearPct)
	assert.Equal(t, 2, d.MediaErrors)
	assert.Equal(t, 3, d.ErrLogEntries)
	// NVMe error totals come from the health log, not sector counters.
	assert.Equal(t, 5, d.TotalErrors())
	assert.Equal(t, 42, d.Temperature)
	assert.Equal(t, 4321, d.PowerOnHours)
	assert.Equal(t, 211, d.PowerCycles)
}

func TestApplySmartJSON_NoVerdictIsUnknown(t *testing.T) {
	d := model.DriveRecord{Name: "sdb", Bus: model.BusHDD}
	require.NoError(t, ApplySmartJSON([]byte(`{"model_name": "Old Drive"}`), &d))
	assert.Equal(t, model.HealthUnknown, d.Health)
	assert.Equal(t, "Old Drive", d.Model)
}

func TestApplySmartJSON_FailedVerdict(t *testing.T) {
	d := model.DriveRecord{Name: "sdc"}
	require.NoError(t, ApplySmartJSON([]byte(`{"smart_status": {"passed": false}}`), &d))
	assert.Equal(t, model.HealthFailed, d.Health)
}

func TestApplySmartJSON_RotationRateReclassifies(t *testing.T) {
	d := model.DriveRecord{Name: "sdd", Bus: model.BusUnknown}
	require.NoError(t, ApplySmartJSON([]byte(`{"rotation_rate": 7200}`), &d))
	assert.Equal(t, model.BusHDD, d.Bus)

	d = model.DriveRecord{Name: "sde", Bus: model.BusUnknown}
	require.NoError(t, ApplySmartJSON([]byte(`{"rotation_rate": 0}`), &d))
	assert.Equal(t, model.BusSSD, d.Bus)

	// NVMe classification from the name is never overridden.
	d = model.DriveRecord{Name: "nvme1n1", Bus: model.BusNVMe}
	require.NoError(t, ApplySmartJSON([]byte(`{"rotation_rate": 7200}`), &d))
	assert.Equal(t, model.BusNVMe, d.Bus)
}

func TestApplySmartJSON_MalformedDegradesOneRecord(t *testing.T) {
	good := model.DriveRecord{Name: "sda", Bus: model.BusSSD}
	bad := model.DriveRecord{Name: "sdb", Bus: model.BusHDD, Health: model.HealthUnknown}

	require.NoError(t, ApplySmartJSON([]byte(ataSmartSample), &good))
	assert.Error(t, ApplySmartJSON([]byte(`{"truncated": `), &bad))

	// The failing record keeps its seed fields; the good one is intact.
	assert.Equal(t, model.HealthUnknown, bad.Health)
	assert.Equal(t, "sdb", bad.Name)
	assert.Equal(t, model.HealthPassed, good.Health)
}
