package collector

import (
	"encoding/json"
	"os/exec"

	"sysglance/model"
)

// SMARTCollector fills drive records with smartctl health telemetry.
// smartctl's absence skips the pass entirely; a device it cannot query
// keeps its sysfs fields and an Unknown verdict, so one bad device
// never suppresses the rest of the table.
type SMARTCollector struct{}

func (c *SMARTCollector) Name() string { return "smart" }

func (c *SMARTCollector) Collect(rep *model.StorageReport) error {
	path, err := exec.LookPath("smartctl")
	if err != nil {
		return err
	}
	for i := range rep.Drives {
		queryDevice(path, &rep.Drives[i])
	}
	return nil
}

func queryDevice(smartctlPath string, d *model.DriveRecord) {
	out, err := exec.Command(smartctlPath, "-a", "--json", d.Device).Output()
	if err != nil && len(out) == 0 {
		// smartctl sets non-zero exit bits for many non-fatal
		// conditions; only an empty response is a hard failure.
		d.ErrorString = err.Error()
		return
	}
	if err := ApplySmartJSON(out, d); err != nil {
		d.ErrorString = "parse error"
	}
}

// smartctlJSON is the relevant subset of smartctl --json output.
// SmartStatus is a pointer so "tool did not report a verdict" stays
// distinguishable from "verdict: failed".
type smartctlJSON struct {
	ModelFamily  string `json:"model_family"`
	ModelName    string `json:"model_name"`
	SerialNumber string `json:"serial_number"`
	UserCapacity struct {
		Bytes uint64 `json:"bytes"`
	} `json:"user_capacity"`
	RotationRate *int `json:"rotation_rate"`
	SmartStatus  *struct {
		Passed bool `json:"passed"`
	} `json:"smart_status"`
	Temperature struct {
		Current int `json:"current"`
	} `json:"temperature"`
	PowerOnTime struct {
		Hours int `json:"hours"`
	} `json:"power_on_time"`
	PowerCycleCount    int `json:"power_cycle_count"`
	ATASmartAttributes struct {
		Table []struct {
			ID    int    `json:"id"`
			Name  string `json:"name"`
			Value int    `json:"value"`
			Raw   struct {
				Value int `json:"value"`
			} `json:"raw"`
		} `json:"table"`
	} `json:"ata_smart_attributes"`
	NVMeSmartHealthLog *struct {
		Temperature    int `json:"temperature"`
		PercentageUsed int `json:"percentage_used"`
		MediaErrors    int `json:"media_errors"`
		NumErrLogs     int `json:"num_err_log_entries"`
		PowerCycles    int `json:"power_cycles"`
		PowerOnHours   int `json:"power_on_hours"`
	} `json:"nvme_smart_health_information_log"`
}

// ApplySmartJSON merges one smartctl --json response into a drive
// record. Every field is optional; whatever is missing keeps the
// record's existing value.
func ApplySmartJSON(out []byte, d *model.DriveRecord) error {
	var data smartctlJSON
	if err := json.Unmarshal(out, &data); err != nil {
		return err
	}

	switch {
	case data.SmartStatus == nil:
		d.Health = model.HealthUnknown
	case data.SmartStatus.Passed:
		d.Health = model.HealthPassed
	default:
		d.Health = model.HealthFailed
	}

	if data.ModelName != "" {
		d.Model = data.ModelName
	} else if data.ModelFamily != "" {
		d.Model = data.ModelFamily
	}
	if data.SerialNumber != "" {
		d.Serial = data.SerialNumber
	}
	if data.UserCapacity.Bytes > 0 {
		d.Capacity = data.UserCapacity.Bytes
	}
	d.Temperature = data.Temperature.Current
	d.PowerOnHours = data.PowerOnTime.Hours
	d.PowerCycles = data.PowerCycleCount

	// The rotational sysfs flag can misreport some USB bridges; a
	// reported rotation rate is more authoritative when present.
	if d.Bus != model.BusNVMe && data.RotationRate != nil {
		if *data.RotationRate > 0 {
			d.Bus = model.BusHDD
		} else {
			d.Bus = model.BusSSD
		}
	}

	if log := data.NVMeSmartHealthLog; log != nil {
		d.WearPct = log.PercentageUsed
		d.WearKind = model.WearPctUsed
		d.MediaErrors = log.MediaErrors
		d.ErrLogEntries = log.NumErrLogs
		if d.Temperature == 0 {
			d.Temperature = log.Temperature
		}
		if d.PowerCycles == 0 {
			d.PowerCycles = log.PowerCycles
		}
		if d.PowerOnHours == 0 {
			d.PowerOnHours = log.PowerOnHours
		}
	}

	for _, attr := range data.ATASmartAttributes.Table {
		switch attr.ID {
		case 5: // Reallocated_Sector_Ct
			d.ReallocSectors = attr.Raw.Value
		case 197: // Current_Pending_Sector
			d.PendingSectors = attr.Raw.Value
		case 198: // Offline_Uncorrectable
			d.UncorrSectors = attr.Raw.Value
		case 177, 231, 233: // Wear_Leveling_Count / SSD_Life_Left / Media_Wearout_Indicator
			if attr.Value > 0 && attr.Value <= 100 && d.WearKind == model.WearNone {
				d.WearPct = attr.Value
				d.WearKind = model.WearPctRemaining
			}
		case 194: // Temperature_Celsius
			if d.Temperature == 0 {
				d.Temperature = attr.Raw.Value
			}
		case 12: // Power_Cycle_Count
			if d.PowerCycles == 0 {
				d.PowerCycles = attr.Raw.Value
			}
		}
	}
	return nil
}
