package message

// Property names as they appear in decode results.
const (
	LearningPercentage  = "learning_percentage"
	LearningFromScratch = "learning_from_scratch"
	VibrationLevel      = "vibration_level"
	PeakFrequencyIndex  = "peak_frequency_index"
	Temperature         = "temperature"
	FFT                 = "fft"

	AnomalyLevel        = "anomaly_level"
	VibrationPercentage = "vibration_percentage"
	GoodVibration       = "good_vibration"
	NbAlarmReport       = "nb_alarm_report"
	ReportLength        = "report_length"
	ReportID            = "report_id"
	BatteryPercentage   = "battery_percentage"

	BadVibrationPercentage1020  = "bad_vibration_percentage_10_20"
	BadVibrationPercentage2040  = "bad_vibration_percentage_20_40"
	BadVibrationPercentage4060  = "bad_vibration_percentage_40_60"
	BadVibrationPercentage6080  = "bad_vibration_percentage_60_80"
	BadVibrationPercentage80100 = "bad_vibration_percentage_80_100"

	AnomalyLevelTo20Last24h = "anomaly_level_to_20_last_24h"
	AnomalyLevelTo50Last24h = "anomaly_level_to_50_last_24h"
	AnomalyLevelTo80Last24h = "anomaly_level_to_80_last_24h"
	AnomalyLevelTo20Last30d = "anomaly_level_to_20_last_30d"
	AnomalyLevelTo50Last30d = "anomaly_level_to_50_last_30d"
	AnomalyLevelTo80Last30d = "anomaly_level_to_80_last_30d"
	AnomalyLevelTo20Last6mo = "anomaly_level_to_20_last_6mo"
	AnomalyLevelTo50Last6mo = "anomaly_level_to_50_last_6mo"
	AnomalyLevelTo80Last6mo = "anomaly_level_to_80_last_6mo"

	State = "state"
)

// Derived property names.
const (
	OperatingTime           = "operating_time"
	TotalOperatingTimeKnown = "total_operating_time_known"
	TotalUnknown1020        = "total_unknown_10_20"
	TotalUnknown2040        = "total_unknown_20_40"
	TotalUnknown4060        = "total_unknown_40_60"
	TotalUnknown6080        = "total_unknown_60_80"
	TotalUnknown80100       = "total_unknown_80_100"
)

// VibrationBucket pairs a bad-vibration percentage with the unknown time it
// produces.
type VibrationBucket struct {
	Percentage string
	Unknown    string
}

// VibrationBuckets lists the report buckets from 10-20% to 80-100%.
var VibrationBuckets = []VibrationBucket{
	{BadVibrationPercentage1020, TotalUnknown1020},
	{BadVibrationPercentage2040, TotalUnknown2040},
	{BadVibrationPercentage4060, TotalUnknown4060},
	{BadVibrationPercentage6080, TotalUnknown6080},
	{BadVibrationPercentage80100, TotalUnknown80100},
}
