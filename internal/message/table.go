package message

var definitions = [...]Definition{
	Learning: {
		Kind:          Learning,
		ByteLength:    40,
		Signification: [2]byte{MPU6500: 'L', KX: 'l'},
		Fields: []FieldSpec{
			single(LearningPercentage, 1),
			multi(VibrationLevel, 2, 3, 4),
			single(PeakFrequencyIndex, 5),
			single(Temperature, 6),
			single(LearningFromScratch, 7),
			multi(FFT, span(8, 39)...),
		},
	},
	Report: {
		Kind:          Report,
		ByteLength:    27,
		Signification: [2]byte{MPU6500: 'R', KX: 'r'},
		Fields: []FieldSpec{
			single(AnomalyLevel, 1),
			single(VibrationPercentage, 2),
			single(GoodVibration, 3),
			single(NbAlarmReport, 4),
			single(Temperature, 5),
			single(ReportLength, 6),
			single(ReportID, 7),
			multi(VibrationLevel, 8, 9, 10),
			single(PeakFrequencyIndex, 11),
			single(BadVibrationPercentage1020, 12),
			single(BadVibrationPercentage2040, 13),
			single(BadVibrationPercentage4060, 14),
			single(BadVibrationPercentage6080, 15),
			single(BadVibrationPercentage80100, 16),
			single(BatteryPercentage, 17),
			single(AnomalyLevelTo20Last24h, 18),
			single(AnomalyLevelTo50Last24h, 19),
			single(AnomalyLevelTo80Last24h, 20),
			single(AnomalyLevelTo20Last30d, 21),
			single(AnomalyLevelTo50Last30d, 22),
			single(AnomalyLevelTo80Last30d, 23),
			single(AnomalyLevelTo20Last6mo, 24),
			single(AnomalyLevelTo50Last6mo, 25),
			single(AnomalyLevelTo80Last6mo, 26),
		},
	},
	Alarm: {
		Kind:          Alarm,
		ByteLength:    40,
		Signification: [2]byte{MPU6500: 'A', KX: 'a'},
		Fields: []FieldSpec{
			single(AnomalyLevel, 1),
			single(Temperature, 2),
			// bytes 3 and 7 are reserved
			multi(VibrationLevel, 4, 5, 6),
			multi(FFT, span(8, 39)...),
		},
	},
	StartStop: {
		Kind:          StartStop,
		ByteLength:    3,
		Signification: [2]byte{MPU6500: 'S', KX: 's'},
		Fields: []FieldSpec{
			single(State, 1),
			single(BatteryPercentage, 2),
		},
	},
}

func init() {
	if err := Validate(Definitions()); err != nil {
		panic(err)
	}
}

// Definitions returns every message layout in kind order.
func Definitions() []Definition {
	out := make([]Definition, len(definitions))
	copy(out, definitions[:])
	return out
}

// Lookup returns the layout of k.
func Lookup(k Kind) (Definition, bool) {
	if k < 0 || int(k) >= len(definitions) {
		return Definition{}, false
	}
	return definitions[k], true
}
