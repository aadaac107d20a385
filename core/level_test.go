package core

import "testing"

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{TraceLevel, "TRACE"},
		{DebugLevel, "DEBUG"},
		{InfoLevel, "INFO"},
		{WarnLevel, "WARN"},
		{ErrorLevel, "ERROR"},
		{CritLevel, "CRIT"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.String(); got != tt.want {
				t.Errorf("Level.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLevel_Ordering(t *testing.T) {
	ordered := []Level{TraceLevel, DebugLevel, InfoLevel, WarnLevel, ErrorLevel, CritLevel}
	for i := 1; i < len(ordered); i++ {
		if ordered[i-1] >= ordered[i] {
			t.Errorf("Expected %v < %v", ordered[i-1], ordered[i])
		}
	}
	if len(ordered) != NumLevels {
		t.Errorf("NumLevels = %d, want %d", NumLevels, len(ordered))
	}
}
