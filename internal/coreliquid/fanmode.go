package coreliquid

import "fmt"

// FanMode is a pump/fan profile understood by the cooler firmware.
type FanMode byte

const (
	FanSilent  FanMode = 0 // quietest, lowest cooling
	FanBalance FanMode = 1
	FanGame    FanMode = 2 // highest cooling
	FanDefault FanMode = 4 // constant speed
	FanSmart   FanMode = 5 // follows the CPU temperature the host reports
)

var fanModeNames = map[FanMode]string{
	FanSilent:  "silent",
	FanBalance: "balance",
	FanGame:    "game",
	FanDefault: "default",
	FanSmart:   "smart",
}

func (m FanMode) String() string {
	if s, ok := fanModeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("fanmode(%d)", byte(m))
}

// ParseFanMode maps a CLI argument to a FanMode.
func ParseFanMode(s string) (FanMode, error) {
	for m, name := range fanModeNames {
		if name == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown fan mode %q (silent, balance, game, default, smart)", s)
}
